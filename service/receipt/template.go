package receipt

// Printable payment receipt, styled after the barangay survey form
// templates the office already hands out.
const receiptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Official Receipt {{.ReceiptNumber}}</title>
    <style>
        @page { margin: 20mm; }
        body { font-family: Arial, sans-serif; font-size: 12px; line-height: 1.6; color: #333; }
        .header { text-align: center; margin-bottom: 30px; border-bottom: 3px solid #059669; padding-bottom: 15px; }
        .header h1 { margin: 0; font-size: 24px; color: #059669; }
        .header h2 { margin: 5px 0 0 0; font-size: 18px; color: #64748b; font-weight: normal; }
        .receipt-no { font-family: monospace; font-size: 16px; color: #059669; margin-top: 10px; }
        .info { background-color: #f8fafc; border: 1px solid #e2e8f0; border-radius: 8px; padding: 15px; margin-bottom: 25px; }
        .info h3 { margin: 0 0 10px 0; font-size: 14px; color: #1e293b; border-bottom: 1px solid #cbd5e1; padding-bottom: 5px; }
        .row { display: flex; font-size: 11px; margin-bottom: 6px; }
        .label { font-weight: bold; min-width: 130px; color: #475569; }
        table { width: 100%; border-collapse: collapse; font-size: 11px; margin-bottom: 25px; }
        th, td { border: 1px solid #cbd5e1; padding: 8px; text-align: left; }
        th { background-color: #ecfdf5; color: #065f46; }
        .amount { font-size: 16px; font-weight: bold; color: #059669; text-align: right; margin-bottom: 25px; }
        .footer { margin-top: 40px; padding-top: 15px; border-top: 2px solid #e2e8f0; font-size: 10px; color: #64748b; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h1>BARANGAY E-GOVERNANCE SYSTEM</h1>
        <h2>Asset Rental Official Receipt</h2>
        <div class="receipt-no">{{.ReceiptNumber}}</div>
    </div>

    <div class="info">
        <h3>Payment Details</h3>
        <div class="row"><span class="label">Resident:</span><span>{{.ResidentName}}</span></div>
        {{if .ResidentCode}}<div class="row"><span class="label">Resident ID:</span><span>{{.ResidentCode}}</span></div>{{end}}
        <div class="row"><span class="label">Request No:</span><span>{{.RequestID}}</span></div>
        <div class="row"><span class="label">Request Date:</span><span>{{.RequestDate}}</span></div>
        {{if .PaidAt}}<div class="row"><span class="label">Paid At:</span><span>{{.PaidAt}}</span></div>{{end}}
    </div>

    {{if .Items}}
    <table>
        <tr><th>Asset</th><th>Rental Duration</th><th>Expected Return</th></tr>
        {{range .Items}}
        <tr>
            <td>{{.AssetName}}</td>
            <td>{{.DurationDays}} day(s)</td>
            <td>{{if .ReturnDate}}{{.ReturnDate}}{{else}}&mdash;{{end}}</td>
        </tr>
        {{end}}
    </table>
    {{end}}

    <div class="amount">Amount Paid: PHP {{.AmountPaid}}</div>

    <div class="footer">
        <p>This receipt is proof of payment for the asset rental above. Keep it until the asset is returned.</p>
        <p>For questions or assistance, please contact the Barangay Office.</p>
        <p style="margin-top: 10px;">Generated on {{.GeneratedAt}}</p>
    </div>
</body>
</html>
`
