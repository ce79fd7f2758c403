// model/dashboard.go
package model

import "time"

type Announcement struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	PostedAt time.Time `json:"posted_at"`
}

type EmergencyHotline struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Hotline           string `json:"hotline"`
	Type              string `json:"type"`
	ContactPerson     string `json:"contact_person"`
	Email             string `json:"email"`
	Description       string `json:"description"`
	ResponseProcedure string `json:"response_procedure"`
}

// Program is an assistance program offered to residents. IsFull is
// derived from the beneficiary count against capacity at scan time.
type Program struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MaxBeneficiaries int    `json:"max_beneficiaries"`
	BeneficiaryCount int    `json:"beneficiary_count"`
	IsFull           bool   `json:"is_full"`
}
