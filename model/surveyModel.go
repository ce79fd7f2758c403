package model

type Household struct {
	ID           int64  `json:"id"`
	HouseholdNo  string `json:"household_no"`
	HeadFullName string `json:"head_full_name"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobile_number"`
}
