package model

import "strings"

type Resident struct {
	ID        int64  `json:"id"`
	Code      string `json:"resident_code"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *Resident) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}
