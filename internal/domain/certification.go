package domain

import "time"

// Certification is a professional certification entry.
type Certification struct {
	ID                  int64
	Name                string
	IssuingOrganization string
	IssueDate           time.Time
	ExpirationDate      *time.Time
	CredentialID        string
	CredentialURL       string
	CreatedAt           time.Time
}
