package domain

import "time"

// JobType is the employment arrangement of an experience entry.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

// Experience is a work history entry.
type Experience struct {
	ID           int64
	Title        string
	Company      string
	Location     string
	JobType      JobType
	StartDate    time.Time
	EndDate      *time.Time
	IsCurrent    bool
	Description  string
	Achievements string
	Technologies string // comma-separated
	CreatedAt    time.Time
}

// DisplayTitle combines role and company the way list pages render it.
func (e *Experience) DisplayTitle() string {
	if e.Company == "" {
		return e.Title
	}
	return e.Title + " - " + e.Company
}

// TechnologyList returns the technologies field split into tags.
func (e *Experience) TechnologyList() []string {
	return SplitList(e.Technologies)
}
