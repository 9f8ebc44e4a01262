package domain

import (
	"fmt"
	"time"
)

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
)

// ProjectType categorizes a project for list filtering.
type ProjectType string

const (
	ProjectTypeWeb     ProjectType = "web"
	ProjectTypeMobile  ProjectType = "mobile"
	ProjectTypeDesktop ProjectType = "desktop"
	ProjectTypeAPI     ProjectType = "api"
	ProjectTypeData    ProjectType = "data"
	ProjectTypeOther   ProjectType = "other"
)

// Project is a portfolio project entry.
type Project struct {
	ID                  int64
	Title               string
	Description         string
	DetailedDescription string
	Technologies        string // comma-separated
	Status              ProjectStatus
	Type                ProjectType
	StartDate           time.Time
	EndDate             *time.Time
	ProjectURL          string
	GithubURL           string
	ImageURL            string
	IsFeatured          bool
	Client              string
	ChallengesFaced     string
	LessonsLearned      string
	CreatedAt           time.Time
}

// DetailURL returns the canonical detail page path for the project.
func (p *Project) DetailURL() string {
	return fmt.Sprintf("/projects/%d/", p.ID)
}

// TechnologyList returns the technologies field split into tags.
func (p *Project) TechnologyList() []string {
	return SplitList(p.Technologies)
}

// ValidateProject validates a Project instance
func ValidateProject(p *Project) error {
	if p == nil {
		return fmt.Errorf("project cannot be nil")
	}
	if p.Title == "" {
		return fmt.Errorf("project Title is required")
	}
	if p.Description == "" {
		return fmt.Errorf("project Description is required")
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("project StartDate is required")
	}
	return nil
}
