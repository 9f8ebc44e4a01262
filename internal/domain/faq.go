package domain

import "time"

// FAQCategory groups FAQ entries.
type FAQCategory string

const (
	FAQCategoryGeneral   FAQCategory = "general"
	FAQCategoryServices  FAQCategory = "services"
	FAQCategoryTechnical FAQCategory = "technical"
	FAQCategoryPricing   FAQCategory = "pricing"
	FAQCategoryOther     FAQCategory = "other"
)

// FAQ is a frequently asked question entry.
type FAQ struct {
	ID           int64
	Question     string
	Answer       string
	Category     FAQCategory
	SortOrder    int
	IsActive     bool
	ViewsCount   int
	HelpfulVotes int
	CreatedAt    time.Time
}

// CategoryLabel returns the human-readable category name.
func (f *FAQ) CategoryLabel() string {
	switch f.Category {
	case FAQCategoryGeneral:
		return "General"
	case FAQCategoryServices:
		return "Services"
	case FAQCategoryTechnical:
		return "Technical"
	case FAQCategoryPricing:
		return "Pricing"
	default:
		return "Other"
	}
}
