package domain

import "time"

// SkillCategory groups skills on the academic page.
type SkillCategory string

const (
	SkillCategoryTechnical SkillCategory = "technical"
	SkillCategorySoft      SkillCategory = "soft"
	SkillCategoryLanguage  SkillCategory = "language"
	SkillCategoryTool      SkillCategory = "tool"
)

// SkillProficiency is a self-assessed proficiency level.
type SkillProficiency string

const (
	SkillProficiencyBeginner     SkillProficiency = "beginner"
	SkillProficiencyIntermediate SkillProficiency = "intermediate"
	SkillProficiencyAdvanced     SkillProficiency = "advanced"
	SkillProficiencyExpert       SkillProficiency = "expert"
)

// Skill is a single skill entry.
type Skill struct {
	ID                 int64
	Name               string
	Category           SkillCategory
	Proficiency        SkillProficiency
	YearsOfExperience  int
	IsFeatured         bool
	CertificationLevel string
	CreatedAt          time.Time
}

// CategoryLabel returns the human-readable category name used in
// rendered output and search projections.
func (s *Skill) CategoryLabel() string {
	switch s.Category {
	case SkillCategoryTechnical:
		return "Technical"
	case SkillCategorySoft:
		return "Soft Skills"
	case SkillCategoryLanguage:
		return "Language"
	case SkillCategoryTool:
		return "Tool"
	default:
		return string(s.Category)
	}
}

// ProficiencyLabel returns the human-readable proficiency level.
func (s *Skill) ProficiencyLabel() string {
	switch s.Proficiency {
	case SkillProficiencyBeginner:
		return "Beginner"
	case SkillProficiencyIntermediate:
		return "Intermediate"
	case SkillProficiencyAdvanced:
		return "Advanced"
	case SkillProficiencyExpert:
		return "Expert"
	default:
		return string(s.Proficiency)
	}
}
