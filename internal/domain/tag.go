package domain

import "time"

// Tag is a reusable content label with display color and a usage
// counter. Usage counts are heuristic: they come from text membership
// in comma-separated fields, not a relational join, so treat them as
// popularity hints rather than authoritative counts.
type Tag struct {
	ID         int64
	Name       string
	Color      string // hex display color, e.g. "#3776ab"
	UsageCount int
	IsFeatured bool
	CreatedAt  time.Time
}
