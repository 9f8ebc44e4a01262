package domain

import "time"

// Testimonial is a visitor-submitted recommendation. Only approved
// testimonials appear on public pages or in search results.
type Testimonial struct {
	ID          int64
	Name        string
	Email       string
	Company     string
	Position    string
	Content     string
	Rating      int
	IsAnonymous bool
	IsApproved  bool
	IsFeatured  bool
	CreatedAt   time.Time
}

// DisplayName returns the attributed name, hiding it for anonymous
// submissions.
func (t *Testimonial) DisplayName() string {
	if t.IsAnonymous || t.Name == "" {
		return "Anonymous"
	}
	return t.Name
}
