package domain

import "time"

// NewsletterSubscriber is a newsletter signup. Unsubscribed addresses
// stay on record with IsActive=false and are reactivated on re-signup.
type NewsletterSubscriber struct {
	ID           int64
	Email        string
	Name         string
	IsActive     bool
	SubscribedAt time.Time
}

// ValidateSubscriber validates a NewsletterSubscriber instance
func ValidateSubscriber(s *NewsletterSubscriber) error {
	if s == nil {
		return ErrMissingRequiredField
	}
	if !looksLikeEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}
