package domain

import (
	"fmt"
	"strings"
	"time"
)

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Company   string
	Subject   string
	Message   string
	Budget    string
	Timeline  string
	IPAddress string
	IsRead    bool
	IsReplied bool
	CreatedAt time.Time
}

// ValidateContact validates a Contact instance
func ValidateContact(c *Contact) error {
	if c == nil {
		return fmt.Errorf("contact cannot be nil")
	}
	if c.Name == "" {
		return fmt.Errorf("contact Name is required")
	}
	if !looksLikeEmail(c.Email) {
		return ErrInvalidEmail
	}
	if c.Subject == "" {
		return fmt.Errorf("contact Subject is required")
	}
	if c.Message == "" {
		return fmt.Errorf("contact Message is required")
	}
	return nil
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
