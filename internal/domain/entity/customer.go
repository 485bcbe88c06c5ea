// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Customer is the subject being located. Customer records are owned by the
// CRM's customer management; this service only reads id/phone/address and
// writes the address back after a successful reconciliation.
type Customer struct {
	ID        int64     // Numeric customer identifier.
	Name      string    // Display name.
	Phone     string    // Raw phone number as stored; match surveys via PhoneDigits.
	Address   string    // Free-text primary address, possibly a placeholder sentinel.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// PhoneDigits returns the digits-only form of the customer's phone number,
// the join key against survey records.
func (c *Customer) PhoneDigits() string {
	return DigitsOnly(c.Phone)
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
