package entity

// Survey is an alternate address source for the same real-world person,
// matched to a customer by digits-only phone number. When its address is
// geocodable it takes priority over the customer's own address.
type Survey struct {
	ID      int64  // Numeric survey identifier.
	Phone   string // Raw phone number as stored.
	Address string // Free-text address from the survey form.
}

// PhoneDigits returns the digits-only form of the survey's phone number.
func (s *Survey) PhoneDigits() string {
	return DigitsOnly(s.Phone)
}
