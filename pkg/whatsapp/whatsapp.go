// Package whatsapp builds wa.me deep links for balance reminders.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultCountryCode is prefixed to local phone numbers. The shop operates in
// Egypt ("2"); override via the LinkBuilder.
const DefaultCountryCode = "2"

// LinkBuilder normalizes phone numbers and assembles message links.
type LinkBuilder struct {
	CountryCode string
}

// New returns a builder for the given country code, falling back to the
// default when empty.
func New(countryCode string) LinkBuilder {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return LinkBuilder{CountryCode: countryCode}
}

// NormalizePhone strips spaces and leading zeros and prefixes the country
// code. Returns "" for an empty input.
func (b LinkBuilder) NormalizePhone(phone string) string {
	p := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	p = strings.TrimLeft(p, "0")
	if p == "" {
		return ""
	}
	return b.CountryCode + p
}

// Link builds a wa.me URL carrying the given message body. Returns "" when
// the phone is missing.
func (b LinkBuilder) Link(phone, message string) string {
	normalized := b.NormalizePhone(phone)
	if normalized == "" {
		return ""
	}
	return "https://wa.me/" + normalized + "?text=" + url.QueryEscape(message)
}

// DebtReminder is the message sent to a party who owes the shop money.
func (b LinkBuilder) DebtReminder(phone, name, balance string) string {
	msg := fmt.Sprintf("Hello %s, this is a reminder that your outstanding balance is %s. Thank you for your business.", name, balance)
	return b.Link(phone, msg)
}

// CreditorReminder is the message sent to a creditor the shop owes money to.
func (b LinkBuilder) CreditorReminder(phone, name, balance string) string {
	msg := fmt.Sprintf("Hello %s, this is a reminder that the balance owed to you is %s.", name, balance)
	return b.Link(phone, msg)
}

// PaymentReceipt is the message sent after a debt payment is recorded.
func (b LinkBuilder) PaymentReceipt(phone, name, paid, remaining, notes string) string {
	msg := fmt.Sprintf("Hello %s, a payment of %s has been received. The remaining balance is %s.", name, paid, remaining)
	if notes != "" {
		msg += " Note: " + notes + "."
	}
	msg += " Thank you for your business."
	return b.Link(phone, msg)
}
