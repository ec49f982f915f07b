package validation

import (
	"strings"

	"github.com/avosch/stock-dashboard-backend/internal/api/request"
)

const (
	maxTickerLength = 10
	maxNameLength   = 100
)

// ValidateCreateSecurity validates a security registration request.
//
// Required fields:
//   - ticker: non-empty, at most 10 characters, letters/digits/dot/hyphen
//   - name: non-empty, at most 100 characters
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateSecurity(req request.CreateSecurityRequest) error {
	errors := make(map[string]string)

	ticker := strings.TrimSpace(req.Ticker)
	switch {
	case ticker == "":
		errors["ticker"] = "ticker is required"
	case len(ticker) > maxTickerLength:
		errors["ticker"] = "ticker must be at most 10 characters"
	case !isValidTicker(ticker):
		errors["ticker"] = "ticker may only contain letters, digits, '.' and '-'"
	}

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		errors["name"] = "name is required"
	case len(name) > maxNameLength:
		errors["name"] = "name must be at most 100 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateSecurity validates a security rename request.
func ValidateUpdateSecurity(req request.UpdateSecurityRequest) error {
	errors := make(map[string]string)

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		errors["name"] = "name is required"
	case len(name) > maxNameLength:
		errors["name"] = "name must be at most 100 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func isValidTicker(ticker string) bool {
	for _, r := range ticker {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return false
		}
	}
	return true
}
