package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/api/request"
)

// ValidKind contains the allowed transaction kind values.
var ValidKind = map[string]bool{
	"buy": true, "sell": true, "none": true,
}

// ValidateCreateEvent validates a transaction event creation request.
// Malformed buy/sell events (missing or non-positive quantity/price) are
// rejected here, before they can enter the ledger: the position fold
// downstream assumes every buy/sell event carries both.
//
// Required fields:
//   - securityId: must be a valid UUID
//   - date: must be in YYYY-MM-DD format
//   - content: free-text annotation, required
//   - kind: one of buy, sell, none (defaults to none when empty)
//   - quantity: positive integer, required for buy/sell, forbidden for none
//   - price: positive decimal, required for buy/sell, forbidden for none
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateEvent(req request.CreateEventRequest) error {
	if err := ValidateUUID(req.SecurityID); err != nil {
		return err
	}

	errors := make(map[string]string)
	validateEventFields(errors, req.Date, req.Content, req.Kind, req.Quantity, req.Price)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateEvent validates a transaction event edit request. Edits
// replace the event wholesale, so the same constraints apply as on creation.
func ValidateUpdateEvent(req request.UpdateEventRequest) error {
	errors := make(map[string]string)
	validateEventFields(errors, req.Date, req.Content, req.Kind, req.Quantity, req.Price)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateEventFields(errors map[string]string, date, content, kind string, quantity *int64, price *float64) {
	if strings.TrimSpace(date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(content) == "" {
		errors["content"] = "content is required"
	}

	if kind == "" {
		kind = "none"
	}
	if !ValidKind[kind] {
		errors["kind"] = fmt.Sprintf("invalid kind: %s", kind)
		return
	}

	if kind == "none" {
		if quantity != nil {
			errors["quantity"] = "quantity is not allowed on annotation events"
		}
		if price != nil {
			errors["price"] = "price is not allowed on annotation events"
		}
		return
	}

	// buy / sell
	if quantity == nil {
		errors["quantity"] = "quantity is required for buy and sell events"
	} else if *quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if price == nil {
		errors["price"] = "price is required for buy and sell events"
	} else if *price <= 0.0 {
		errors["price"] = "price must be positive"
	}
}
