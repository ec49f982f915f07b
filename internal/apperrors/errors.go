package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSecurityNotFound indicates that no security with the given ticker or ID exists.
	ErrSecurityNotFound = errors.New("security not found")

	// ErrEventNotFound indicates that a transaction event with the given ID does not exist.
	ErrEventNotFound = errors.New("transaction event not found")

	// ErrCaseNotFound indicates that no case document exists for the security.
	ErrCaseNotFound = errors.New("case document not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyTicker indicates that a required ticker parameter is empty or missing.
	ErrEmptyTicker = errors.New("ticker cannot be empty")

	// ErrDuplicateTicker indicates that a security with the same ticker already exists.
	ErrDuplicateTicker = errors.New("a security with this ticker already exists")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Upstream data errors represent failures at the market-data provider
// boundary. Provider-specific parse detail is wrapped under these sentinels
// so it never leaks past the adapter.
var (
	// ErrQuoteUnavailable indicates that a quote fetch failed or returned
	// unparsable data. Valuation treats this as "quote = null" rather than
	// an error: the derived fields of the snapshot become null and the
	// caller decides how to render "unknown".
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrStatementsUnavailable indicates that the financial statement series
	// could not be fetched or parsed.
	ErrStatementsUnavailable = errors.New("financial statements unavailable")

	// ErrProviderPayload indicates a malformed upstream payload (missing
	// rows, mismatched array lengths, non-numeric fields).
	ErrProviderPayload = errors.New("malformed provider payload")

	// ErrAnalysisUnavailable indicates the language model returned no usable
	// bull/bear analysis.
	ErrAnalysisUnavailable = errors.New("analysis unavailable")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveSecurities = errors.New("failed to retrieve securities")
	ErrFailedToRetrieveSecurity   = errors.New("failed to retrieve security")
	ErrFailedToRetrieveEvents     = errors.New("failed to retrieve transaction events")
	ErrFailedToRetrieveEvent      = errors.New("failed to retrieve transaction event")
	ErrFailedToRetrieveCase       = errors.New("failed to retrieve case document")
	ErrFailedToComputeValuation   = errors.New("failed to compute valuation")
	ErrFailedToRetrieveHistory    = errors.New("failed to retrieve price history")
	ErrFailedToRetrieveSentiment  = errors.New("failed to retrieve news sentiment")
)
