package request

// CreateSecurityRequest is the payload for registering a new security.
type CreateSecurityRequest struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// UpdateSecurityRequest is the payload for renaming a security. The ticker
// is immutable once created.
type UpdateSecurityRequest struct {
	Name string `json:"name"`
}
