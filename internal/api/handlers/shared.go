package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// parseJSON decodes a request body into the given request type. Unknown
// fields are rejected so typos surface as 400s instead of silently dropped
// input.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}
	return req, nil
}
