package request

// SaveCaseRequest is the payload for creating or replacing a security's
// investment-case document.
type SaveCaseRequest struct {
	Content string `json:"content"`
}
