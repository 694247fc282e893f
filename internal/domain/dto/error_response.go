package dto

// ErrorResponse is the body returned on 404 and 500 responses. It keeps
// the metadata collected up to the failure point, so callers still see
// the elapsed time and the parameters that were in effect.
type ErrorResponse struct {
	Error    string   `json:"error" example:"Stock with ticker 'NOPE' not found"`
	Metadata Metadata `json:"metadata"`
}

// NewErrorResponse builds a structured error body.
func NewErrorResponse(message string, meta Metadata) ErrorResponse {
	return ErrorResponse{Error: message, Metadata: meta}
}
