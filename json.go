// json.go — JSON view of errtree errors for sinks that serialize values.
package errtree

import "encoding/json"

// ErrorResponse is the flat, serializable shape of an *Error.
//
// The original is rendered as a string (OriginalMessage) rather than embedded,
// so arbitrary attribute maps and foreign error types cannot break encoding.
// Stacks are excluded.
type ErrorResponse struct {
	Name          string `json:"name"`
	RootContext   string `json:"rootContext"`
	ContextsChunk string `json:"contextsChunk"`
	Feature       string `json:"feature"`
	Message       string `json:"message"`
	Original      string `json:"originalError,omitempty"`
}

// ToResponse converts e into an ErrorResponse. Returns nil for a nil e.
func (e *Error) ToResponse() *ErrorResponse {
	if e == nil {
		return nil
	}
	return &ErrorResponse{
		Name:          e.Name(),
		RootContext:   e.RootContext(),
		ContextsChunk: e.chunk,
		Feature:       e.feature,
		Message:       e.msg,
		Original:      OriginalMessage(e.original),
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return json.Marshal(e.ToResponse())
}
