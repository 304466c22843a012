package rest

// ErrorResponse is the JSON body returned by handlers on failure. Details
// should carry enough context for the caller to decide whether a retry is
// safe.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
