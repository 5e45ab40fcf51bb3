package domain

// Result is the outcome every session and cart operation hands back to the
// caller. Failures carry a human-readable message instead of escaping as
// errors, the UI decides whether to retry or notify.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
