package models

// LoginResult carries what sign-in needs from the login response.
type LoginResult struct {
	Token   string `json:"token"`
	User    User   `json:"userData"`
	Message string `json:"message"`
}

// BulkCreateResult is the API response for a bulk lead import.
// ImportedCount is optional on the wire; callers fall back to the
// submitted batch length when it is zero.
type BulkCreateResult struct {
	Message       string `json:"message"`
	ImportedCount int    `json:"importedCount,omitempty"`
}
