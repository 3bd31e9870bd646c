package models

// User roles as reported by the API
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserStatusInactive blocks sign-in client-side even when the API
// authenticates the credentials.
const UserStatusInactive = "InActive"

// User represents an account in the directory
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
	Mobile string `json:"mobile,omitempty"`
}
