package domain

// PermissionAll is the sentinel granting every capability.
const PermissionAll = "all"

type User struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"` // Admin | Manager | Staff
	Status      string   `json:"status"`
	LastLogin   string   `json:"lastLogin,omitempty"` // RFC 3339, empty if never
	Permissions []string `json:"permissions"`
}

// Session is the blob persisted to local storage under a single key.
// Format is fixed (no schema versioning).
type Session struct {
	User            User `json:"user"`
	IsAuthenticated bool `json:"isAuthenticated"`
}
