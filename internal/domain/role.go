package domain

// Role names used throughout the application. Roles are immutable reference
// data seeded by migration; the IDs are resolved at runtime by the role
// resolver.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Role represents one of the seeded authorization roles.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
