package domain

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is the fabricated identity stored alongside the session token.
// JSON tags define the serialized shape kept in durable storage.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
