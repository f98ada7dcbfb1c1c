package roles

import "strings"

const (
	keyPrefix = "user_role_"
	// UserEmailHeader identifies the signed-in user on admin requests.
	UserEmailHeader = "X-User-Email"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"

	// legacyCustomer is how earlier storefront builds stored the customer role.
	legacyCustomer = "user"
)

func storedRole(raw string) Role {
	raw = strings.TrimSpace(raw)
	if raw == legacyCustomer {
		return RoleCustomer
	}
	return Role(raw)
}

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

type Assignment struct {
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

type AssignRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=customer admin"`
}

func storageKey(email string) string {
	return keyPrefix + email
}
