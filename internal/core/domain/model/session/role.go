package session

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
)

// Role is the access level granted by the remote API at sign-in.
type Role int

const (
	// RoleUnknown is the zero value and is not valid for use.
	RoleUnknown Role = iota
	// RoleUser is a regular shopper. The default when the remote response
	// carries no recognizable role.
	RoleUser
	// RoleAdmin may additionally manage the catalog.
	RoleAdmin
)

// ErrRoleIsNotValid is returned when a Role value is outside the
// known set.
var ErrRoleIsNotValid = errors.New("role is not valid")

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleUser:    "USER",
		RoleAdmin:   "ADMIN",
	}
}

func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"USER":  RoleUser,
		"ADMIN": RoleAdmin,
	}
}

// RoleFromString maps the remote API's role string to a Role. Unrecognized
// or empty input falls back to RoleUser, matching the remote API treating
// every authenticated account as at least a shopper.
func RoleFromString(s string) Role {
	if role, ok := getValidRoleStrings()[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return role
	}
	return RoleUser
}

// Validate ensures the Role holds one of the known values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the canonical upper-case name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}
