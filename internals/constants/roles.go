package constants

import "fmt"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// RoleOf string role dari flag is_admin (dipakai di claim JWT).
func RoleOf(isAdmin bool) string {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}
