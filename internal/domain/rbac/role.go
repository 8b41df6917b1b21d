// Package rbac define la jerarquía de roles del panel y el menú de navegación filtrado por rol.
package rbac

import "strings"

// Role rol de un perfil. Jerarquía: viewer < operator < manager < admin.
type Role string

// Roles válidos.
const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// DefaultRole rol asignado a los perfiles nuevos.
const DefaultRole = RoleViewer

var levels = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleManager:  3,
	RoleAdmin:    4,
}

// ParseRole normaliza y valida un rol. ok es false si no existe.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levels[r]; !ok {
		return "", false
	}
	return r, true
}

// Level nivel del rol en la jerarquía; 0 para roles desconocidos.
func (r Role) Level() int {
	return levels[r]
}

// HasPermission indica si userRole alcanza requiredRole. Un rol desconocido no tiene permisos
// y un requerimiento desconocido no lo cumple nadie.
func HasPermission(userRole, requiredRole Role) bool {
	u, r := userRole.Level(), requiredRole.Level()
	if u == 0 || r == 0 {
		return false
	}
	return u >= r
}
