// Package rbac holds the process-wide mapping from roles to the
// permissions they grant.
package rbac

import (
	"maps"
	"slices"
)

// Permission names a single operation a role may perform.
type Permission string

const (
	PermGetTodos        Permission = "getTodos"
	PermGetTodo         Permission = "getTodo"
	PermCreateTodo      Permission = "createTodo"
	PermUpdateTodo      Permission = "updateTodo"
	PermToggleCompleted Permission = "toggleCompleted"
	PermDeleteTodo      Permission = "deleteTodo"
	PermManageUsers     Permission = "manageUsers"
)

// Built-in roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Checker answers permission questions for a role.
type Checker interface {
	HasPermission(role string, perm Permission) bool
}

// Table is an immutable role to permission mapping. Safe for concurrent use.
type Table struct {
	grants map[string]map[Permission]struct{}
	order  map[string][]Permission
}

// NewTable builds a table from the given grants. The input is copied.
func NewTable(grants map[string][]Permission) *Table {
	t := &Table{
		grants: make(map[string]map[Permission]struct{}, len(grants)),
		order:  make(map[string][]Permission, len(grants)),
	}
	for role, perms := range grants {
		set := make(map[Permission]struct{}, len(perms))
		ordered := make([]Permission, 0, len(perms))
		for _, p := range perms {
			if _, dup := set[p]; dup {
				continue
			}
			set[p] = struct{}{}
			ordered = append(ordered, p)
		}
		t.grants[role] = set
		t.order[role] = ordered
	}
	return t
}

// DefaultTable returns the built-in roles: user manages todos, admin manages users.
func DefaultTable() *Table {
	return NewTable(map[string][]Permission{
		RoleUser: {
			PermGetTodos,
			PermGetTodo,
			PermCreateTodo,
			PermUpdateTodo,
			PermToggleCompleted,
			PermDeleteTodo,
		},
		RoleAdmin: {
			PermManageUsers,
		},
	})
}

// HasPermission reports whether role grants perm. Unknown roles grant nothing.
func (t *Table) HasPermission(role string, perm Permission) bool {
	_, ok := t.grants[role][perm]
	return ok
}

// Roles returns the known role names in lexical order.
func (t *Table) Roles() []string {
	return slices.Sorted(maps.Keys(t.grants))
}

// Permissions returns a copy of the permissions granted to role, in
// declaration order. Unknown roles yield nil.
func (t *Table) Permissions(role string) []Permission {
	return slices.Clone(t.order[role])
}

// HasRole reports whether role is defined in the table.
func (t *Table) HasRole(role string) bool {
	_, ok := t.grants[role]
	return ok
}
