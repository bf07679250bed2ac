// Package authz is the role policy consulted by services and HTTP routes.
package authz

import "github.com/kelvinmfon2025/book-api/internal/domain"

// Action is an operation subject to role-based authorization.
type Action string

const (
	ActionBorrow               Action = "borrow"
	ActionReturn               Action = "return"
	ActionReserve              Action = "reserve"
	ActionCancelReservation    Action = "cancel_reservation"
	ActionViewOwnLoans         Action = "view_own_loans"
	ActionViewAnyLoans         Action = "view_any_loans"
	ActionViewReservations     Action = "view_reservations"
	ActionCancelAnyReservation Action = "cancel_any_reservation"
	ActionFulfillReservation   Action = "fulfill_reservation"
	ActionManageCatalog        Action = "manage_catalog"
	ActionManageUsers          Action = "manage_users"
	ActionEditOwnProfile       Action = "edit_own_profile"
)

var memberActions = []Action{
	ActionBorrow,
	ActionReturn,
	ActionReserve,
	ActionCancelReservation,
	ActionViewOwnLoans,
	ActionEditOwnProfile,
}

var librarianActions = append([]Action{
	ActionViewAnyLoans,
	ActionViewReservations,
	ActionCancelAnyReservation,
	ActionFulfillReservation,
	ActionManageCatalog,
}, memberActions...)

var adminActions = append([]Action{ActionManageUsers}, librarianActions...)

var policy = map[domain.Role]map[Action]bool{
	domain.RoleMember:    toSet(memberActions),
	domain.RoleLibrarian: toSet(librarianActions),
	domain.RoleAdmin:     toSet(adminActions),
}

func toSet(actions []Action) map[Action]bool {
	set := make(map[Action]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}

// Allowed reports whether role may perform action.
func Allowed(role domain.Role, action Action) bool {
	return policy[role][action]
}

// Authorize returns domain.ErrAccessDenied unless role may perform action.
func Authorize(role domain.Role, action Action) error {
	if !Allowed(role, action) {
		return domain.ErrAccessDenied
	}
	return nil
}

// AuthorizeSelfOr permits the caller when it is acting on its own record,
// and otherwise requires action.
func AuthorizeSelfOr(identity domain.Identity, targetUserID string, action Action) error {
	if !identity.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	if identity.UserID == targetUserID {
		return nil
	}
	return Authorize(identity.Role, action)
}
