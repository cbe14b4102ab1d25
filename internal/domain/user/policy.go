package user

// Policy predicates. All of these are pure functions over the actor and the
// target; callers load both records and combine the answers with the
// resource checks they need (booking ownership, company scoping).

// CanManageRooms reports whether the actor may create, edit or delete rooms
func CanManageRooms(actor User) bool {
	return actor.Role == RoleAdmin
}

// CanManageUsers reports whether the actor may administer other accounts
func CanManageUsers(actor User) bool {
	return actor.Role == RoleAdmin || actor.Role == RoleManager
}

// CanInviteUsers reports whether the actor may send invitations
func CanInviteUsers(actor User) bool {
	return CanManageUsers(actor)
}

// CanManageCompany reports whether the actor may edit or delete the company
func CanManageCompany(actor User) bool {
	return actor.Role == RoleAdmin
}

// CanSeeUser reports whether the actor may view the target's account.
// Admins see everyone in their company. Managers see employees and guests in
// their company, but not other managers or admins.
func CanSeeUser(actor, target User) bool {
	if actor.CompanyID == nil || target.CompanyID == nil || *actor.CompanyID != *target.CompanyID {
		return false
	}
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleManager:
		return target.Role == RoleEmployee || target.Role == RoleGuest
	}
	return false
}

// CanEditUser mirrors CanSeeUser: visibility implies edit eligibility.
// The role being assigned still needs a separate CanAssignRole check.
func CanEditUser(actor, target User) bool {
	return CanSeeUser(actor, target)
}

// CanAssignRole checks the NEW role value against the actor's authority.
// A manager may only grant employee or guest, even for targets it can edit.
func CanAssignRole(actor User, newRole Role) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleManager:
		return newRole == RoleEmployee || newRole == RoleGuest
	}
	return false
}
