package user

import (
	"testing"
	"time"
)

func member(id, companyID string, role Role) User {
	return User{ID: id, CompanyID: &companyID, Role: role}
}

func TestCanSeeUser(t *testing.T) {
	cases := []struct {
		name   string
		actor  User
		target User
		want   bool
	}{
		{"admin sees admin", member("a", "c1", RoleAdmin), member("b", "c1", RoleAdmin), true},
		{"admin sees manager", member("a", "c1", RoleAdmin), member("b", "c1", RoleManager), true},
		{"admin sees employee", member("a", "c1", RoleAdmin), member("b", "c1", RoleEmployee), true},
		{"manager sees employee", member("a", "c1", RoleManager), member("b", "c1", RoleEmployee), true},
		{"manager sees guest", member("a", "c1", RoleManager), member("b", "c1", RoleGuest), true},
		{"manager cannot see manager", member("a", "c1", RoleManager), member("b", "c1", RoleManager), false},
		{"manager cannot see admin", member("a", "c1", RoleManager), member("b", "c1", RoleAdmin), false},
		{"employee sees nobody", member("a", "c1", RoleEmployee), member("b", "c1", RoleEmployee), false},
		{"other company is invisible", member("a", "c1", RoleAdmin), member("b", "c2", RoleEmployee), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CanSeeUser(c.actor, c.target); got != c.want {
				t.Errorf("CanSeeUser() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCanSeeUserWithoutCompany(t *testing.T) {
	actor := User{ID: "a", Role: RoleAdmin}
	target := member("b", "c1", RoleEmployee)
	if CanSeeUser(actor, target) {
		t.Error("actor without a company should see nobody")
	}
	if CanSeeUser(target, actor) {
		t.Error("target without a company should be invisible")
	}
}

func TestCanAssignRole(t *testing.T) {
	admin := member("a", "c1", RoleAdmin)
	manager := member("m", "c1", RoleManager)
	employee := member("e", "c1", RoleEmployee)

	for _, role := range []Role{RoleAdmin, RoleManager, RoleEmployee, RoleGuest} {
		if !CanAssignRole(admin, role) {
			t.Errorf("admin should be able to assign %s", role)
		}
	}
	if CanAssignRole(manager, RoleAdmin) {
		t.Error("manager must not grant admin")
	}
	if CanAssignRole(manager, RoleManager) {
		t.Error("manager must not grant manager")
	}
	if !CanAssignRole(manager, RoleEmployee) || !CanAssignRole(manager, RoleGuest) {
		t.Error("manager should grant employee and guest")
	}
	if CanAssignRole(employee, RoleGuest) {
		t.Error("employee must not assign roles")
	}
}

func TestIsActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	employee := User{Role: RoleEmployee, ExpiresAt: &past}
	if !employee.IsActive(now) {
		t.Error("non-guest roles never expire")
	}

	guest := User{Role: RoleGuest, ExpiresAt: &future}
	if !guest.IsActive(now) {
		t.Error("guest before expiry should be active")
	}

	guest.ExpiresAt = &past
	if guest.IsActive(now) {
		t.Error("guest past expiry should be inactive")
	}

	guest.ExpiresAt = &now
	if !guest.IsActive(now) {
		t.Error("guest exactly at expiry is still active")
	}
}

func TestCanAccessCompany(t *testing.T) {
	external := "c2"
	u := member("a", "c1", RoleGuest)
	u.ExternalCompanyAccess = &external

	if !u.CanAccessCompany("c1") {
		t.Error("member should access own company")
	}
	if !u.CanAccessCompany("c2") {
		t.Error("external grant should open the second company")
	}
	if u.CanAccessCompany("c3") {
		t.Error("unrelated company should be closed")
	}
}

func TestAccessibleCompanies(t *testing.T) {
	plain := member("a", "c1", RoleEmployee)
	if got := plain.AccessibleCompanies(); len(got) != 1 || got[0] != "c1" {
		t.Errorf("AccessibleCompanies() = %v, want [c1]", got)
	}

	external := "c2"
	granted := member("a", "c1", RoleEmployee)
	granted.ExternalCompanyAccess = &external
	if got := granted.AccessibleCompanies(); len(got) != 2 || got[0] != "c1" || got[1] != "c2" {
		t.Errorf("AccessibleCompanies() = %v, want [c1 c2]", got)
	}

	same := "c1"
	redundant := member("a", "c1", RoleEmployee)
	redundant.ExternalCompanyAccess = &same
	if got := redundant.AccessibleCompanies(); len(got) != 1 {
		t.Errorf("AccessibleCompanies() = %v, want [c1]", got)
	}
}
