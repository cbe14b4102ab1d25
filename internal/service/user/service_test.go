package user

import (
	"context"
	"testing"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepository keeps accounts in memory so policy paths can be
// exercised without a database
type fakeUserRepository struct {
	users        map[string]user.User
	bookingCount map[string]int64
}

func newFakeUserRepository(users ...user.User) *fakeUserRepository {
	repo := &fakeUserRepository{
		users:        make(map[string]user.User),
		bookingCount: make(map[string]int64),
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepository) ListByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, id string, req user.UpdateUserRequest) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserRepository) UpdateRole(ctx context.Context, id string, role user.Role, expiresAt *time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	u.ExpiresAt = expiresAt
	f.users[id] = u
	return nil
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (f *fakeUserRepository) GrantExternalAccess(ctx context.Context, id, companyID string, role user.Role) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.ExternalCompanyAccess = &companyID
	f.users[id] = u
	return nil
}

func (f *fakeUserRepository) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	return f.GetByEmail(ctx, email)
}

func (f *fakeUserRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	users, _ := f.ListByCompany(ctx, companyID)
	return int64(len(users)), nil
}

func (f *fakeUserRepository) CountBookingsByUser(ctx context.Context, id string) (int64, error) {
	return f.bookingCount[id], nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func testUser(id, companyID string, role user.Role) user.User {
	return user.User{
		ID:        id,
		CompanyID: &companyID,
		Email:     id + "@acme.com",
		Name:      id,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

func TestListFiltersByPolicy(t *testing.T) {
	ctx := context.Background()
	admin := testUser("admin", "c1", user.RoleAdmin)
	manager := testUser("manager", "c1", user.RoleManager)
	employee := testUser("employee", "c1", user.RoleEmployee)
	outsider := testUser("outsider", "c2", user.RoleEmployee)

	repo := newFakeUserRepository(admin, manager, employee, outsider)
	svc := NewUserService(repo, 30)

	t.Run("admin sees the whole company", func(t *testing.T) {
		list, err := svc.List(ctx, admin)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("manager does not see the admin", func(t *testing.T) {
		list, err := svc.List(ctx, manager)
		require.NoError(t, err)
		assert.Len(t, list, 2)
		for _, u := range list {
			assert.NotEqual(t, "admin", u.ID)
		}
	})

	t.Run("employee may not list", func(t *testing.T) {
		_, err := svc.List(ctx, employee)
		assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
	})
}

func TestGetHidesOutOfScopeUsers(t *testing.T) {
	ctx := context.Background()
	manager := testUser("manager", "c1", user.RoleManager)
	admin := testUser("admin", "c1", user.RoleAdmin)
	outsider := testUser("outsider", "c2", user.RoleEmployee)

	repo := newFakeUserRepository(manager, admin, outsider)
	svc := NewUserService(repo, 30)

	// Hidden targets read as absent rather than forbidden
	_, err := svc.Get(ctx, manager, "admin")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = svc.Get(ctx, manager, "outsider")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	got, err := svc.Get(ctx, manager, "manager")
	require.NoError(t, err)
	assert.Equal(t, "manager", got.ID)
}

func TestUpdateRoleEscalationBlocked(t *testing.T) {
	ctx := context.Background()
	manager := testUser("manager", "c1", user.RoleManager)
	employee := testUser("employee", "c1", user.RoleEmployee)

	repo := newFakeUserRepository(manager, employee)
	svc := NewUserService(repo, 30)

	_, err := svc.UpdateRole(ctx, manager, "employee", user.UpdateRoleRequest{Role: "admin"})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	got, err := svc.UpdateRole(ctx, manager, "employee", user.UpdateRoleRequest{Role: "guest"})
	require.NoError(t, err)
	assert.Equal(t, "guest", got.Role)
	require.NotNil(t, got.ExpiresAt, "demoting to guest sets an expiry")
}

func TestUpdateRoleGuestExpiryDefault(t *testing.T) {
	ctx := context.Background()
	admin := testUser("admin", "c1", user.RoleAdmin)
	employee := testUser("employee", "c1", user.RoleEmployee)

	repo := newFakeUserRepository(admin, employee)
	svc := NewUserService(repo, 30)

	before := time.Now().AddDate(0, 0, 29)
	got, err := svc.UpdateRole(ctx, admin, "employee", user.UpdateRoleRequest{Role: "guest"})
	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt)

	expiry, err := time.Parse(time.RFC3339, *got.ExpiresAt)
	require.NoError(t, err)
	assert.True(t, expiry.After(before), "default guest expiry should land ~30 days out")
}

func TestDeleteGuards(t *testing.T) {
	ctx := context.Background()
	admin := testUser("admin", "c1", user.RoleAdmin)
	employee := testUser("employee", "c1", user.RoleEmployee)
	busy := testUser("busy", "c1", user.RoleEmployee)

	repo := newFakeUserRepository(admin, employee, busy)
	repo.bookingCount["busy"] = 2
	svc := NewUserService(repo, 30)

	err := svc.Delete(ctx, admin, "admin")
	assert.ErrorIs(t, err, user.ErrCannotDeleteSelf)

	err = svc.Delete(ctx, admin, "busy")
	assert.ErrorIs(t, err, user.ErrUserHasBookings)

	err = svc.Delete(ctx, admin, "employee")
	require.NoError(t, err)

	_, err = svc.Get(ctx, admin, "employee")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
