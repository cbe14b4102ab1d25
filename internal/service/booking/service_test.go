package booking

import (
	"testing"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/room"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func employee(companyID string) user.User {
	return user.User{ID: "u1", CompanyID: &companyID, Role: user.RoleEmployee}
}

func TestCheckRoomAccessExternalGrant(t *testing.T) {
	hostRoom := room.Room{
		CompanyID:      "host-co",
		Status:         room.StatusAvailable,
		AccessLevel:    room.AccessAll,
		VisibilityType: room.VisibilityCompany,
	}
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	host := "host-co"
	granted := employee("own-co")
	granted.ExternalCompanyAccess = &host
	assert.NoError(t, checkRoomAccess(hostRoom, granted, start, end),
		"external grant should open the host company's rooms")

	stranger := employee("own-co")
	assert.ErrorIs(t, checkRoomAccess(hostRoom, stranger, start, end), room.ErrRoomNotFound)
}

func TestCheckRoomAccessOwnersOnlyExcludesExternal(t *testing.T) {
	lockedRoom := room.Room{
		CompanyID:      "host-co",
		Status:         room.StatusAvailable,
		AccessLevel:    room.AccessOwnersOnly,
		VisibilityType: room.VisibilityCompany,
	}
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	host := "host-co"
	granted := employee("own-co")
	granted.ExternalCompanyAccess = &host
	assert.ErrorIs(t, checkRoomAccess(lockedRoom, granted, start, end), room.ErrRoomAccessDenied)

	owner := employee("host-co")
	assert.NoError(t, checkRoomAccess(lockedRoom, owner, start, end))
}

func TestCheckRoomAccessGates(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	maintenance := room.Room{CompanyID: "c1", Status: room.StatusMaintenance, AccessLevel: room.AccessAll}
	assert.ErrorIs(t, checkRoomAccess(maintenance, employee("c1"), start, end), room.ErrRoomNotBookable)

	managers := room.Room{CompanyID: "c1", Status: room.StatusAvailable, AccessLevel: room.AccessManagersOnly}
	assert.ErrorIs(t, checkRoomAccess(managers, employee("c1"), start, end), room.ErrRoomAccessDenied)
}
