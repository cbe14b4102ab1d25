package room

import "errors"

var (
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomNameExists        = errors.New("room name already exists in this company")
	ErrRoomNotBookable       = errors.New("room is not available for booking")
	ErrRoomAccessDenied      = errors.New("room access level does not permit this user")
	ErrRoomNotVisible        = errors.New("room is not visible to this company")
	ErrRoomHasBookings       = errors.New("room still has bookings")
	ErrOutsideOperatingHours = errors.New("booking is outside the room's operating hours")
)
