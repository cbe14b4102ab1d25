package booking

import (
	"testing"

	"github.com/boardroom-booker/booker-backend-go/internal/pkg/validator"
)

func boolptr(b bool) *bool { return &b }

func TestResolveVisibility(t *testing.T) {
	cases := []struct {
		name string
		req  CreateBookingRequest
		want Visibility
	}{
		{"explicit enum", CreateBookingRequest{Visibility: "all_companies"}, VisibilityAllCompanies},
		{"enum beats legacy flag", CreateBookingRequest{Visibility: "private", IsPublic: boolptr(true)}, VisibilityPrivate},
		{"legacy is_public false", CreateBookingRequest{IsPublic: boolptr(false)}, VisibilityPrivate},
		{"legacy is_public true", CreateBookingRequest{IsPublic: boolptr(true)}, VisibilityOwnerCompany},
		{"nothing set defaults", CreateBookingRequest{}, VisibilityOwnerCompany},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.req.ResolveVisibility(); got != c.want {
				t.Errorf("ResolveVisibility() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCreateBookingRequestValidate(t *testing.T) {
	valid := CreateBookingRequest{
		Title:     "Planning",
		StartTime: "2024-06-01T09:00:00Z",
		EndTime:   "2024-06-01T10:00:00Z",
		RoomID:    "room-1",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cases := []struct {
		name  string
		req   CreateBookingRequest
		field string
	}{
		{
			"missing title",
			CreateBookingRequest{StartTime: valid.StartTime, EndTime: valid.EndTime, RoomID: "r"},
			"title",
		},
		{
			"end before start",
			CreateBookingRequest{Title: "X", StartTime: "2024-06-01T10:00:00Z", EndTime: "2024-06-01T09:00:00Z", RoomID: "r"},
			"end_time",
		},
		{
			"zero-length slot",
			CreateBookingRequest{Title: "X", StartTime: "2024-06-01T09:00:00Z", EndTime: "2024-06-01T09:00:00Z", RoomID: "r"},
			"end_time",
		},
		{
			"bad timestamp",
			CreateBookingRequest{Title: "X", StartTime: "tomorrow", EndTime: valid.EndTime, RoomID: "r"},
			"start_time",
		},
		{
			"unknown visibility",
			CreateBookingRequest{Title: "X", StartTime: valid.StartTime, EndTime: valid.EndTime, RoomID: "r", Visibility: "everyone"},
			"visibility",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			errs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("Validate() returned %T, want ValidationErrors", err)
			}
			if _, present := errs.ToMap()[c.field]; !present {
				t.Errorf("Validate() missing error for field %q, got %v", c.field, errs.ToMap())
			}
		})
	}
}
