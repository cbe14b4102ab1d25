package invitation

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		isUsed    bool
		expiresAt time.Time
		want      Status
	}{
		{"pending", false, now.Add(24 * time.Hour), StatusPending},
		{"expired", false, now.Add(-time.Minute), StatusExpired},
		{"used", true, now.Add(24 * time.Hour), StatusUsed},
		{"expiry wins over used", true, now.Add(-time.Minute), StatusExpired},
		{"expiring exactly now is still pending", false, now, StatusPending},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inv := Invitation{IsUsed: c.isUsed, ExpiresAt: c.expiresAt}
			if got := inv.Classify(now); got != c.want {
				t.Errorf("Classify() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCanBeAccepted(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	pending := Invitation{ExpiresAt: now.Add(time.Hour)}
	if !pending.CanBeAccepted(now) {
		t.Error("pending invitation should be acceptable")
	}

	used := Invitation{IsUsed: true, ExpiresAt: now.Add(time.Hour)}
	if used.CanBeAccepted(now) {
		t.Error("used invitation must not be acceptable again")
	}

	expired := Invitation{ExpiresAt: now.Add(-time.Hour)}
	if expired.CanBeAccepted(now) {
		t.Error("expired invitation must not be acceptable")
	}
}
