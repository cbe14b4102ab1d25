package http

import (
	"net/http"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/auth"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// currentUser loads the acting account from the access token claims. The
// record comes from the database, so role changes and guest expiry apply to
// tokens issued before them.
func currentUser(r *http.Request, users user.UserRepository) (user.User, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, auth.ErrInvalidToken
	}

	u, err := users.GetByID(r.Context(), userID)
	if err != nil {
		return user.User{}, err
	}

	if !u.IsActive(time.Now()) {
		return user.User{}, auth.ErrAccountExpired
	}
	return u, nil
}
