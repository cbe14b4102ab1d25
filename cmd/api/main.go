package main

import (
	"fmt"
	"net/http"

	"github.com/boardroom-booker/booker-backend-go/internal/config"
	appHTTP "github.com/boardroom-booker/booker-backend-go/internal/handler/http"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/jwt"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/oauth"
	"github.com/boardroom-booker/booker-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/boardroom-booker/booker-backend-go/internal/service/auth"
	serviceBooking "github.com/boardroom-booker/booker-backend-go/internal/service/booking"
	serviceCalendar "github.com/boardroom-booker/booker-backend-go/internal/service/calendar"
	serviceCompany "github.com/boardroom-booker/booker-backend-go/internal/service/company"
	serviceInvitation "github.com/boardroom-booker/booker-backend-go/internal/service/invitation"
	serviceRoom "github.com/boardroom-booker/booker-backend-go/internal/service/room"
	serviceUser "github.com/boardroom-booker/booker-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	roomRepo := postgresql.NewRoomRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	calendarRepo := postgresql.NewCalendarConnectionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	microsoftService := oauth.NewMicrosoftService(cfg.OAuth2Microsoft.ClientID, cfg.OAuth2Microsoft.ClientSecret, cfg.OAuth2Microsoft.TenantID, cfg.OAuth2Microsoft.RedirectURL, cfg.OAuth2Microsoft.Scopes)

	authService := serviceAuth.NewAuthService(db, userRepo, companyRepo, jwtService, jwtRepo)
	userService := serviceUser.NewUserService(userRepo, cfg.Invitation.GuestExpirationDays)
	companyService := serviceCompany.NewCompanyService(db, companyRepo)
	roomService := serviceRoom.NewRoomService(roomRepo)
	calendarService := serviceCalendar.NewCalendarService(calendarRepo, googleService, microsoftService)
	bookingService := serviceBooking.NewBookingService(db, bookingRepo, roomRepo, calendarService)
	invitationService := serviceInvitation.NewInvitationService(
		db,
		invitationRepo,
		userRepo,
		companyRepo,
		jwtService,
		jwtRepo,
		cfg.Invitation.ExpirationDays,
		cfg.Invitation.GuestExpirationDays,
	)

	authHandler := appHTTP.NewAuthHandler(jwtService, authService, googleService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userService, userRepo)
	companyHandler := appHTTP.NewCompanyHandler(companyService, userRepo)
	roomHandler := appHTTP.NewRoomHandler(roomService, userRepo)
	bookingHandler := appHTTP.NewBookingHandler(bookingService, userRepo)
	invitationHandler := appHTTP.NewInvitationHandler(invitationService, jwtService, userRepo)
	calendarHandler := appHTTP.NewCalendarHandler(calendarService, userRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		userHandler,
		companyHandler,
		roomHandler,
		bookingHandler,
		invitationHandler,
		calendarHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
