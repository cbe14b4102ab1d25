package http

import (
	"log/slog"
	"os"

	"github.com/boardroom-booker/booker-backend-go/internal/config"
	"github.com/boardroom-booker/booker-backend-go/internal/handler/http/middleware"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	companyHandler CompanyHandler,
	roomHandler RoomHandler,
	bookingHandler BookingHandler,
	invitationHandler InvitationHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "booker-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Invitation codes are checked and accepted before a session exists
		r.Route("/invitations/{code}", func(r chi.Router) {
			r.Get("/", invitationHandler.Validate)
			r.Post("/accept", invitationHandler.Accept)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", userHandler.GetProfile)

			r.Route("/users", func(r chi.Router) {
				// Managers and admins only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", userHandler.List)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", userHandler.Get)
					r.Put("/", userHandler.Update)
					r.Delete("/", userHandler.Delete)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Put("/role", userHandler.UpdateRole)
					})
				})
			})

			r.Route("/companies", func(r chi.Router) {
				r.Route("/my", func(r chi.Router) {
					r.Get("/", companyHandler.GetMy)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Put("/", companyHandler.Update)
						r.Delete("/", companyHandler.Delete)
					})
				})
				r.Get("/{id}", companyHandler.Get)
			})

			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", roomHandler.List)
				r.Get("/{id}", roomHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", roomHandler.Create)
					r.Put("/{id}", roomHandler.Update)
					r.Delete("/{id}", roomHandler.Delete)
				})
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", bookingHandler.List)
				r.Post("/", bookingHandler.Create)
				r.Get("/{id}", bookingHandler.Get)
				r.Put("/{id}", bookingHandler.Update)
				r.Delete("/{id}", bookingHandler.Delete)
			})

			// Managers and admins only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/invitations", invitationHandler.Create)
				r.Get("/invitations", invitationHandler.List)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/connections", calendarHandler.List)
				r.Get("/connect/{provider}", calendarHandler.Connect)
				r.Get("/callback/{provider}", calendarHandler.Callback)
				r.Delete("/connections/{provider}", calendarHandler.Disconnect)
			})
		})
	})
	return r
}
