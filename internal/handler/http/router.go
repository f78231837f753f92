package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hrms-backend-go/internal/config"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	Config      *config.Config
	JWTService  jwt.Service
	UserRepo    user.UserRepository
	Auth        AuthHandler
	User        UserHandler
	Employee    EmployeeHandler
	Payroll     PayrollHandler
	Performance PerformanceHandler
	Attendance  AttendanceHandler
	AI          AIHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.App.FrontendURL},
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth(), deps.UserRepo))

			r.With(middleware.RequireRole(user.RoleAdmin)).
				Get("/users", deps.User.List)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/my-profile", deps.Employee.GetMyProfile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Get("/", deps.Employee.List)
					r.Post("/", deps.Employee.Create)
					r.Get("/{id}", deps.Employee.GetByID)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin))
					r.Put("/{id}", deps.Employee.Update)
					r.Delete("/{id}", deps.Employee.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my-payslips", deps.Payroll.MyPayslips)

				r.With(middleware.RequireRole(user.RoleAdmin, user.RoleHR)).
					Get("/", deps.Payroll.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin))
					r.Post("/", deps.Payroll.Create)
					r.Put("/{id}", deps.Payroll.Update)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/my-reviews", deps.Performance.MyReviews)

				r.With(middleware.RequireRole(user.RoleAdmin, user.RoleHR, user.RoleManager)).
					Get("/", deps.Performance.List)

				r.With(middleware.RequireRole(user.RoleAdmin, user.RoleManager)).
					Post("/", deps.Performance.Create)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
				r.Get("/", deps.Attendance.List)
				r.Post("/", deps.Attendance.Mark)
			})

			r.Route("/ai", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR, user.RoleManager))
					r.Get("/insights", deps.AI.Insights)
					r.Get("/sentiment", deps.AI.Sentiment)
					r.Post("/chatbot", deps.AI.Chat)
					r.Post("/generate-template", deps.AI.GenerateTemplate)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleHR))
					r.Post("/screen-resume", deps.AI.ScreenResume)
					r.Post("/voice-interview", deps.AI.VoiceInterview)
				})
			})
		})
	})

	return r
}
