package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/question-bank/internal/admin"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/container"
	"github.com/saulo-duarte/question-bank/internal/middlewares"
	"github.com/saulo-duarte/question-bank/internal/question"
	"github.com/saulo-duarte/question-bank/internal/stats"
	"github.com/saulo-duarte/question-bank/internal/user"
)

func New(c *container.Container) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(c.Settings.CORSAllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{
			"message": "Question Bank API",
			"docs":    "/swagger/index.html",
			"health":  "/health",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	authenticate := auth.AuthMiddleware(c.UserContainer.Service)

	r.Mount("/auth", user.Routes(c.UserContainer.Handler, authenticate, c.AuthHandler.Logout))

	r.Route("/api", func(r chi.Router) {
		r.Use(authenticate)

		r.Mount("/questions", question.Routes(c.QuestionContainer.Handler))
		r.Mount("/stats", stats.Routes(c.StatsContainer.Handler))
		r.Mount("/admin", admin.Routes(c.AdminContainer.Handler))
	})
	return r
}
