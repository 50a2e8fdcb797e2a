package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/jeunessebiere/site-api/internal/config"
	"github.com/jeunessebiere/site-api/internal/transport/http/handlers"
	"github.com/jeunessebiere/site-api/internal/transport/http/middleware"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Members   *handlers.MembersHandler
	Events    *handlers.EventsHandler
	Carousel  *handlers.CarouselHandler
	Users     *handlers.UsersHandler
	Contact   *handlers.ContactHandler
	Dashboard *handlers.DashboardHandler
	Health    *handlers.HealthHandler
}

// New assembles the full route tree. Public reads stay open, the
// contact form and login get a per-IP rate limit, and everything else
// sits behind the admin gate.
func New(h Handlers, auth middleware.Authenticator, uploadDir string, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	publicLimit := func(next http.Handler) http.Handler { return next }
	if cfg.RLEnabled {
		publicLimit = httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow)
	}

	r.Get("/healthz", h.Health.Check)

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// set before the nested mounts so subrouters inherit them
		r.NotFound(notFound)
		r.MethodNotAllowed(methodNotAllowed)

		r.Route("/auth", func(r chi.Router) {
			r.With(publicLimit).Post("/login", h.Auth.Login)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(auth))
				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)
			})
		})

		r.Route("/members", func(r chi.Router) {
			r.Get("/", h.Members.List)
			r.Get("/{id}", h.Members.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(auth), middleware.RequireAdmin)
				r.Post("/", h.Members.Create)
				r.Put("/{id}", h.Members.Update)
				r.Delete("/{id}", h.Members.Delete)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Events.List)
			r.Get("/upcoming", h.Events.Upcoming)
			r.Get("/{id}", h.Events.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(auth), middleware.RequireAdmin)
				r.Post("/", h.Events.Create)
				r.Put("/{id}", h.Events.Update)
				r.Delete("/{id}", h.Events.Delete)
			})
		})

		r.Route("/carousel", func(r chi.Router) {
			r.Get("/", h.Carousel.List)
			r.Get("/{id}", h.Carousel.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(auth), middleware.RequireAdmin)
				r.Post("/", h.Carousel.Create)
				r.Put("/{id}", h.Carousel.Update)
				r.Delete("/{id}", h.Carousel.Delete)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.With(publicLimit).Post("/", h.Contact.Submit)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(auth), middleware.RequireAdmin)
				r.Get("/", h.Contact.List)
				r.Get("/{id}", h.Contact.Get)
				r.Delete("/{id}", h.Contact.Delete)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAuth(auth), middleware.RequireAdmin)
			r.Get("/", h.Users.List)
			r.Get("/{id}", h.Users.Get)
			r.Post("/", h.Users.Create)
			r.Put("/{id}", h.Users.Update)
			r.Delete("/{id}", h.Users.Delete)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(middleware.RequireAuth(auth), middleware.RequireAdmin)
			r.Get("/stats", h.Dashboard.Stats)
			r.Get("/recent-events", h.Dashboard.RecentEvents)
			r.Get("/recent-activities", h.Dashboard.RecentActivities)
		})
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusNotFound, "Endpoint not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
