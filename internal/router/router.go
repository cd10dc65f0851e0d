package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vmss-tech/vmss-backend/internal/middleware/metrics"
	"github.com/vmss-tech/vmss-backend/internal/setup"
)

// New configures the route tree. Reads are public; mutations on courses,
// instructors and contacts require an admin token. The contact form POST
// stays open because anonymous visitors submit it.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	requireAdmin := deps.AuthMiddleware.RequireAdmin

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.ListCourses)
			r.Get("/{id}", h.GetCourse)
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", h.CreateCourse)
				r.Put("/{id}", h.UpdateCourse)
				r.Delete("/{id}", h.DeleteCourse)
			})
		})

		r.Route("/instructors", func(r chi.Router) {
			r.Get("/", h.ListInstructors)
			r.Get("/{id}", h.GetInstructor)
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", h.CreateInstructor)
				r.Put("/{id}", h.UpdateInstructor)
				r.Delete("/{id}", h.DeleteInstructor)
			})
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.ListContacts)
			r.Get("/{id}", h.GetContact)
			r.Post("/", h.CreateContact)
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Put("/{id}", h.UpdateContact)
				r.Delete("/{id}", h.DeleteContact)
			})
		})

		r.Route("/upload", func(r chi.Router) {
			r.Post("/image", h.UploadImage)
			r.Post("/images", h.UploadImages)
			r.Delete("/image/{publicId}", h.DeleteImage)
		})
	})

	return r
}
