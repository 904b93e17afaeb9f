package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"household-hub-go/internal/config"
	"household-hub-go/internal/transport/httpserver/handler"
	authmw "household-hub-go/internal/transport/httpserver/middleware"
	"household-hub-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Post("/auth/register", handlers.Register)

		auth := authmw.NewAuth(cfg.Auth, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/profile", handlers.GetProfile)
			r.Patch("/profile", handlers.UpdateProfile)

			r.Get("/families/me", handlers.GetFamilyMe)
			r.Post("/families", handlers.CreateFamily)
			r.Post("/families/invite", handlers.InviteMember)
			r.Get("/families/me/members", handlers.ListFamilyMembers)

			r.Get("/tasks", handlers.ListTasks)
			r.Post("/tasks", handlers.CreateTask)
			r.Get("/tasks/{id}", handlers.GetTask)
			r.Patch("/tasks/{id}", handlers.UpdateTask)
			r.Post("/tasks/{id}/toggle", handlers.ToggleTask)
			r.Delete("/tasks/{id}", handlers.DeleteTask)

			r.Get("/meals", handlers.ListMeals)
			r.Post("/meals", handlers.CreateMeal)
			r.Post("/meals/generate", handlers.GenerateMealPlan)
			r.Patch("/meals/{id}/status", handlers.UpdateMealStatus)
			r.Delete("/meals/{id}", handlers.DeleteMeal)

			r.Get("/shopping", handlers.ListShoppingItems)
			r.Post("/shopping", handlers.AddShoppingItem)
			r.Patch("/shopping/{id}", handlers.UpdateShoppingItem)
			r.Post("/shopping/{id}/toggle", handlers.ToggleShoppingItem)
			r.Delete("/shopping/{id}", handlers.DeleteShoppingItem)

			r.Get("/weather", handlers.GetForecast)
			r.Post("/laundry/advice", handlers.LaundryAdvice)
		})
	})

	return r
}
