package routes

import (
	"github.com/Nullkernel/AI-Chatbot/chatbot/controllers"

	"github.com/go-chi/chi/v5"
)

func HealthRoutes(ctrl *controllers.HealthController) chi.Router {
	r := chi.NewRouter()
	r.Get("/", ctrl.Root)
	return r
}
