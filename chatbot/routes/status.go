package routes

import (
	"encoding/json"
	"net/http"

	"github.com/Nullkernel/AI-Chatbot/chatbot/controllers"
	"github.com/Nullkernel/AI-Chatbot/chatbot/utils/types"

	"github.com/go-chi/chi/v5"
)

func StatusRoutes(ctrl *controllers.StatusController) chi.Router {
	r := chi.NewRouter()

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.StatusCheckCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		check, err := ctrl.Create(r.Context(), *req.ClientName)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, check)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		checks, err := ctrl.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, checks)
	})

	return r
}
