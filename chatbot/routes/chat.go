package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nullkernel/AI-Chatbot/chatbot/controllers"
	"github.com/Nullkernel/AI-Chatbot/chatbot/utils/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()

	// POST /chat : one exchange (creates a session when none is given)
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp, err := ctrl.Chat(r.Context(), req)
		if err != nil {
			if errors.Is(err, controllers.ErrAPIKeyMissing) {
				http.Error(w, controllers.ErrAPIKeyMissing.Error(), http.StatusInternalServerError)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, resp)
	})

	// POST /chat/sessions : create an empty session
	r.Post("/sessions", func(w http.ResponseWriter, r *http.Request) {
		session, err := ctrl.CreateSession(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, session)
	})

	// GET /chat/sessions : newest-updated first
	r.Get("/sessions", func(w http.ResponseWriter, r *http.Request) {
		sessions, err := ctrl.ListSessions(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, sessions)
	})

	// GET /chat/sessions/{session_id}/messages : oldest first
	r.Get("/sessions/{session_id}/messages", func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")
		msgs, err := ctrl.GetMessagesForSession(r.Context(), sessionID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, msgs)
	})

	// DELETE /chat/sessions/{session_id} : cascade delete, idempotent
	r.Delete("/sessions/{session_id}", func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "session_id")
		if err := ctrl.DeleteSession(r.Context(), sessionID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, types.MessageResponse{Message: "Session deleted successfully"})
	})

	return r
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
