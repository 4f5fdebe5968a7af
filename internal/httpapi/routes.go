package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cubedrafter/draft-backend/internal/cards"
	"github.com/cubedrafter/draft-backend/internal/hub"
	"github.com/cubedrafter/draft-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, cubes *cards.Client) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/lobbies", CreateLobby(h))
	r.Post("/lobbies/{code}/resume", ResumeLobby(h))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, cubes))
	return r
}
