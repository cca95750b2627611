package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/sports/{sport}/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/sports/{sport}/players/{playerID}/opponents", handler.ListOpponents)
	mux.HandleFunc("GET /v1/sports/{sport}/players/{playerID}/stats", handler.GetStats)
	mux.HandleFunc("GET /v1/sports/{sport}/gamelogs", handler.ListGameLogs)
	mux.HandleFunc("GET /v1/sports/{sport}/games", handler.ListGames)
}
