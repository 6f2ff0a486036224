package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leaderboards", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/leaderboards/board", handler.GetLeaderboardBoard)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/matches/standings", handler.GetMatchStandings)
	mux.HandleFunc("GET /v1/awards/{yearMonth}", handler.GetAward)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminPassword string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminPassword(adminPassword, h)
	}

	mux.Handle("GET /v1/admin/awards/{yearMonth}/candidates", admin(handler.ListAwardCandidates))
	mux.Handle("POST /v1/admin/awards/{yearMonth}/slots", admin(handler.AssignAwardSlot))
	mux.Handle("POST /v1/admin/awards/{yearMonth}/slots/append", admin(handler.AppendAwardSlot))
	mux.Handle("DELETE /v1/admin/awards/{yearMonth}/slots/{index}", admin(handler.ClearAwardSlot))
}
