package rest

import "net/http"

// NewRouter wires up all REST routes.
func NewRouter(auth *AuthHandler, chat *ChatHandler, expenses *ExpenseHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", auth.Register)
	mux.HandleFunc("POST /api/auth/login", auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	mux.HandleFunc("POST /api/chat/message", chat.SendMessage)

	mux.HandleFunc("GET /api/expenses", expenses.List)
	mux.HandleFunc("GET /api/expenses/total", expenses.Total)
	mux.HandleFunc("GET /api/expenses/summary", expenses.Summary)
	mux.HandleFunc("GET /api/expenses/chart", expenses.Chart)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	return mux
}
