package handlers

import (
	"net/http"

	"github.com/vedran77/tick/internal/service"
	"github.com/vedran77/tick/internal/transport/http/middleware"
	"go.uber.org/zap"
)

// NewRouter builds the full route table. Auth routes are public; every
// task route sits behind the bearer-token gate with no opt-out.
func NewRouter(log *zap.SugaredLogger, authService *service.AuthService, taskService *service.TaskService) http.Handler {
	authHandler := NewAuthHandler(authService, log)
	taskHandler := NewTaskHandler(taskService, log)

	auth := middleware.Auth(authService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /auth/verify", authHandler.Verify)

	mux.Handle("GET /tasks", auth(http.HandlerFunc(taskHandler.List)))
	mux.Handle("POST /tasks", auth(http.HandlerFunc(taskHandler.Create)))
	mux.Handle("GET /tasks/{id}", auth(http.HandlerFunc(taskHandler.Get)))
	mux.Handle("PUT /tasks/{id}", auth(http.HandlerFunc(taskHandler.Update)))
	mux.Handle("DELETE /tasks/{id}", auth(http.HandlerFunc(taskHandler.Delete)))

	return middleware.CORS(middleware.Recover(log)(mux))
}
