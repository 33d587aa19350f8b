package api

import (
	"net/http"

	"github.com/bornholm/taskboard/internal/core/service"
)

// Handler exposes the task board operations under /api/v1. Identity is
// resolved upstream by the authn middleware.
type Handler struct {
	taskManager *service.TaskManager
	mux         *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(taskManager *service.TaskManager) *Handler {
	h := &Handler{
		taskManager: taskManager,
		mux:         &http.ServeMux{},
	}

	h.mux.Handle("POST /tasks", http.HandlerFunc(h.handleCreateTask))
	h.mux.Handle("GET /tasks", http.HandlerFunc(h.handleListTasks))
	h.mux.Handle("PUT /tasks/{taskID}", http.HandlerFunc(h.handleEditTask))
	h.mux.Handle("PUT /tasks/{taskID}/status", http.HandlerFunc(h.handleUpdateTaskStatus))
	h.mux.Handle("DELETE /tasks/{taskID}", http.HandlerFunc(h.handleDeleteTask))

	return h
}

var _ http.Handler = &Handler{}
