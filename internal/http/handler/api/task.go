package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	httpCtx "github.com/bornholm/taskboard/internal/http/context"
	"github.com/pkg/errors"
)

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTask(t model.Task) Task {
	return Task{
		ID:          string(t.ID()),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

type TaskResponse struct {
	Task Task `json:"task"`
}

type ListTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		encodeError(w, r, http.StatusBadRequest, KindValidationError, "could not decode request body")
		return
	}

	task, err := h.taskManager.CreateTask(ctx, user.ID(), req.Title, req.Description)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	encodeResponse(w, r, http.StatusCreated, TaskResponse{Task: toTask(task)})
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	query := r.URL.Query()

	sort, err := port.ParseSortOrder(query.Get("sort"))
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	opts := port.QueryTasksOptions{
		Sort: &sort,
	}

	if search := query.Get("search"); search != "" {
		opts.Search = &search
	}

	tasks, err := h.taskManager.QueryTasks(ctx, user.ID(), opts)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	res := ListTasksResponse{
		Tasks: make([]Task, 0, len(tasks)),
	}

	for _, t := range tasks {
		res.Tasks = append(res.Tasks, toTask(t))
	}

	encodeResponse(w, r, http.StatusOK, res)
}

type EditTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) handleEditTask(w http.ResponseWriter, r *http.Request) {
	taskID := model.TaskID(r.PathValue("taskID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req EditTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		encodeError(w, r, http.StatusBadRequest, KindValidationError, "could not decode request body")
		return
	}

	task, err := h.taskManager.EditTask(ctx, user.ID(), taskID, req.Title, req.Description)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	encodeResponse(w, r, http.StatusOK, TaskResponse{Task: toTask(task)})
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID := model.TaskID(r.PathValue("taskID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		encodeError(w, r, http.StatusBadRequest, KindValidationError, "could not decode request body")
		return
	}

	status, err := model.ParseTaskStatus(req.Status)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	task, err := h.taskManager.UpdateTaskStatus(ctx, user.ID(), taskID, status)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	encodeResponse(w, r, http.StatusOK, TaskResponse{Task: toTask(task)})
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := model.TaskID(r.PathValue("taskID"))

	ctx := r.Context()
	user := httpCtx.User(ctx)

	if err := h.taskManager.DeleteTask(ctx, user.ID(), taskID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
