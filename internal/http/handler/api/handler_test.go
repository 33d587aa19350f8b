package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/taskboard/internal/adapter/memory"
	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/service"
	httpCtx "github.com/bornholm/taskboard/internal/http/context"
	"github.com/pkg/errors"
)

func TestTaskHandlers(t *testing.T) {
	handler, user := createTestHandler(t)

	// Create a task
	status, body := doRequest(t, handler, user, http.MethodPost, "/tasks", CreateTaskRequest{
		Title:       "Buy groceries",
		Description: "Buy milk and bread",
	})

	if e, g := http.StatusCreated, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	var created TaskResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "CREATED", created.Task.Status; e != g {
		t.Errorf("created.Task.Status: expected %s, got %s", e, g)
	}

	// Completing it right away violates the lifecycle
	status, body = doRequest(t, handler, user, http.MethodPut, "/tasks/"+created.Task.ID+"/status", UpdateTaskStatusRequest{
		Status: "COMPLETED",
	})

	if e, g := http.StatusBadRequest, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	var errRes ErrorResponse
	if err := json.Unmarshal(body, &errRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := KindPolicyViolation, errRes.Error.Kind; e != g {
		t.Errorf("errRes.Error.Kind: expected %s, got %s", e, g)
	}

	// Moving to in progress first unlocks completion
	status, body = doRequest(t, handler, user, http.MethodPut, "/tasks/"+created.Task.ID+"/status", UpdateTaskStatusRequest{
		Status: "INPROGRESS",
	})

	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	status, body = doRequest(t, handler, user, http.MethodPut, "/tasks/"+created.Task.ID+"/status", UpdateTaskStatusRequest{
		Status: "COMPLETED",
	})

	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	// Duplicate title is a conflict
	status, body = doRequest(t, handler, user, http.MethodPost, "/tasks", CreateTaskRequest{
		Title:       "Buy groceries",
		Description: "Completely different description",
	})

	if e, g := http.StatusConflict, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	if err := json.Unmarshal(body, &errRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := KindConflict, errRes.Error.Kind; e != g {
		t.Errorf("errRes.Error.Kind: expected %s, got %s", e, g)
	}

	// List returns the single task
	status, body = doRequest(t, handler, user, http.MethodGet, "/tasks", nil)

	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	var list ListTasksResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(list.Tasks); e != g {
		t.Fatalf("len(list.Tasks): expected %d, got %d", e, g)
	}

	// Delete then delete again
	status, body = doRequest(t, handler, user, http.MethodDelete, "/tasks/"+created.Task.ID, nil)

	if e, g := http.StatusNoContent, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	status, body = doRequest(t, handler, user, http.MethodDelete, "/tasks/"+created.Task.ID, nil)

	if e, g := http.StatusNotFound, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	if err := json.Unmarshal(body, &errRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := KindNotFound, errRes.Error.Kind; e != g {
		t.Errorf("errRes.Error.Kind: expected %s, got %s", e, g)
	}
}

func TestTaskHandlersValidation(t *testing.T) {
	handler, user := createTestHandler(t)

	status, body := doRequest(t, handler, user, http.MethodPost, "/tasks", CreateTaskRequest{
		Title:       "Oops",
		Description: "A long enough description",
	})

	if e, g := http.StatusBadRequest, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}

	var errRes ErrorResponse
	if err := json.Unmarshal(body, &errRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := KindValidationError, errRes.Error.Kind; e != g {
		t.Errorf("errRes.Error.Kind: expected %s, got %s", e, g)
	}

	status, body = doRequest(t, handler, user, http.MethodGet, "/tasks?sort=sideways", nil)

	if e, g := http.StatusBadRequest, status; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, body)
	}
}

func createTestHandler(t *testing.T) (http.Handler, model.User) {
	t.Helper()

	taskManager := service.NewTaskManager(memory.NewTaskStore())
	handler := NewHandler(taskManager)

	user := model.NewUser("Ada", "ada@example.net", "not-a-real-hash")

	return handler, user
}

func doRequest(t *testing.T, handler http.Handler, user model.User, method, target string, body any) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(httpCtx.SetUser(req.Context(), user))

	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	res := recorder.Result()
	defer res.Body.Close()

	var buff bytes.Buffer
	if _, err := buff.ReadFrom(res.Body); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res.StatusCode, buff.Bytes()
}
