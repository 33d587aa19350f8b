package board

import (
	"testing"
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/http/handler/api"
	"github.com/pkg/errors"
)

func newTestBoard() *Board {
	return New([]api.Task{
		{ID: "a", Title: "Task a", Status: string(model.TaskStatusCreated)},
		{ID: "b", Title: "Task b", Status: string(model.TaskStatusCreated)},
		{ID: "c", Title: "Task c", Status: string(model.TaskStatusInProgress)},
		{ID: "d", Title: "Task d", Status: string(model.TaskStatusCompleted)},
	})
}

func TestBoardNoOpMove(t *testing.T) {
	b := newTestBoard()

	call, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusCreated, ToIndex: 0})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if call != nil {
		t.Errorf("call: expected nil, got %+v", call)
	}
}

func TestBoardIntraLaneReorder(t *testing.T) {
	b := newTestBoard()

	call, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusCreated, ToIndex: 1})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	// Reordering within a lane never reaches the server
	if call != nil {
		t.Errorf("call: expected nil, got %+v", call)
	}

	lane := b.Lane(model.TaskStatusCreated)

	if e, g := 2, len(lane); e != g {
		t.Fatalf("len(lane): expected %d, got %d", e, g)
	}

	if e, g := "b", lane[0].ID; e != g {
		t.Errorf("lane[0].ID: expected %s, got %s", e, g)
	}

	if e, g := "a", lane[1].ID; e != g {
		t.Errorf("lane[1].ID: expected %s, got %s", e, g)
	}

	if b.InFlight("a") {
		t.Errorf("b.InFlight(\"a\") should be false after a local reorder")
	}
}

func TestBoardForbiddenMoveLeavesStateUntouched(t *testing.T) {
	b := newTestBoard()

	before := b.Tasks()

	call, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusCompleted, ToIndex: 0})

	var policyErr *model.PolicyError
	if !errors.As(err, &policyErr) {
		t.Fatalf("expected *model.PolicyError, got %v", err)
	}

	if call != nil {
		t.Errorf("call: expected nil, got %+v", call)
	}

	after := b.Tasks()

	if e, g := len(before), len(after); e != g {
		t.Fatalf("len(after): expected %d, got %d", e, g)
	}

	for i := range before {
		if e, g := before[i], after[i]; e != g {
			t.Errorf("after[%d]: expected %+v, got %+v", i, e, g)
		}
	}
}

func TestBoardCrossLaneMove(t *testing.T) {
	b := newTestBoard()

	call, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusInProgress, ToIndex: 0})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if call == nil {
		t.Fatalf("call should not be nil")
	}

	if e, g := "a", call.TaskID; e != g {
		t.Errorf("call.TaskID: expected %s, got %s", e, g)
	}

	if e, g := model.TaskStatusInProgress, call.Status; e != g {
		t.Errorf("call.Status: expected %s, got %s", e, g)
	}

	// The move is rendered before the server answers
	lane := b.Lane(model.TaskStatusInProgress)

	if e, g := 2, len(lane); e != g {
		t.Fatalf("len(lane): expected %d, got %d", e, g)
	}

	if e, g := "a", lane[0].ID; e != g {
		t.Errorf("lane[0].ID: expected %s, got %s", e, g)
	}

	if !b.InFlight("a") {
		t.Errorf("b.InFlight(\"a\") should be true until the move resolves")
	}

	// A second drag of the same task is refused until then
	if _, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusCompleted, ToIndex: 0}); !errors.Is(err, ErrMoveInFlight) {
		t.Errorf("second Apply(): expected ErrMoveInFlight, got %v", err)
	}
}

func TestBoardResolveSuccess(t *testing.T) {
	b := newTestBoard()

	call, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusInProgress, ToIndex: 0})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	updatedAt := time.Now()

	b.Resolve(call.TaskID, &api.Task{
		ID:        "a",
		Title:     "Task a",
		Status:    string(model.TaskStatusInProgress),
		UpdatedAt: updatedAt,
	}, nil)

	if b.InFlight("a") {
		t.Errorf("b.InFlight(\"a\") should be false after Resolve()")
	}

	lane := b.Lane(model.TaskStatusInProgress)

	if e, g := "a", lane[0].ID; e != g {
		t.Errorf("lane[0].ID: expected %s, got %s", e, g)
	}

	// The server-returned task is now the source of truth
	if e, g := updatedAt, lane[0].UpdatedAt; !g.Equal(e) {
		t.Errorf("lane[0].UpdatedAt: expected %s, got %s", e, g)
	}
}

func TestBoardResolveFailureRevertsOptimisticState(t *testing.T) {
	b := newTestBoard()

	before := b.Tasks()

	call, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusInProgress, ToIndex: 0})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	// The server rejected the move, e.g. the task was deleted concurrently
	b.Resolve(call.TaskID, nil, errors.New("not found"))

	after := b.Tasks()

	if e, g := len(before), len(after); e != g {
		t.Fatalf("len(after): expected %d, got %d", e, g)
	}

	for i := range before {
		if e, g := before[i], after[i]; e != g {
			t.Errorf("after[%d]: expected %+v, got %+v", i, e, g)
		}
	}

	if b.InFlight("a") {
		t.Errorf("b.InFlight(\"a\") should be false after Resolve()")
	}
}

func TestBoardUnknownTask(t *testing.T) {
	b := newTestBoard()

	if _, err := b.Apply(Move{TaskID: "nope", To: model.TaskStatusInProgress, ToIndex: 0}); !errors.Is(err, ErrUnknownTask) {
		t.Errorf("Apply(): expected ErrUnknownTask, got %v", err)
	}
}

func TestBoardRoundTrip(t *testing.T) {
	b := newTestBoard()

	// CREATED -> INPROGRESS -> COMPLETED, resolving each move
	call, err := b.Apply(Move{TaskID: "a", To: model.TaskStatusInProgress, ToIndex: 0})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	b.Resolve(call.TaskID, &api.Task{ID: "a", Title: "Task a", Status: string(model.TaskStatusInProgress)}, nil)

	call, err = b.Apply(Move{TaskID: "a", To: model.TaskStatusCompleted, ToIndex: 0})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	b.Resolve(call.TaskID, &api.Task{ID: "a", Title: "Task a", Status: string(model.TaskStatusCompleted)}, nil)

	lane := b.Lane(model.TaskStatusCompleted)

	if e, g := 2, len(lane); e != g {
		t.Fatalf("len(lane): expected %d, got %d", e, g)
	}

	if e, g := "a", lane[0].ID; e != g {
		t.Errorf("lane[0].ID: expected %s, got %s", e, g)
	}
}
