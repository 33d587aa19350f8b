// Package board models the client side of drag-and-drop: a board state
// that is updated optimistically when a card is dropped, then reconciled
// once the server confirms or rejects the move. It is a pure state
// machine, independent of any UI or transport.
package board

import (
	"slices"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/http/handler/api"
	"github.com/pkg/errors"
)

var (
	ErrUnknownTask   = errors.New("unknown task")
	ErrMoveInFlight  = errors.New("a move is already in flight for this task")
	ErrUnknownStatus = errors.New("unknown status")
)

// Move is a drop of a task card onto a lane, at the given position
// within that lane.
type Move struct {
	TaskID  string
	To      model.TaskStatus
	ToIndex int
}

// StatusCall is the single server call a cross-lane move translates
// into. Intra-lane ordering never reaches the server.
type StatusCall struct {
	TaskID string
	Status model.TaskStatus
}

// Board holds the last server-confirmed task list and the current,
// possibly optimistic, task list. Lane ordering is the slice ordering
// restricted to the tasks of a status.
type Board struct {
	confirmed []api.Task
	tasks     []api.Task
	inflight  map[string]struct{}
}

func New(tasks []api.Task) *Board {
	return &Board{
		confirmed: slices.Clone(tasks),
		tasks:     slices.Clone(tasks),
		inflight:  map[string]struct{}{},
	}
}

// Refresh adopts a freshly fetched task list as the confirmed state,
// dropping any optimistic local ordering.
func (b *Board) Refresh(tasks []api.Task) {
	b.confirmed = slices.Clone(tasks)
	b.tasks = slices.Clone(tasks)
}

// Tasks returns the current, possibly optimistic, task list.
func (b *Board) Tasks() []api.Task {
	return slices.Clone(b.tasks)
}

// Lane returns the current tasks of the given status, in lane order.
func (b *Board) Lane(status model.TaskStatus) []api.Task {
	lane := make([]api.Task, 0)

	for _, t := range b.tasks {
		if model.TaskStatus(t.Status) == status {
			lane = append(lane, t)
		}
	}

	return lane
}

// InFlight reports whether the given task has an unresolved move. The
// interaction layer should refuse to drag such a task until Resolve is
// called.
func (b *Board) InFlight(taskID string) bool {
	_, inflight := b.inflight[taskID]
	return inflight
}

// Apply validates a drop and applies it to the local state, returning
// the server call to issue, or nil when the move is a local-only
// reorder or a no-op. The lifecycle rule is checked before anything is
// mutated: a forbidden transition leaves the board untouched and issues
// no call.
func (b *Board) Apply(move Move) (*StatusCall, error) {
	switch move.To {
	case model.TaskStatusCreated, model.TaskStatusInProgress, model.TaskStatusCompleted:
	default:
		return nil, errors.WithStack(ErrUnknownStatus)
	}

	current := slices.IndexFunc(b.tasks, func(t api.Task) bool {
		return t.ID == move.TaskID
	})
	if current < 0 {
		return nil, errors.WithStack(ErrUnknownTask)
	}

	if b.InFlight(move.TaskID) {
		return nil, errors.WithStack(ErrMoveInFlight)
	}

	task := b.tasks[current]
	from := model.TaskStatus(task.Status)

	if from == move.To && b.laneIndex(current) == move.ToIndex {
		return nil, nil
	}

	if !model.CanTransition(from, move.To) {
		return nil, errors.WithStack(&model.PolicyError{From: from, To: move.To})
	}

	b.tasks = slices.Delete(b.tasks, current, current+1)

	task.Status = string(move.To)

	b.tasks = slices.Insert(b.tasks, b.insertionIndex(move.To, move.ToIndex), task)

	if from == move.To {
		// Intra-lane reordering is ephemeral local state
		return nil, nil
	}

	b.inflight[move.TaskID] = struct{}{}

	return &StatusCall{TaskID: move.TaskID, Status: move.To}, nil
}

// Resolve reconciles the board once the server call of a move settled.
// On success the server-returned task becomes the source of truth for
// its id; on failure the whole board reverts to the last confirmed
// state.
func (b *Board) Resolve(taskID string, confirmed *api.Task, callErr error) {
	delete(b.inflight, taskID)

	if callErr != nil {
		b.tasks = slices.Clone(b.confirmed)
		return
	}

	if confirmed != nil {
		for i := range b.tasks {
			if b.tasks[i].ID == confirmed.ID {
				b.tasks[i] = *confirmed
				break
			}
		}
	}

	b.confirmed = slices.Clone(b.tasks)
}

// laneIndex returns the position of the task at the given slice index
// within its lane.
func (b *Board) laneIndex(index int) int {
	position := 0

	for i := 0; i < index; i++ {
		if b.tasks[i].Status == b.tasks[index].Status {
			position++
		}
	}

	return position
}

// insertionIndex maps a position within a lane to a position within the
// task slice, clamping to the end of the lane.
func (b *Board) insertionIndex(status model.TaskStatus, laneIndex int) int {
	seen := 0

	for i, t := range b.tasks {
		if model.TaskStatus(t.Status) != status {
			continue
		}

		if seen == laneIndex {
			return i
		}

		seen++
	}

	return len(b.tasks)
}
