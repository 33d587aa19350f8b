package memory

import (
	"testing"

	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/internal/core/port/testsuite"
)

func TestTaskStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		return NewTaskStore(), nil
	})
}

func TestUserStore(t *testing.T) {
	testsuite.TestUserStore(t, func(t *testing.T) (port.UserStore, error) {
		return NewUserStore(), nil
	})
}
