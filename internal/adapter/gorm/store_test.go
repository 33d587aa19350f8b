package gorm

import (
	"testing"

	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/internal/core/port/testsuite"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func TestTaskStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		store, err := createTestStore(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return store, nil
	})
}

func TestUserStore(t *testing.T) {
	testsuite.TestUserStore(t, func(t *testing.T) (port.UserStore, error) {
		store, err := createTestStore(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return store, nil
	})
}

func createTestStore(t *testing.T) (*Store, error) {
	t.Helper()

	dsn := "file:" + t.TempDir() + "/store.sqlite"

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	return NewStore(db), nil
}
