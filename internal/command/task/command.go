package task

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bornholm/taskboard/internal/command/common"
	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/pkg/board"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagTitle       = "title"
	flagDescription = "description"
	flagSearch      = "search"
	flagSort        = "sort"
	flagTask        = "task"
	flagTo          = "to"
	flagIndex       = "index"
)

func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new task",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagTitle,
				Usage:    "Title of the task",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagDescription,
				Aliases:  []string{"d"},
				Usage:    "Description of the task",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskboardClient, err := common.GetTaskboardClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			task, err := taskboardClient.CreateTask(ctx, cCtx.String(flagTitle), cCtx.String(flagDescription))
			if err != nil {
				return errors.Wrap(err, "could not create task")
			}

			fmt.Println(task.ID)

			return nil
		},
	}
}

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List your tasks",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:    flagSearch,
				Usage:   "Only list tasks whose title or description contains this text",
				Aliases: []string{"q"},
			},
			&cli.StringFlag{
				Name:  flagSort,
				Usage: "Sort order ('latest' or 'oldest')",
				Value: string(port.SortOrderLatest),
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskboardClient, err := common.GetTaskboardClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			sort, err := port.ParseSortOrder(cCtx.String(flagSort))
			if err != nil {
				return errors.WithStack(err)
			}

			tasks, err := taskboardClient.ListTasks(ctx, cCtx.String(flagSearch), sort)
			if err != nil {
				return errors.Wrap(err, "could not list tasks")
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

			fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tTITLE")

			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Status, t.CreatedAt.Format("2006-01-02 15:04"), t.Title)
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func EditCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "Update the title and description of a task",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagTask,
				Usage:    "ID of the task",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagTitle,
				Usage:    "New title of the task",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagDescription,
				Aliases:  []string{"d"},
				Usage:    "New description of the task",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskboardClient, err := common.GetTaskboardClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			task, err := taskboardClient.EditTask(ctx, cCtx.String(flagTask), cCtx.String(flagTitle), cCtx.String(flagDescription))
			if err != nil {
				return errors.Wrap(err, "could not edit task")
			}

			fmt.Println(task.ID)

			return nil
		},
	}
}

func MoveCommand() *cli.Command {
	return &cli.Command{
		Name:  "move",
		Usage: "Move a task to a lane, as a drag-and-drop would",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagTask,
				Usage:    "ID of the task",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagTo,
				Usage:    "Target lane ('CREATED', 'INPROGRESS' or 'COMPLETED')",
				Required: true,
			},
			&cli.IntFlag{
				Name:  flagIndex,
				Usage: "Position within the target lane (default: end of lane)",
				Value: -1,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskboardClient, err := common.GetTaskboardClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			status, err := model.ParseTaskStatus(cCtx.String(flagTo))
			if err != nil {
				return errors.WithStack(err)
			}

			tasks, err := taskboardClient.ListTasks(ctx, "", port.SortOrderLatest)
			if err != nil {
				return errors.Wrap(err, "could not list tasks")
			}

			b := board.New(tasks)

			index := cCtx.Int(flagIndex)
			if index < 0 {
				index = len(b.Lane(status))
			}

			call, err := b.Apply(board.Move{
				TaskID:  cCtx.String(flagTask),
				To:      status,
				ToIndex: index,
			})
			if err != nil {
				return errors.Wrap(err, "could not move task")
			}

			if call != nil {
				task, err := taskboardClient.UpdateTaskStatus(ctx, call.TaskID, string(call.Status))
				b.Resolve(call.TaskID, task, err)
				if err != nil {
					return errors.Wrap(err, "could not move task")
				}
			}

			printBoard(b)

			return nil
		},
	}
}

func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a task",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagTask,
				Usage:    "ID of the task",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			taskboardClient, err := common.GetTaskboardClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := taskboardClient.DeleteTask(ctx, cCtx.String(flagTask)); err != nil {
				return errors.Wrap(err, "could not delete task")
			}

			return nil
		},
	}
}

func printBoard(b *board.Board) {
	for _, status := range []model.TaskStatus{model.TaskStatusCreated, model.TaskStatusInProgress, model.TaskStatusCompleted} {
		fmt.Printf("%s:\n", status)

		for _, t := range b.Lane(status) {
			fmt.Printf("  %s  %s\n", t.ID, t.Title)
		}
	}
}
