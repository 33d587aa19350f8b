package main

import (
	"github.com/bornholm/taskboard/internal/command"
	"github.com/bornholm/taskboard/internal/command/auth"
	"github.com/bornholm/taskboard/internal/command/task"
)

func main() {
	command.Main(
		"taskboard-cli", "a taskboard client tool",
		auth.SignupCommand(),
		auth.LoginCommand(),
		task.CreateCommand(),
		task.ListCommand(),
		task.EditCommand(),
		task.MoveCommand(),
		task.DeleteCommand(),
	)
}
