package main

import (
	"github.com/bornholm/tasks/internal/command"
	"github.com/bornholm/tasks/internal/command/task"
)

func main() {
	command.Main(
		"tasks-cli", "a tasks client tool",
		task.Command(),
	)
}
