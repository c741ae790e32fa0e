package main

import "task-board-system.com/task-board-system/cmd"

func main() {
	cmd.Execute()
}
