package main

import "task-tracker.com/td/cmd"

func main() {
	cmd.Execute()
}
