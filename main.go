package main

import "github.com/timvw/pane-pilot/cmd"

func main() {
	cmd.Execute()
}
