package main

import "github.com/Tiliavir/timelogger/cmd"

func main() {
	cmd.Execute()
}
