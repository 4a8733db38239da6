package main

import "github.com/haritsf/pr-report/cmd"

func main() {
	cmd.Execute()
}
