package main

import "repo/internal/cmd"

func main() {
	cmd.Execute()
}
