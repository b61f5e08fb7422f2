package main

import "simplenotes/cmd/simplenotes-cli/cmd"

func main() {
	cmd.Execute()
}
