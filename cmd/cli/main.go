package main

import "appres/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
