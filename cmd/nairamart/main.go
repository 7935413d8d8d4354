package main

import "github.com/adaeze/nairamart/cmd/nairamart/cmd"

func main() {
	cmd.Execute()
}
