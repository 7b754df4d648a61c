package main

import "github.com/urogers/CircuiTikZ-Designer-to-JSON/cmd/ctj/cmd"

func main() {
	cmd.Execute()
}
