package main

import (
	"os"

	"github.com/msto63/textkit/cmd/textkit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
