package main

import (
	"os"

	"github.com/thenoetrevino/studentsync/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
