package main

import (
	"os"

	"github.com/rentahuman/rentahuman-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
