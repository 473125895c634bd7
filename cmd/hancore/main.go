package main

import (
	"fmt"
	"os"

	"hancore/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hancore: %v\n", err)
		os.Exit(1)
	}
}
