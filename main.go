package main

import (
	"fmt"
	"os"

	"blockpuzzle/ui"
)

func main() {
	if err := ui.RunBlockPuzzle(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
