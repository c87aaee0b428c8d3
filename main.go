package main

import (
	"fmt"

	"cellboard/ui"
)

func main() {
	if err := ui.RunCellboard(); err != nil {
		fmt.Println(err)
	}
}
