package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	var path string
	for _, arg := range os.Args[1:] {
		if !strings.HasPrefix(arg, "-") {
			path = arg
			break
		}
	}
	if err := runTUI(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
