package main

import (
	"fmt"
	"os"

	_ "github.com/pdxmph/clientbook/internal/clipboard/osc52"
	_ "github.com/pdxmph/clientbook/internal/clipboard/system"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
