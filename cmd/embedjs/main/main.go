package main

import (
	"fmt"
	"os"

	"github.com/webfig/embedjs/cmd/embedjs"
	"github.com/webfig/embedjs/pkg/style"
)

func main() {
	rootCmd := embedjs.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
