package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/packsmith/cmd/packsmith"
	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/ui"
)

func main() {
	rootCmd := packsmith.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr != nil || renderer.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		// Application failures exit with the application's own status
		os.Exit(errors.ExitCode(err))
	}
}
