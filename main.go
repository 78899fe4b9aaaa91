// =============================================================================
// Automated Data Analysis - Main Entry Point
// =============================================================================
//
// USAGE:
//   analyzer analyze <file|dir>...  - Clean, check and summarize data files
//   analyzer validate               - Validate and print the configuration
//   analyzer version                - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Pipeline stages, table model, configuration, logging
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/automated-data-analysis/cmd"
)

func main() {
	cmd.Execute()
}
