// Command lnetctl is the CLI entry point for the learning-net engine: it
// decodes one JSON request per §6 of the protocol and dispatches it to the
// check/create/recommend orchestration in the request package.
package main

import (
	"os"

	"fortio.org/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("lnetctl: %v", err)
	}
	os.Exit(exitCode)
}
