package main

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/arvonet/lnet/request"
)

var checkCmd = &cobra.Command{
	Use:   "check [request-json]",
	Short: "Validate a serialized learning net (exit 0 valid, non-zero invalid)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runAction("check"),
}

var createCmd = &cobra.Command{
	Use:   "create [request-json]",
	Short: "Build a fresh learning net from a list of section ids",
	Args:  cobra.MaximumNArgs(1),
	Run:   runAction("create"),
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [request-json]",
	Short: "Mark active units and recommend a next unit or full study path",
	Args:  cobra.MaximumNArgs(1),
	Run:   runAction("recommend"),
}

// runAction returns a cobra Run function that decodes the request payload,
// forces its Action field to action (the subcommand's own name, never
// trusted from the JSON body — this is the one place the CLI layer
// overrides a decoded field), dispatches it, and mirrors the response.
func runAction(action string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		raw, err := payload(args)
		if err != nil {
			log.Errf("lnetctl %s: reading request: %v", action, err)
			fmt.Println(err)
			exitCode = 1

			return
		}

		req, err := request.Decode(raw)
		if err != nil {
			log.Errf("lnetctl %s: decoding request: %v", action, err)
			fmt.Println(err)
			exitCode = 1

			return
		}
		req.Action = action

		log.LogVf("lnetctl %s: dispatching request (network=%d bytes, sections=%d)",
			action, len(req.Network), len(req.Sections))

		resp := request.Dispatch(req)
		fmt.Println(resp.Stdout)
		exitCode = resp.ExitCode

		if resp.ExitCode != 0 {
			log.Warnf("lnetctl %s: exiting %d", action, resp.ExitCode)
		}
	}
}

// payload returns the request's raw JSON bytes: args[0] if given, stdin
// otherwise, per §6's "argv[1] or stdin" contract.
func payload(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}

	return io.ReadAll(os.Stdin)
}
