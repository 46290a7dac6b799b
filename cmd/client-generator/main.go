// Command client-generator turns a normalized list of API operations into
// Go client interfaces under a declarative generation policy.
//
// Usage:
//
//	# Render Go interfaces into ./generated
//	client-generator generate --operations ops.yaml --settings settings.yaml
//
//	# Print the plan as YAML instead
//	client-generator generate -o ops.yaml -s settings.hcl --format yaml
//
//	# Regenerate whenever an input changes
//	client-generator generate -o ops.yaml -s settings.yaml --watch
//
//	# Validate several operation sets against one policy
//	client-generator check -s settings.yaml petstore.yaml users.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, cleanup := newRootCmd()
	defer cleanup()

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	return 0
}
