package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if code, ok := isExitCode(err); ok {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}
