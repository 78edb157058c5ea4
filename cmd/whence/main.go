// whence resolves natural language time expressions into concrete timestamps.
package main

import (
	"fmt"
	"os"

	"github.com/whencehq/whence/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
