package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color support. It is
// safe for concurrent use; batch resolution writes from multiple goroutines.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	green  func(string) string
	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		green:  color("green"),
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

// Result writes a resolved timestamp to stdout.
func (o *Output) Result(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.stdout, o.green(line))
}

// Raw writes a preformatted line (JSON, jq output) to stdout without color.
func (o *Output) Raw(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.stdout, line)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Errorf writes a formatted error message to stderr.
func (o *Output) Errorf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.red("Error: ")+format+"\n", args...)
}
