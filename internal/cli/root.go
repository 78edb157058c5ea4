// Package cli implements the whence command line interface.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/itchyny/gojq"
	timefmt "github.com/itchyny/timefmt-go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"github.com/whencehq/whence"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color    = colorAuto
	langName string
	nowFlag  string
	utcFlag  bool
	format   string
	asJSON   bool
	jqExpr   string
	jobs     int
)

var rootCmd = &cobra.Command{
	Use:   "whence [flags] <expression>...",
	Short: "Resolve natural language time expressions",
	Long: `whence parses natural language time expressions and prints the
concrete timestamps they refer to.

<expression> examples:
  now                       The current moment
  "in 5 minutes"            Relative to now
  "2 hours ago"             Relative to now, backwards
  "tomorrow at 3:30 pm"     A day reference with a clock time
  "next friday"             The friday after this one
  15/03/2024                A calendar date (day first)
  2024-01-15T14:30:00Z      ISO 8601

A single "-" reads one expression per line from standard input and
resolves them concurrently, preserving input order.

Examples:
  whence "in 5 minutes"
  whence -l de "morgen um 15:30 Uhr"
  whence --now 2024-03-15T14:30:00Z "next friday"
  whence --format "%Y-%m-%d %H:%M" tomorrow
  whence --json --jq .unix now
  cat exprs.txt | whence -`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		if _, err := whence.ParseLanguage(langName); err != nil {
			return fmt.Errorf("invalid --lang %q: must be one of en, english, de, or german", langName)
		}
		if nowFlag != "" {
			if _, err := time.Parse(time.RFC3339, nowFlag); err != nil {
				return fmt.Errorf("invalid --now %q: %w", nowFlag, err)
			}
		}
		if jqExpr != "" {
			if _, err := gojq.Parse(jqExpr); err != nil {
				return fmt.Errorf("invalid --jq expression: %w", err)
			}
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&langName, "lang", "l", "en",
		"expression language: en, de")
	rootCmd.Flags().StringVar(&nowFlag, "now", "",
		"reference instant in RFC 3339 format (default: current time)")
	rootCmd.Flags().BoolVar(&utcFlag, "utc", false,
		"express results in UTC")
	rootCmd.Flags().StringVarP(&format, "format", "f", "",
		"render results with a strftime format string")
	rootCmd.Flags().BoolVar(&asJSON, "json", false,
		"emit one JSON object per result")
	rootCmd.Flags().StringVar(&jqExpr, "jq", "",
		"filter JSON results through a jq expression (implies --json)")
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent resolutions in batch mode")
}

func Execute() error {
	return rootCmd.Execute()
}

// options collects everything a resolver run needs, derived from the flags.
type options struct {
	lang   whence.Language
	cal    whence.Calendar
	format string
	asJSON bool
	query  *gojq.Query
}

func buildOptions() (*options, error) {
	lang, err := whence.ParseLanguage(langName)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if utcFlag {
		loc = time.UTC
	}

	var cal whence.Calendar
	if nowFlag != "" {
		instant, err := time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid --now %q: %w", nowFlag, err)
		}
		cal = whence.FixedCalendar{Instant: instant.In(loc)}
	} else {
		cal = whence.SystemCalendar{Loc: loc}
	}

	opts := &options{
		lang:   lang,
		cal:    cal,
		format: format,
		asJSON: asJSON || jqExpr != "",
	}

	if jqExpr != "" {
		query, err := gojq.Parse(jqExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid --jq expression: %w", err)
		}
		opts.query = query
	}

	return opts, nil
}

// resolveLine parses and resolves one expression and renders it according
// to the output options.
func resolveLine(input string, opts *options) (string, error) {
	resolved, err := whence.ParseAndResolve(input, opts.lang, opts.cal)
	if err != nil {
		return "", err
	}
	return renderResult(input, resolved, opts)
}

func renderResult(input string, t time.Time, opts *options) (string, error) {
	if opts.asJSON {
		return renderJSON(input, t, opts)
	}
	if opts.format != "" {
		return timefmt.Format(t, opts.format), nil
	}
	return t.Format(time.RFC3339), nil
}

func renderJSON(input string, t time.Time, opts *options) (string, error) {
	value := map[string]any{
		"input":    input,
		"language": opts.lang.String(),
		"resolved": t.Format(time.RFC3339Nano),
		"unix":     t.Unix(),
	}

	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	if opts.query == nil {
		return string(data), nil
	}

	// gojq only accepts the value types encoding/json produces, so round
	// trip through JSON before running the query.
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return "", err
	}

	var lines []string
	iter := opts.query.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return "", fmt.Errorf("jq: %w", err)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		lines = append(lines, string(data))
	}
	return strings.Join(lines, "\n"), nil
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled()
	}
	output := NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize)

	if len(args) == 1 && args[0] == "-" {
		return runBatch(ctx, cmd, opts, output)
	}

	failures := 0
	for _, input := range args {
		line, err := resolveLine(input, opts)
		if err != nil {
			failures++
			output.Errorf("%v", err)
			continue
		}
		emit(output, line, opts)
	}

	if failures == len(args) {
		return fmt.Errorf("failed to resolve all %d expressions", len(args))
	}
	return nil
}

// runBatch reads one expression per line from stdin and resolves them
// concurrently with bounded parallelism, preserving input order.
func runBatch(ctx context.Context, cmd *cobra.Command, opts *options, output *Output) error {
	var inputs []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if len(inputs) == 0 {
		return nil
	}

	results := make([]string, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(jobs))

	for i, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			defer sem.Release(1)
			results[i], errs[i] = resolveLine(input, opts)
		}(i, input)
	}

	wg.Wait()

	failures := 0
	for i, input := range inputs {
		if errs[i] != nil {
			failures++
			output.Errorf("%s: %v", input, errs[i])
			continue
		}
		emit(output, results[i], opts)
	}

	if failures == len(inputs) {
		return fmt.Errorf("failed to resolve all %d expressions", len(inputs))
	}
	return nil
}

func emit(output *Output, line string, opts *options) {
	if opts.asJSON {
		output.Raw(line)
		return
	}
	output.Result(line)
}
