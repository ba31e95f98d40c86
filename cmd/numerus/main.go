// Command numerus formats, parses, validates and sorts Roman numerals.
//
// Logging is configured through NUMERUS_LOG_LEVEL (debug, info, warn, error)
// and NUMERUS_LOG_FORMAT (text, json); logs go to stderr.
package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/numerus/internal/config"
	"github.com/katalvlaran/numerus/internal/logging"
	"github.com/katalvlaran/numerus/ordered"
	"github.com/katalvlaran/numerus/roman"
)

// errInvalidInput signals that validate saw at least one non-canonical numeral.
var errInvalidInput = errors.New("one or more inputs are not canonical numerals")

// CLI defines the command-line interface for numerus.
type CLI struct {
	Format   FormatCmd   `cmd:"" help:"Format integers as canonical Roman numerals"`
	Parse    ParseCmd    `cmd:"" help:"Parse canonical Roman numerals into integers"`
	Validate ValidateCmd `cmd:"" help:"Report whether each argument is a canonical numeral"`
	Sort     SortCmd     `cmd:"" help:"Sort numerals by value"`
	Lookup   LookupCmd   `cmd:"" help:"Find the numeral with a given value"`
}

// app carries what every command needs at run time.
type app struct {
	out io.Writer
	log *slog.Logger
}

// FormatCmd prints one numeral per integer.
type FormatCmd struct {
	Numbers []int `arg:"" name:"number" help:"Integers in [1, 3999]"`
}

// Run formats each number in order and stops at the first out-of-range one.
func (c *FormatCmd) Run(a *app) error {
	for _, n := range c.Numbers {
		s, err := roman.Format(n)
		if err != nil {
			return err
		}
		a.log.Debug("formatted", "value", n, "numeral", s)
		fmt.Fprintln(a.out, s)
	}
	return nil
}

// ParseCmd prints one integer per numeral.
type ParseCmd struct {
	Numerals []string `arg:"" name:"numeral" help:"Canonical Roman numerals"`
}

// Run parses each numeral in order and stops at the first invalid one.
func (c *ParseCmd) Run(a *app) error {
	for _, s := range c.Numerals {
		n, err := roman.Parse(s)
		if err != nil {
			return err
		}
		a.log.Debug("parsed", "numeral", s, "value", n)
		fmt.Fprintln(a.out, n)
	}
	return nil
}

// ValidateCmd prints "<input>\t<bool>" per argument and fails if any is invalid.
type ValidateCmd struct {
	Quiet    bool     `short:"q" help:"Print nothing; report through the exit status only"`
	Numerals []string `arg:"" name:"numeral" help:"Strings to check"`
}

func (c *ValidateCmd) Run(a *app) error {
	bad := 0
	for _, s := range c.Numerals {
		ok := roman.IsValid(s)
		if !ok {
			bad++
		}
		if !c.Quiet {
			fmt.Fprintf(a.out, "%s\t%t\n", s, ok)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%w (%d of %d)", errInvalidInput, bad, len(c.Numerals))
	}
	return nil
}

// SortCmd prints its numerals ordered by value.
type SortCmd struct {
	SkipInvalid bool     `name:"skip-invalid" help:"Drop non-canonical inputs instead of failing"`
	Desc        bool     `help:"Sort descending"`
	Numerals    []string `arg:"" name:"numeral" help:"Canonical Roman numerals"`
}

func (c *SortCmd) Run(a *app) error {
	nums, err := collect(a, c.Numerals, c.SkipInvalid)
	if err != nil {
		return err
	}

	compare := cmp.Compare[roman.Numeral]
	if c.Desc {
		compare = func(x, y roman.Numeral) int { return cmp.Compare(y, x) }
	}
	if err = ordered.InsertionSort(nums, compare); err != nil {
		return err
	}

	for _, n := range nums {
		fmt.Fprintln(a.out, n)
	}
	return nil
}

// LookupCmd sorts its numerals and binary-searches them for a value.
type LookupCmd struct {
	Value       int      `required:"" help:"Integer value to find"`
	SkipInvalid bool     `name:"skip-invalid" help:"Drop non-canonical inputs instead of failing"`
	Numerals    []string `arg:"" name:"numeral" help:"Canonical Roman numerals"`
}

// Run prints the numeral whose value equals --value.
func (c *LookupCmd) Run(a *app) error {
	nums, err := collect(a, c.Numerals, c.SkipInvalid)
	if err != nil {
		return err
	}
	if err = ordered.InsertionSort(nums, cmp.Compare[roman.Numeral]); err != nil {
		return err
	}

	found, err := ordered.BinarySearchByKey(nums, func(n roman.Numeral) int { return int(n) }, c.Value)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, found)
	return nil
}

// collect parses inputs into numerals. With skipInvalid, non-canonical
// inputs are logged and removed first; otherwise the first one is an error.
func collect(a *app, inputs []string, skipInvalid bool) ([]roman.Numeral, error) {
	kept := slices.Clone(inputs)
	if skipInvalid {
		for _, s := range kept {
			if !roman.IsValid(s) {
				a.log.Warn("dropping invalid numeral", "input", s)
			}
		}
		invalid := func(s string) bool { return !roman.IsValid(s) }
		if err := ordered.RemoveAllMatching(&kept, invalid); err != nil {
			return nil, err
		}
	}

	nums := make([]roman.Numeral, 0, len(kept))
	for _, s := range kept {
		var n roman.Numeral
		if err := n.UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "numerus:", err)
		return 2
	}
	log := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("numerus"),
		kong.Description("Strict Roman numeral codec (1-3999)"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		fmt.Fprintln(stderr, "numerus:", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, "numerus:", err)
		return 2
	}
	log.Debug("running command", "command", ctx.Command(), "log_format", cfg.LogFormat)

	if err = ctx.Run(&app{out: stdout, log: log}); err != nil {
		if !errors.Is(err, errInvalidInput) {
			log.Error("command failed", "command", ctx.Command(), "err", err)
		}
		fmt.Fprintln(stderr, "numerus:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
