package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/keri88/vaccercoin/getarg"
	argio "github.com/keri88/vaccercoin/io"
	"github.com/spf13/cobra"
)

// Exit codes, following the usual shell conventions.
const (
	exitOK      = 0
	exitGeneral = 1
	exitMisuse  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit " + strconv.Itoa(e.Code)
}

func (e *exitError) Unwrap() error { return e.Err }

// app holds what every subcommand needs.
type app struct {
	io  *argio.IOManager
	log *argio.Logger

	verbose    bool
	logFormat  string
	logTime    bool
	timeFormat string
	color      string
}

// run executes argq with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	iom := argio.New().WithErr(stderr)
	a := &app{io: iom, log: argio.NewLogger(iom)}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.Err != nil {
			a.log.Error("%v", ee.Err)
		}
		return ee.Code
	}

	// Anything cobra rejects itself is a usage problem
	a.log.Error("%v", err)
	return exitMisuse
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "argq",
		Short:         "Query a command line the way getarg reads it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := a.configureLog(); err != nil {
				return &exitError{Code: exitMisuse, Err: err}
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log how the vector was parsed")
	pf.StringVar(&a.logFormat, "log-format", "tagged", "diagnostics format: tagged or plain")
	pf.BoolVar(&a.logTime, "log-time", false, "prefix diagnostics with the time")
	pf.StringVar(&a.timeFormat, "log-time-format", argio.DefaultTimeFormat, "Go layout for --log-time")
	pf.StringVar(&a.color, "color", "auto", "color diagnostics: auto, always or never")

	root.AddCommand(a.boolCommand(), a.stringCommand(), a.intCommand(), a.dumpCommand())
	return root
}

// configureLog applies the persistent flags to the logger and its stream.
func (a *app) configureLog() error {
	switch strings.ToLower(a.color) {
	case "auto":
	case "always":
		a.io.ForceColor()
	case "never":
		a.io.NoColor()
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", a.color)
	}

	format, err := argio.ParseLogFormat(a.logFormat)
	if err != nil {
		return err
	}
	a.log.WithFormat(format).WithTimestamp(a.logTime).WithTimeFormat(a.timeFormat)

	if a.verbose {
		a.log.WithLevel(argio.LevelDebug)
	}
	return nil
}

func (a *app) boolCommand() *cobra.Command {
	var def bool
	cmd := &cobra.Command{
		Use:   "bool NAME -- ARGS...",
		Short: "Print NAME as a boolean, honouring -noNAME",
		Args:  nameThenVector,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, parsed := args[0], a.parse(cmd, args)
			a.hint(parsed, name)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(parsed.GetBoolArg(name, def)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&def, "default", false, "value when NAME and noNAME are both absent")
	return cmd
}

func (a *app) stringCommand() *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:   "string NAME -- ARGS...",
		Short: "Print the raw value of NAME",
		Args:  nameThenVector,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, parsed := args[0], a.parse(cmd, args)
			a.hint(parsed, name)
			fmt.Fprintln(cmd.OutOrStdout(), parsed.GetArg(name, def))
			return nil
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "value when NAME is absent")
	return cmd
}

func (a *app) intCommand() *cobra.Command {
	var (
		def    int64
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "int NAME -- ARGS...",
		Short: "Print NAME as a base-10 integer",
		Args:  nameThenVector,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, parsed := args[0], a.parse(cmd, args)
			a.hint(parsed, name)

			if strict {
				n, err := parsed.LookupInt(name)
				switch {
				case err == nil:
					fmt.Fprintln(cmd.OutOrStdout(), n)
					return nil
				case getarg.IsAbsent(err):
					// absence still falls back to the default
				default:
					return &exitError{Code: exitGeneral, Err: err}
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), parsed.GetIntArg(name, def))
			return nil
		},
	}
	cmd.Flags().Int64Var(&def, "default", 0, "value when NAME is absent")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of printing 0 for a malformed value")
	return cmd
}

// dumpEntry is one flag in dump output.
type dumpEntry struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	HasValue bool     `json:"has_value"`
	Position int      `json:"position"`
	Values   []string `json:"values,omitempty"`
}

type dumpOutput struct {
	Flags []dumpEntry `json:"flags"`
	Args  []string    `json:"args"`
}

func (a *app) dumpCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dump -- ARGS...",
		Short: "Print every flag and positional argument",
		Args:  vectorOnly,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := collect(a.parse(cmd, args))

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(out); err != nil {
					return &exitError{Code: exitGeneral, Err: err}
				}
				return nil
			}

			for _, f := range out.Flags {
				if f.HasValue {
					fmt.Fprintf(w, "-%s=%s\n", f.Name, f.Value)
				} else {
					fmt.Fprintf(w, "-%s\n", f.Name)
				}
			}
			for _, arg := range out.Args {
				fmt.Fprintf(w, "arg %s\n", arg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}

func collect(parsed *getarg.ParsedArguments) dumpOutput {
	out := dumpOutput{Flags: []dumpEntry{}, Args: parsed.Args()}
	for _, name := range parsed.Names() {
		f, _ := parsed.Flag(name)
		entry := dumpEntry{Name: f.Name, Value: f.Value, HasValue: f.HasValue, Position: f.Position}
		if values := parsed.Values(name); len(values) > 1 {
			entry.Values = values
		}
		out.Flags = append(out.Flags, entry)
	}
	if out.Args == nil {
		out.Args = []string{}
	}
	return out
}

// parse runs getarg over the arguments that followed "--".
func (a *app) parse(cmd *cobra.Command, args []string) *getarg.ParsedArguments {
	vector := vectorOf(cmd, args)
	parsed := getarg.Parse(vector)

	a.log.Debug("parsed %d token(s): %d flag(s), %d positional", len(vector), parsed.Len(), len(parsed.Args()))
	for _, n := range parsed.Names() {
		a.log.Debug("  -%s=%q", n, parsed.GetArg(n, ""))
	}
	return parsed
}

// hint warns when name was not supplied but something close to it was.
// The negated form counts as supplied.
func (a *app) hint(parsed *getarg.ParsedArguments, name string) {
	if parsed.IsSet(name) || parsed.IsNegated(name) {
		return
	}
	if s := parsed.Suggest(name); s != "" {
		a.log.Warning("%s was not supplied; did you mean -%s?", name, s)
	}
}

// vectorOf returns the arguments that followed "--".
func vectorOf(cmd *cobra.Command, args []string) []string {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return nil
	}
	return args[dash:]
}

// nameThenVector accepts exactly one argument before "--".
func nameThenVector(cmd *cobra.Command, args []string) error {
	before := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		before = dash
	}
	if before != 1 {
		return fmt.Errorf("%s expects exactly one NAME before --, got %d", cmd.Name(), before)
	}
	return nil
}

// vectorOnly accepts no arguments before "--".
func vectorOnly(cmd *cobra.Command, args []string) error {
	before := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		before = dash
	}
	if before != 0 {
		return fmt.Errorf("%s takes no arguments before --, got %d", cmd.Name(), before)
	}
	return nil
}
