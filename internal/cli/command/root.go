// Package command provides the firebase-admin command line.
//
// Flags are parsed with urfave/cli/v2; positional arguments are walked
// through the dispatch tree built in tree.go.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/goggledefogger/firebase-admin/internal/cli/account"
	"github.com/goggledefogger/firebase-admin/internal/cli/config"
	"github.com/goggledefogger/firebase-admin/internal/cli/dispatch"
	"github.com/goggledefogger/firebase-admin/internal/cli/output"
	"github.com/goggledefogger/firebase-admin/internal/infra/buildinfo"
	"github.com/goggledefogger/firebase-admin/internal/infra/shutdown"
	"github.com/goggledefogger/firebase-admin/internal/infra/tlsroots"
	"github.com/goggledefogger/firebase-admin/internal/telemetry/logger"
)

const (
	// ToolName is the command name shown in usage lines.
	ToolName = "firebase-admin"

	summary = "CLI tool for Firebase administration"
)

// App creates the CLI application. Its action is set by Run.
func App() *cli.App {
	return &cli.App{
		Name:    ToolName,
		Usage:   summary,
		Version: buildinfo.String(),
		Flags:   globalFlags(),

		// "help" is a command of the dispatch tree and --help is handled
		// by Run, so both print the tree's own listing.
		HideHelp: true,

		// Flag errors are usage failures like any other.
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return dispatch.Usage(err.Error())
		},

		// Exit codes are decided by Run, never inside urfave.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// helpFlag is listed in usage but parsed by helpRequested, not by urfave.
var helpFlag = &cli.BoolFlag{
	Name:    "help",
	Aliases: []string{"h"},
	Usage:   "Show this listing",
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "firebaseUser",
			Usage: "Your Firebase API username.",
		},
		&cli.StringFlag{
			Name:  "firebasePass",
			Usage: "Your Firebase API password.",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Config file (default ~/.firebase-admin/cli.yaml)",
		},
		&cli.StringFlag{
			Name:  "server",
			Usage: "Admin server URL",
		},
		&cli.StringFlag{
			Name:  "database-url",
			Usage: "Database URL format string taking the database name",
		},
		&cli.StringFlag{
			Name:  "ca-file",
			Usage: "PEM bundle of extra trusted CA certificates",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: plain, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log requests to stderr",
		},
	}
}

// GlobalFlags holds the flags the user actually set.
type GlobalFlags struct {
	ConfigPath string

	// Overrides maps config keys to flag values, for config.Load.
	Overrides map[string]any
}

// ParseGlobalFlags extracts global flags from context. Only flags present
// on the command line end up in Overrides so that they do not mask the
// config file or environment.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	flags := &GlobalFlags{
		ConfigPath: c.String("config"),
		Overrides:  map[string]any{},
	}

	for flag, key := range map[string]string{
		"firebaseUser": "user",
		"firebasePass": "password",
		"server":       "server",
		"output":       "output",
	} {
		if c.IsSet(flag) {
			flags.Overrides[key] = c.String(flag)
		}
	}
	if c.IsSet("database-url") {
		flags.Overrides["database"] = map[string]any{"url": c.String("database-url")}
	}
	if c.IsSet("ca-file") {
		flags.Overrides["tls"] = map[string]any{"ca": c.String("ca-file")}
	}
	if c.Bool("verbose") {
		flags.Overrides["log"] = map[string]any{"level": "debug"}
	}

	return flags
}

// flagLines renders the global flags for the usage listing.
func flagLines() []string {
	var lines []string
	for _, f := range append(globalFlags(), helpFlag) {
		lines = append(lines, f.String())
	}
	return lines
}

// helpRequested reports whether -h or --help is among the options that
// precede the command path in args (program name excluded).
func helpRequested(args []string) bool {
	takesValue := map[string]bool{}
	for _, f := range globalFlags() {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, n := range f.Names() {
			takesValue[n] = true
		}
	}

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || a == "-" || !strings.HasPrefix(a, "-") {
			return false
		}
		name, _, inline := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if slices.Contains(helpFlag.Names(), name) {
			return true
		}
		if takesValue[name] && !inline {
			i++
		}
	}
	return false
}

// errorLabel returns the "error:" prefix, red only when w is a terminal.
func errorLabel(w io.Writer) string {
	c := color.New(color.FgRed)
	if logger.IsTerminal(w) && os.Getenv("NO_COLOR") == "" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint("error:")
}

// Run executes one firebase-admin invocation and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdout, stderr)
}

// RunContext is Run under ctx. It is the only place where failures become
// exit codes: usage failures print the full command listing, a signal
// cancelling ctx exits 128+signal, anything else prints its message.
func RunContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s := &session{out: stdout, format: output.FormatPlain}
	tree := NewTree(s)

	// --help prints the same listing as a usage failure.
	if len(args) > 1 && helpRequested(args[1:]) {
		tree.PrintUsage(stdout)
		return 0
	}

	app := App()
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Action = func(c *cli.Context) error {
		return s.run(c, tree, stderr)
	}

	err := app.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	if se := shutdown.Cause(ctx); se != nil {
		fmt.Fprintln(stderr, se.Error())
		return se.ExitCode()
	}

	var ue *dispatch.UsageError
	if errors.As(err, &ue) {
		tree.PrintUsage(stdout, ue.Messages...)
		return ue.ExitCode()
	}

	fmt.Fprintf(stdout, "%s %v\n", errorLabel(stdout), err)
	return 1
}

// run prepares the session from flags and configuration, then dispatches
// the positional arguments.
func (s *session) run(c *cli.Context, tree *dispatch.Tree, stderr io.Writer) error {
	flags := ParseGlobalFlags(c)

	cfg, err := config.Load(flags.ConfigPath, flags.Overrides)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: stderr,
	})
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	if cfg.User == "" {
		return dispatch.Usage("Missing required option --firebaseUser")
	}
	if cfg.Password == "" {
		return dispatch.Usage("Missing required option --firebasePass")
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return dispatch.Usage(err.Error())
	}
	s.format = format

	tlsConfig, err := tlsroots.LoadClientConfig(cfg.TLS.CA)
	if err != nil {
		return err
	}

	s.account = account.New(account.Config{
		Server:      cfg.Server,
		DatabaseURL: cfg.Database.URL,
		User:        cfg.User,
		Password:    cfg.Password,
		Timeout:     cfg.Timeout,
		TLS:         tlsConfig,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.Default().Timeout
	}
	ctx, cancel := context.WithTimeout(logger.WithLogger(c.Context, log), timeout)
	defer cancel()

	tokens, err := dispatch.Positional(c.Args().Slice())
	if err != nil {
		return err
	}
	return tree.Dispatch(ctx, tokens)
}
