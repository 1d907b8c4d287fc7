package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/boundcalc/internal/calculator"
	"github.com/pengelbrecht/boundcalc/internal/config"
	"github.com/pengelbrecht/boundcalc/internal/logging"
	"github.com/pengelbrecht/boundcalc/internal/styles"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	exitSuccess        = 0
	exitFailure        = 1
	exitUsage          = 2
	exitInvalidInput   = 3
	exitDivisionByZero = 4
	exitConfig         = 5
)

// options holds raw flag values before they are merged with the config file.
type options struct {
	configPath string
	json       bool
	precision  int
	logLevel   string
	noColor    bool
}

// app is the state shared by one invocation of the command tree.
type app struct {
	opts   options
	stderr io.Writer

	cfg       config.Config
	json      bool
	precision int
	color     bool
	logger    *slog.Logger
	calc      *calculator.Calculator
}

// Execute runs the calc command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stderr: stderr, logger: logging.Discard()}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitSuccess
	}

	msg := styles.RenderError(err.Error())
	if !a.color {
		msg = styles.Plain(msg)
	}
	fmt.Fprintln(stderr, msg)
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "calc",
		Short: "Bounded four-function calculator",
		Long: fmt.Sprintf(`calc adds, subtracts, multiplies and divides two operands.

Every operand must lie within %s; anything outside that range
is rejected before the operation runs.

Examples:
  calc add 5 3
  calc divide 1 10
  calc subtract -- -5 3     # use -- before negative operands
  calc --json multiply 4 3`, calculator.DefaultRange()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "config file (default ~/"+config.DefaultFileName+")")
	flags.BoolVar(&a.opts.json, "json", false, "output as JSON")
	flags.IntVar(&a.opts.precision, "precision", config.DefaultPrecision, "digits after the decimal point (-1 = shortest exact form)")
	flags.StringVar(&a.opts.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "disable styled output")

	for _, op := range calculator.Ops() {
		root.AddCommand(newOpCmd(a, op))
	}
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())
	root.AddCommand(newUpgradeCmd())

	return root
}

// setup loads the config file and merges it with explicitly set flags.
func (a *app) setup(cmd *cobra.Command) error {
	path, err := a.configPath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return configError(fmt.Errorf("load %s: %w", path, err))
	}
	a.cfg = cfg

	flags := cmd.Flags()

	a.json = cfg.Output.IsJSON()
	if flags.Changed("json") {
		a.json = a.opts.json
	}

	a.precision = cfg.Output.GetPrecision()
	if flags.Changed("precision") {
		if a.opts.precision < config.DefaultPrecision || a.opts.precision > config.MaxPrecision {
			return usageError("--precision must be between %d and %d, got %d",
				config.DefaultPrecision, config.MaxPrecision, a.opts.precision)
		}
		a.precision = a.opts.precision
	}

	a.color = cfg.Output.IsColor() && !a.opts.noColor

	levelName := cfg.Log.GetLevel()
	if flags.Changed("log-level") {
		levelName = a.opts.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return usageError("%v", err)
	}
	a.logger = logging.New(a.stderr, level)
	a.calc = calculator.New()

	return nil
}

func (a *app) configPath() (string, error) {
	if a.opts.configPath != "" {
		return a.opts.configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", configError(err)
	}
	return path, nil
}

// codedError attaches a process exit code to an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &codedError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func configError(err error) error {
	return &codedError{code: exitConfig, err: err}
}

func exitCode(err error) int {
	var coded *codedError
	switch {
	case errors.Is(err, calculator.ErrInvalidInput):
		return exitInvalidInput
	case errors.Is(err, calculator.ErrDivisionByZero):
		return exitDivisionByZero
	case errors.As(err, &coded):
		return coded.code
	default:
		return exitFailure
	}
}
