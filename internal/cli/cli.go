package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/config"
	"github.com/CloudFitSoftware/clean-code-exercises/internal/logging"
)

// Version is the ccx version. It is a var (not a const) so build tooling can override it (for example via `-ldflags "-X .../internal/cli.Version=1.2.3"`).
var Version = "0.3.0"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code (0, 1, or 2) and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil, but the structure of args is sound (flags are correct, etc).
//   - 2 -> err != nil, args parse error or misuse of flags, etc.
//
// Note that in cases of errors, Run has already displayed an error message to opts.Err || Stderr. Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	env := &runEnv{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: zap.NewNop(),
	}
	if opts != nil {
		if opts.In != nil {
			env.in = opts.In
		}
		if opts.Out != nil {
			env.out = opts.Out
		}
		if opts.Err != nil {
			env.errOut = opts.Err
		}
	}
	defer env.close()

	root := newRootCommand(env)
	root.SetArgs(argv)
	root.SetIn(env.in)
	root.SetOut(env.out)
	root.SetErr(env.errOut)

	err := root.ExecuteContext(context.Background())
	code := exitCode(err)
	if err != nil {
		env.logger.Error("command failed", zap.Error(err), zap.Int("exit_code", code))
		fmt.Fprintf(env.errOut, "Error: %v\n", err)
		if code == 2 {
			fmt.Fprintf(env.errOut, "Run 'ccx --help' for usage.\n")
		}
	}
	return code, err
}

// runEnv is the state shared by all commands of one Run.
type runEnv struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configFile string
	envFile    string

	cfg    config.Config
	logger *zap.Logger
}

// setup loads configuration and the logger. It runs before every command.
func (e *runEnv) setup(commandName string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: e.configFile, EnvFile: e.envFile})
	if err != nil {
		return UsageError{Err: err}
	}
	e.cfg = cfg

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(e.errOut, "warning: logging disabled: %v\n", err)
		logger = zap.NewNop()
	}
	e.logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", commandName))
	e.logger.Debug("config loaded",
		zap.Int("context_length", cfg.ContextLength),
		zap.String("weekend_policy", cfg.WeekendPolicy),
		zap.String("rates_file", cfg.RatesFile),
	)
	return nil
}

func (e *runEnv) close() {
	_ = e.logger.Sync()
}
