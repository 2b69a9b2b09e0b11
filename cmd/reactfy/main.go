package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const appName = "reactfy"

var version = "dev"

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *Config
	Log *zap.Logger

	start time.Time
}

func envFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{Log: zap.NewNop(), start: time.Now()})
}

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)

	var err error
	configFile := cmd.String("config")
	if env.Cfg, err = LoadConfiguration(configFile); err != nil {
		return ctx, errors.Wrap(err, "unable to prepare configuration")
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.Level = "debug"
	}
	env.Log = PrepareLogger(env.Cfg.Logging.Level)

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", time.Since(env.start)), zap.Strings("parsed args", cmd.Args().Slice()))
	// stdout and stderr cannot be synced on some platforms
	_ = env.Log.Sync()
	return nil
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	env.Log.Error("Program ended with error", zap.Error(err))
	errWasHandled = env.Cfg != nil && env.Cfg.Logging.Level != "none"
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data = defaultConfig
	} else if data, err = Dump(env.Cfg); err != nil {
		return err
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		_, err = os.Stdout.Write(data)
		return errors.WithStack(err)
	}
	env.Log.Info("Outputing configuration", zap.String("file", fname))
	return errors.Wrap(os.WriteFile(fname, data, 0o644), "unable to write configuration")
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "converts static HTML pages into JSX components",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log every conversion step"},
		},
		Commands: []*cli.Command{
			{
				Name:   "convert",
				Usage:  "Converts HTML file(s) to JSX components",
				Action: runConvert,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing components even if configuration says otherwise"},
				},
				ArgsUsage: "SOURCE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to a markup file or to a directory searched for markup files

DESTINATION:
    directory for generated components, if absent - configured output
    directory or current working directory
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				Action:    outputConfiguration,
				ArgsUsage: "DESTINATION",
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		if !errWasHandled {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}
