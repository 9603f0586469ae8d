package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"voxcraft/internal/config"
	"voxcraft/internal/state"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.Settings = config.NewRenderSettings(env.Cfg)
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()
	return nil
}

var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func worldFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "world", Aliases: []string{"w"}, Usage: "load and save the world at `FILE` instead of the configured path"},
		&cli.BoolFlag{Name: "nosave", Usage: "always generate a new world and never save it"},
		&cli.Int64Flag{Name: "seed", Usage: "override the configured terrain `SEED`"},
	}
}

// applyWorldFlags copies world related flags of a subcommand into the environment.
func applyWorldFlags(env *state.LocalEnv, cmd *cli.Command) {
	env.WorldPath = cmd.String("world")
	env.NoSave = cmd.Bool("nosave")
	if cmd.IsSet("seed") {
		env.Cfg.World.Seed = cmd.Int64("seed")
	}
}

func main() {

	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            config.AppName,
		Usage:           "small block world with packed-face chunk rendering",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug messages to console"},
		},
		Commands: []*cli.Command{
			{
				Name:         "play",
				Usage:        "Opens a window and walks around the world",
				OnUsageError: usageErrorHandler,
				Action:       play,
				Flags:        worldFlags(),
			},
			{
				Name:         "mesh",
				Usage:        "Builds every chunk mesh without a window and reports statistics",
				OnUsageError: usageErrorHandler,
				Action:       mesh,
				Flags:        worldFlags(),
			},
			{
				Name:         "shader",
				Usage:        "Outputs preprocessed shader sources or the generated face table include",
				OnUsageError: usageErrorHandler,
				Action:       outputShader,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "include", Usage: "output only the generated include"},
				},
				ArgsUsage: "[PROGRAM]",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
