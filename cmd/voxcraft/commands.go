package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"voxcraft/internal/config"
	"voxcraft/internal/face"
	"voxcraft/internal/game"
	"voxcraft/internal/graphics"
	"voxcraft/internal/state"
)

func play(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	applyWorldFlags(env, cmd)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("unable to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(env.Cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := game.NewApp(ctx, env, window)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

func mesh(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	applyWorldFlags(env, cmd)

	_, err := game.BuildMeshes(ctx, env)
	return err
}

func outputShader(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Bool("include") {
		_, err := fmt.Fprint(os.Stdout, face.GLSLInclude())
		return err
	}

	programs := []string{graphics.BlocksProgram, graphics.SelectionProgram}
	if cmd.Args().Len() > 0 {
		programs = cmd.Args().Slice()
	}
	for _, name := range programs {
		vertex, fragment, err := graphics.ShaderSources(name)
		if err != nil {
			return fmt.Errorf("program %s: %w", name, err)
		}
		env.Log.Debug("Outputing shader", zap.String("program", name))
		if _, err := fmt.Fprintf(os.Stdout, "// %s.vert\n%s\n// %s.frag\n%s\n", name, vertex, name, fragment); err != nil {
			return err
		}
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err  error
		data []byte
		kind string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		kind = "default"
		data = config.DefaultConfig
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
