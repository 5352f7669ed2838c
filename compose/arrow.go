package compose

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"plancanvas/common"
	"plancanvas/identity"
	"plancanvas/render"
	"plancanvas/scene"
	"plancanvas/state"
)

// arrowOptions collects arrow flags, unset flags keep defaults.
func arrowOptions(cmd *cli.Command, log *zap.Logger) *scene.ArrowOptions {
	opts := &scene.ArrowOptions{
		BaseWidth:   cmd.Float("width"),
		StrokeWidth: cmd.Float("stroke-width"),
		HeadLength:  cmd.Float("head-length"),
		HeadWidth:   cmd.Float("head-width"),
		Stroke:      cmd.String("color"),
	}
	if s := cmd.String("style"); len(s) > 0 {
		style, err := common.ParseArrowHeadStyle(s)
		if err != nil {
			log.Warn("Unknown arrow head style, using default", zap.String("style", s), zap.Error(err))
		}
		opts.HeadStyle = style
	}
	if cmd.IsSet("start") {
		v := cmd.Bool("start")
		opts.StartHead = &v
	}
	if cmd.IsSet("end") {
		v := cmd.Bool("end")
		opts.EndHead = &v
	}
	return opts
}

// Arrow renders single arrow shape as SVG.
func Arrow(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("arrow")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if err := prepareNamer(env); err != nil {
		return err
	}

	arrow := identity.NewArrow(arrowOptions(cmd, log))
	env.Namer.EnsureObjectIdentity(arrow)

	data, err := render.SVGBytes([]*scene.Object{arrow}, render.Options{Padding: 4})
	if err != nil {
		return err
	}

	fname := cmd.Args().Get(0)
	if len(fname) == 0 {
		out := cmd.Root().Writer
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("unable to write arrow: %w", err)
		}
		return nil
	}
	if err := writeOutput(fname, data, cmd.Bool("overwrite")); err != nil {
		return err
	}
	log.Info("Arrow rendered", zap.String("file", fname), zap.Float64("width", arrow.Width), zap.Float64("height", arrow.Height))
	return nil
}
