package compose

import (
	"strings"

	cli "github.com/urfave/cli/v3"

	"plancanvas/common"
)

// BuildFlags returns flags of build command.
func BuildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "preview", Aliases: []string{"p"}, Usage: "also write raster preview (PNG) next to SVG output"},
		&cli.BoolFlag{Name: "dump", Usage: "print scene tree of every document to STDOUT"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exits, overwrite files"},
	}
}

// ArrowFlags returns flags of arrow command.
func ArrowFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{Name: "width", Usage: "arrow length"},
		&cli.FloatFlag{Name: "stroke-width", Usage: "line thickness"},
		&cli.FloatFlag{Name: "head-length", Usage: "length of arrow heads"},
		&cli.FloatFlag{Name: "head-width", Usage: "width of arrow heads"},
		&cli.StringFlag{Name: "color", Usage: "stroke `COLOR` (CSS)"},
		&cli.StringFlag{Name: "style", Usage: "head `STYLE` (supported styles: " + strings.Join(common.ArrowHeadStyleNames(), ", ") + ")"},
		&cli.BoolFlag{Name: "start", Usage: "draw head at line start"},
		&cli.BoolFlag{Name: "end", Value: true, Usage: "draw head at line end"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite destination file"},
	}
}
