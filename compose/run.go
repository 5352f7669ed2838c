// Package compose implements CLI actions: it loads canvas documents into
// editor store and writes rendered results.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"plancanvas/build"
	"plancanvas/config"
	"plancanvas/editor"
	"plancanvas/element"
	"plancanvas/holiday"
	"plancanvas/identity"
	"plancanvas/imagecache"
	"plancanvas/render"
	"plancanvas/scene"
	"plancanvas/state"
)

// documentPadding is space left around scene bounds in rendered output.
const documentPadding = 20

type outputOptions struct {
	preview bool
	dump    io.Writer
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	if err := Prepare(env); err != nil {
		return err
	}

	opts := outputOptions{preview: cmd.Bool("preview")}
	if cmd.Bool("dump") {
		opts.dump = cmd.Root().Writer
		if opts.dump == nil {
			opts.dump = os.Stdout
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, opts, env, log)
}

// Prepare sets up lookups shared by all documents from configuration.
func Prepare(env *state.LocalEnv) error {
	cfg := env.Cfg
	env.Today = cfg.Build.TodayDate()

	if err := prepareNamer(env); err != nil {
		return err
	}

	if len(cfg.Holidays.DataFile) > 0 {
		table, err := holiday.LoadFile(cfg.Holidays.DataFile, cfg.Holidays.Country)
		if err != nil {
			return fmt.Errorf("unable to load holidays from %q: %w", cfg.Holidays.DataFile, err)
		}
		env.Holidays = table.Lookup
	}

	if env.Images == nil {
		env.Images = imagecache.New(cfg.Images.CacheSize,
			imagecache.NewLoader(&http.Client{Timeout: cfg.Images.LoadTimeout}, cfg.Images.MaxBytes),
			cfg.Images.LoadTimeout, env.Log)
	}
	return nil
}

func prepareNamer(env *state.LocalEnv) error {
	if len(env.Cfg.Editor.NameTemplate) == 0 {
		return nil
	}
	namer, err := identity.NewNamer(env.Cfg.Editor.NameTemplate)
	if err != nil {
		return err
	}
	env.Namer = namer
	return nil
}

// locale returns configured defaults for date dependent elements.
func locale(cfg *config.Config) *element.Locale {
	return &element.Locale{
		StartDay: cfg.Build.StartDay,
		Country:  cfg.Holidays.Country,
		Language: cfg.Holidays.Language,
	}
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func process(ctx context.Context, src, dst string, opts outputOptions, env *state.LocalEnv, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}

	if !fi.IsDir() {
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s)", src)
		}
		return processDocument(ctx, src, dst, opts, env, log)
	}
	return processDir(ctx, src, dst, opts, env, log)
}

// processDir renders every document found directly in dir, in natural
// file name order.
func processDir(ctx context.Context, dir, dst string, opts outputOptions, env *state.LocalEnv, log *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && isDocumentFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	if len(names) == 0 {
		return fmt.Errorf("no documents found in (%s)", dir)
	}

	var errs error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, name)
		if err := processDocument(ctx, path, dst, opts, env, log); err != nil {
			log.Error("Unable to process document", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	if n := len(multierr.Errors(errs)); n > 0 {
		return fmt.Errorf("unable to process %d of %d documents", n, len(names))
	}
	return nil
}

// newStore creates editor store sharing lookups of the environment.
func newStore(env *state.LocalEnv, log *zap.Logger) *editor.Store {
	return editor.New(editor.Options{
		Debounce:    env.Cfg.Editor.Debounce,
		PasteOffset: env.Cfg.Editor.PasteOffset,
		Namer:       env.Namer,
		Lookups: build.Lookups{
			Holidays: env.Holidays,
			Images:   env.Images,
			Today:    env.Today,
		},
	}, log)
}

// populate places document items on store canvas and groups them,
// returning object ids in item order.
func populate(store *editor.Store, doc *element.Document, today time.Time, loc *element.Locale) ([]string, error) {
	ids := make([]string, 0, len(doc.Items))
	for i := range doc.Items {
		it := &doc.Items[i]

		var (
			id  string
			err error
		)
		if it.IsArrow() {
			opts := identity.ResolveArrowOptions(it.Arrow)
			h := max(opts.HeadWidth, opts.StrokeWidth)
			id, err = store.AddArrow(&opts, it.Left+opts.BaseWidth/2, it.Top+h/2)
		} else {
			var meta element.Metadata
			if meta, err = it.DecodeLocalized(today, loc); err == nil {
				id, err = store.Add(meta, it.Left, it.Top)
			}
		}
		if err != nil {
			return ids, fmt.Errorf("item %d: %w", i, err)
		}
		if len(it.Name) > 0 {
			if err := store.SetName(id, it.Name); err != nil {
				return ids, fmt.Errorf("item %d: %w", i, err)
			}
		}
		if it.Angle != 0 {
			if err := store.Rotate(id, it.Angle); err != nil {
				return ids, fmt.Errorf("item %d: %w", i, err)
			}
		}
		ids = append(ids, id)
	}

	for g, members := range doc.Groups {
		group := make([]string, len(members))
		for j, i := range members {
			group[j] = ids[i]
		}
		if !store.Group(group...) {
			return ids, fmt.Errorf("group %d: unable to group items %v", g, members)
		}
	}
	return ids, nil
}

func processDocument(ctx context.Context, path, dst string, opts outputOptions, env *state.LocalEnv, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := element.LoadDocument(path, env.Today)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log = log.With(zap.String("document", base))

	store := newStore(env, log)
	if _, err := populate(store, doc, env.Today, locale(env.Cfg)); err != nil {
		return err
	}
	if err := store.Settle(); err != nil {
		log.Warn("Some updates were not applied", zap.Error(err))
	}

	var (
		dump    string
		svgData []byte
		objects int
	)
	store.View(func(c *scene.Canvas) {
		objs := c.Objects()
		objects = len(objs)
		dump = render.Dump(objs)
		svgData, err = render.SVGBytes(objs, render.Options{Padding: documentPadding, Background: "#ffffff"})
	})
	if err != nil {
		return err
	}

	outputs := []string{filepath.Join(dst, base+".svg")}
	if err := writeOutput(outputs[0], svgData, env.Overwrite); err != nil {
		return err
	}

	var pngData []byte
	if opts.preview || env.Rpt != nil {
		img, err := render.Rasterize(svgData, env.Cfg.Build.PreviewScale)
		if err != nil {
			return err
		}
		if pngData, err = render.PNG(img); err != nil {
			return err
		}
	}
	if opts.preview {
		outputs = append(outputs, filepath.Join(dst, base+".png"))
		if err := writeOutput(outputs[1], pngData, env.Overwrite); err != nil {
			return err
		}
	}

	if opts.dump != nil {
		if _, err := io.WriteString(opts.dump, dump); err != nil {
			return fmt.Errorf("unable to write scene dump: %w", err)
		}
	}

	if env.Rpt != nil {
		prefix := "documents/" + config.EntryName(base, "")
		if err := env.Rpt.StoreCopy(prefix+"/"+filepath.Base(path), path); err != nil {
			log.Warn("Unable to store document in report", zap.Error(err))
		}
		env.Rpt.StoreData(prefix+"/scene.svg", svgData)
		env.Rpt.StoreData(prefix+"/preview.png", pngData)
		env.Rpt.StoreData(prefix+"/scene.txt", []byte(dump))
	}

	log.Info("Document rendered", zap.Int("objects", objects), zap.Strings("outputs", outputs))
	return nil
}

// writeOutput writes data refusing to replace existing file unless
// overwrite is set.
func writeOutput(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("destination already exists (%s)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to check destination: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
