package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"reactfy"
)

var errNothingToDo = errors.New("no markup files found")

// FindMarkup returns markup files under base, descending at most depth
// directory levels, in natural order.
func FindMarkup(ctx context.Context, base string, depth int, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path == base {
				return nil
			}
			rel, err := filepath.Rel(base, path)
			if err != nil {
				return err
			}
			if strings.Count(rel, string(filepath.Separator))+1 > depth {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if slices.Contains(extensions, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to walk %s", base)
	}
	sort.Sort(natural.StringSlice(files))
	return files, nil
}

// Writer converts markup files and stores resulting components in a single
// directory. Failures are reported per file and do not stop processing.
type Writer struct {
	Converter *reactfy.Converter
	Dst       string
	Overwrite bool
	Log       *zap.Logger

	written map[string]string
}

func (w *Writer) convertFile(src string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", errors.Wrap(err, "unable to read source")
	}
	result, source, err := w.Converter.ConvertComponent(string(data), filepath.Base(src))
	if err != nil {
		return "", err
	}
	out := filepath.Join(w.Dst, result.ComponentName+".jsx")
	if prev, ok := w.written[out]; ok {
		w.Log.Warn("Component name clash, overwriting", zap.String("file", src), zap.String("previous", prev), zap.String("component", result.ComponentName))
	} else if _, err := os.Stat(out); err == nil && !w.Overwrite {
		return "", errors.Errorf("destination %s already exists", out)
	}
	if err := os.WriteFile(out, []byte(source), 0o644); err != nil {
		return "", errors.Wrap(err, "unable to write component")
	}
	w.written[out] = src
	return out, nil
}

// Process converts files in order, the returned error combines all per file
// failures.
func (w *Writer) Process(ctx context.Context, files []string) (err error) {
	if w.Log == nil {
		w.Log = zap.NewNop()
	}
	w.written = make(map[string]string, len(files))
	if er := os.MkdirAll(w.Dst, 0o755); er != nil {
		return errors.Wrapf(er, "unable to create destination %s", w.Dst)
	}
	for _, src := range files {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		out, er := w.convertFile(src)
		if er != nil {
			w.Log.Error("Unable to convert file", zap.String("file", src), zap.Error(er))
			err = multierr.Append(err, errors.Wrap(er, src))
			continue
		}
		w.Log.Info("Saved JSX", zap.String("file", src), zap.String("component", out))
	}
	return err
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := envFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return errors.WithStack(err)
	}
	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = env.Cfg.Output.Directory
	}
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return errors.Wrap(err, "unable to get working directory")
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return errors.WithStack(err)
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	fi, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "input source was not found")
	}
	files := []string{src}
	if fi.IsDir() {
		if files, err = FindMarkup(ctx, src, env.Cfg.Walk.Depth, env.Cfg.Walk.Extensions); err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return errors.Wrap(errNothingToDo, src)
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Int("files", len(files)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	w := &Writer{
		Converter: reactfy.NewConverter(env.Cfg.Options(), log),
		Dst:       dst,
		Overwrite: env.Cfg.Output.Overwrite || cmd.Bool("overwrite"),
		Log:       log,
	}
	if err := w.Process(ctx, files); err != nil {
		return errors.Errorf("%d of %d files failed", len(multierr.Errors(err)), len(files))
	}
	return nil
}
