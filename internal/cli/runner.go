package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/reoring/swagdoc"
	"github.com/reoring/swagdoc/bundle"
	"github.com/reoring/swagdoc/emit"
	"github.com/reoring/swagdoc/oas"
)

// Runner executes the convert, check and bundle commands over a directory.
type Runner struct {
	Config Config
	Log    *slog.Logger
}

// Result summarises one run.
type Result struct {
	Files   int
	Written int
	Skipped int
}

// NewRunner returns a Runner. A nil logger discards output.
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{Config: cfg, Log: logger}
}

// Convert rewrites every discovered input into its output file.
func (r *Runner) Convert(ctx context.Context) (Result, error) {
	return r.each(ctx, func(path string) (bool, error) {
		return r.ConvertFile(path)
	})
}

// Check validates every discovered input without writing anything.
func (r *Runner) Check(ctx context.Context) (Result, error) {
	return r.each(ctx, func(path string) (bool, error) {
		doc, err := r.load(path)
		if err != nil {
			return false, err
		}
		if !swagdoc.IsSimplified(doc) {
			return false, nil
		}
		if _, _, err := swagdoc.ConvertDocument(doc, r.convertOpt()); err != nil {
			return false, err
		}
		r.Log.Debug("valid", "file", path)
		return true, nil
	})
}

// ConvertFile converts a single input. It reports false when the document
// was not in shorthand form and was copied through unchanged.
func (r *Runner) ConvertFile(path string) (bool, error) {
	out, err := OutputPath(path, r.Config.ReadExt, r.Config.WriteExt)
	if err != nil {
		return false, err
	}
	doc, err := r.load(path)
	if err != nil {
		return false, err
	}
	simplified := swagdoc.IsSimplified(doc)
	frag, kind, err := swagdoc.ConvertDocument(doc, r.convertOpt())
	if err != nil {
		return false, err
	}
	data, err := emit.Render(r.Config.FormatValue(), frag)
	if err != nil {
		return false, err
	}
	if err := writeFile(out, data); err != nil {
		return false, err
	}
	r.Log.Debug("converted", "file", path, "kind", kind.String(), "out", out)
	return simplified, nil
}

// Bundle converts every input with the OpenAPI 3 profile, merges the
// fragments, validates the result and writes it to Bundle.Output.
func (r *Runner) Bundle(ctx context.Context) (Result, error) {
	b := bundle.New()
	opt := swagdoc.ConvertOpt{Profile: swagdoc.ProfileOpenAPI3}
	res, err := r.each(ctx, func(path string) (bool, error) {
		doc, err := r.load(path)
		if err != nil {
			return false, err
		}
		if !swagdoc.IsSimplified(doc) {
			r.Log.Warn("skipping document not in shorthand form", "file", path)
			return false, nil
		}
		switch swagdoc.DetectKind(doc) {
		case swagdoc.DocumentRoute:
			route, err := swagdoc.DecodeRoute(doc)
			if err != nil {
				return false, err
			}
			return true, b.AddRoute(swagdoc.ConvertRoute(route, opt))
		case swagdoc.DocumentEntity:
			entity, err := swagdoc.DecodeEntity(doc)
			if err != nil {
				return false, err
			}
			return true, b.AddEntity(swagdoc.ConvertEntity(entity, opt))
		}
		return false, errors.New("neither a route nor an entity document")
	})
	if err != nil {
		return res, err
	}

	doc := b.Document(r.Config.Bundle.Info)
	if err := bundle.Validate(ctx, doc); err != nil {
		return res, err
	}
	data, err := renderBundle(r.Config.Bundle.Output, doc)
	if err != nil {
		return res, err
	}
	if err := writeFile(r.Config.Bundle.Output, data); err != nil {
		return res, err
	}
	ops, comps := b.Len()
	r.Log.Info("bundle written", "out", r.Config.Bundle.Output, "operations", ops, "components", comps)
	return res, nil
}

// each discovers inputs and runs fn over them on a bounded worker pool.
// Every failure is collected; the run does not stop at the first one.
func (r *Runner) each(ctx context.Context, fn func(path string) (bool, error)) (Result, error) {
	files, err := Discover(r.Config.Path, r.Config.ReadExt, r.Config.Pattern())
	if err != nil {
		return Result{}, err
	}
	res := Result{Files: len(files)}
	var (
		mu   sync.Mutex
		errs []error
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Config.Workers)
	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := fn(path)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				r.Log.Error("failed", "file", path, "err", err)
				errs = append(errs, &FileError{Path: path, Err: err})
			case ok:
				res.Written++
			default:
				res.Skipped++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}
	return res, errors.Join(errs...)
}

func (r *Runner) load(path string) (*swagdoc.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var src swagdoc.Source
	if isYAML(path) {
		src = swagdoc.YAMLReader(f)
	} else {
		src = swagdoc.JSONReader(f)
	}
	return swagdoc.ParseDocument(src, r.Config.ParseOpt())
}

func (r *Runner) convertOpt() swagdoc.ConvertOpt {
	return swagdoc.ConvertOpt{Profile: r.Config.ProfileValue()}
}

// FileError ties a failure to its input file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

func renderBundle(out string, doc *oas.Map) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".json":
		return emit.JSON(doc)
	case ".yaml", ".yml":
		return emit.YAML(doc)
	}
	return nil, fmt.Errorf("bundle output %s: extension must be .yaml, .yml or .json", out)
}

// writeFile skips the write when the file already holds data, so watch mode
// does not retrigger itself.
func writeFile(path string, data []byte) error {
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, data) {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
