package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reoring/swagdoc/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(ctx, os.Args[2:])
	case "check":
		checkCmd(ctx, os.Args[2:])
	case "bundle":
		bundleCmd(ctx, os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `swagdoc converts shorthand API documents into OpenAPI fragments

Usage:
  swagdoc convert [-path dist] [-read-ext .doc.json] [-write-ext .doc.js] [-format jsdoc|yaml|json] [-watch]
  swagdoc check   [-path dist] [-read-ext .doc.json]
  swagdoc bundle  [-path dist] [-o openapi.yaml] [-title API] [-version 1.0.0]

Common flags:
  -config swagdoc.yml   configuration file (optional)
  -regex PATTERN        only process files whose name matches
  -profile NAME         shorthand (default) or openapi3
  -workers N            concurrent conversions
  -v                    verbose logs`)
}

// common registers the flags shared by every subcommand. Flag names map to
// config keys so explicitly set flags can override the config file.
type common struct {
	fs         *flag.FlagSet
	configFile string
	verbose    bool
	keys       map[string]string
}

func newCommon(name string) *common {
	c := &common{fs: flag.NewFlagSet(name, flag.ExitOnError), keys: map[string]string{}}
	c.fs.StringVar(&c.configFile, "config", "", "configuration file (default "+cli.DefaultConfigFile+" when present)")
	c.fs.BoolVar(&c.verbose, "v", false, "enable verbose logs")
	c.str("path", "path", "dist", "directory to scan")
	c.str("read-ext", "readExtension", ".doc.json", "input file extension")
	c.str("regex", "regex", "", "only process file names matching this pattern")
	c.str("profile", "profile", "shorthand", "conversion profile: shorthand or openapi3")
	c.fs.Int("workers", 0, "concurrent conversions (default number of CPUs)")
	c.keys["workers"] = "workers"
	c.fs.Int("max-depth", 0, "maximum document nesting depth")
	c.keys["max-depth"] = "maxDepth"
	return c
}

func (c *common) str(flagName, key, def, help string) {
	c.fs.String(flagName, def, help)
	c.keys[flagName] = key
}

// load parses args and resolves the configuration.
func (c *common) load(args []string) (cli.Config, *slog.Logger) {
	_ = c.fs.Parse(args)
	overrides := map[string]any{}
	c.fs.Visit(func(f *flag.Flag) {
		key, ok := c.keys[f.Name]
		if !ok {
			return
		}
		if g, ok := f.Value.(flag.Getter); ok {
			overrides[key] = g.Get()
		}
	})
	path, required := c.configFile, true
	if path == "" {
		path, required = cli.DefaultConfigFile, false
	}
	cfg, err := cli.LoadConfig(path, required, overrides)
	if err != nil {
		fatalf("%v", err)
	}
	return cfg, cli.NewLogger(os.Stderr, c.verbose)
}

func convertCmd(ctx context.Context, args []string) {
	c := newCommon("convert")
	c.str("write-ext", "writeExtension", ".doc.js", "output file extension")
	c.str("format", "format", "jsdoc", "output format: jsdoc, yaml or json")
	c.fs.Duration("debounce", 0, "watch mode: quiet period before reconverting a file")
	c.keys["debounce"] = "debounce"
	watch := c.fs.Bool("watch", false, "reconvert files as they change")
	cfg, logger := c.load(args)

	r := cli.NewRunner(cfg, logger)
	if *watch {
		if err := r.Watch(ctx); err != nil {
			fatalf("watch: %v", err)
		}
		return
	}
	res, err := r.Convert(ctx)
	logger.Info("convert finished", "files", res.Files, "converted", res.Written, "passthrough", res.Skipped)
	if err != nil {
		os.Exit(1)
	}
}

func checkCmd(ctx context.Context, args []string) {
	c := newCommon("check")
	cfg, logger := c.load(args)
	res, err := cli.NewRunner(cfg, logger).Check(ctx)
	logger.Info("check finished", "files", res.Files, "valid", res.Written, "skipped", res.Skipped)
	if err != nil {
		os.Exit(1)
	}
}

func bundleCmd(ctx context.Context, args []string) {
	c := newCommon("bundle")
	c.str("o", "bundle.output", "openapi.yaml", "output file (.yaml, .yml or .json)")
	c.str("title", "bundle.info.title", "API", "info.title")
	c.str("version", "bundle.info.version", "1.0.0", "info.version")
	c.str("description", "bundle.info.description", "", "info.description")
	cfg, logger := c.load(args)
	if _, err := cli.NewRunner(cfg, logger).Bundle(ctx); err != nil {
		fatalf("bundle: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "swagdoc: "+format+"\n", a...)
	os.Exit(1)
}
