// Command ownsplit generates owned array split methods for types marked with
// //ownsplit:split directives.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/WinPooh32/ownsplit"
	"github.com/WinPooh32/ownsplit/gen"
	"github.com/WinPooh32/ownsplit/generators/split"
	"github.com/spf13/pflag"
)

// Enabled generators.
var generators = map[gen.GeneratorName]gen.Func{
	"split": split.Generate,
}

type flags struct {
	jobs     int
	dir      string
	patterns []string
	debug    bool
}

func main() {
	var flags flags

	fs := pflag.NewFlagSet("ownsplit", pflag.ContinueOnError)

	fs.IntVarP(&flags.jobs, "jobs", "j", 0, "parallel jobs number; 0 uses all cpu cores")
	fs.StringVarP(&flags.dir, "dir", "d", "", "go module dir")
	fs.StringSliceVarP(&flags.patterns, "pattern", "p", []string{"./..."}, "list of package patterns")
	fs.BoolVar(&flags.debug, "debug", false, "enable debug logs")

	err := fs.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	setupLogger(flags.debug)
	fail(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fail(generate(ctx, flags))
}

func generate(ctx context.Context, flags flags) error {
	g, err := ownsplit.NewGenerator()
	if err != nil {
		return fmt.Errorf("new generator: %w", err)
	}

	slog.Debug("load packages", slog.String("dir", flags.dir), slog.Any("patterns", flags.patterns))

	if _, err := g.Load(ctx, flags.dir, flags.patterns...); err != nil {
		return fmt.Errorf("load source files to the generator: %w", err)
	}

	slog.Debug("loaded packages", slog.Int("count", g.Len()))

	for res := range g.Generate(ctx, flags.jobs, generators) {
		file, err := res.Get()
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		if err := writeFile(file.Name, file.Data); err != nil {
			return fmt.Errorf("write file at %q: %w", file.Name, err)
		}

		slog.Info("generated", slog.String("file", file.Name))
	}

	return nil
}

func writeFile(name string, data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(name), os.ModePerm); err != nil {
		return fmt.Errorf("mkdir all: %w", err)
	}

	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

func fail(err error) {
	if err != nil {
		slog.Error("exit", slog.Any("err", err))
		os.Exit(1)
	}
}
