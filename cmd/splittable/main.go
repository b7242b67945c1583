// Command splittable writes the pre-generated split functions of package
// github.com/WinPooh32/ownsplit/split.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/WinPooh32/ownsplit/generators/table"
	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("splittable", pflag.ContinueOnError)

	var (
		maxN  = fs.IntP("max", "n", 8, "largest source array length")
		pkg   = fs.String("pkg", "split", "package name")
		out   = fs.StringP("out", "o", "table_gen.go", "output file; - writes to stdout")
		debug = fs.Bool("debug", false, "enable debug logs")
	)

	err := fs.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	setupLogger(*debug)
	fail(err)

	slog.Debug("generate table", slog.Int("max", *maxN), slog.String("pkg", *pkg))

	fail(run(*maxN, *pkg, *out))
}

func run(maxN int, pkg, out string) error {
	data, err := table.Generate(pkg, maxN)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write file at %q: %w", out, err)
	}

	slog.Info("generated", slog.String("file", out))

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
