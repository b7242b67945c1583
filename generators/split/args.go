package split

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

var errArgs = errors.New("invalid directive arguments")

type config struct {
	K    int
	L    int
	Name string
}

// parseArgs parses "K L [--name Method]".
func parseArgs(arguments []string) (config, error) {
	var cfg config

	flagset := pflag.NewFlagSet("split", pflag.ContinueOnError)
	flagset.SetOutput(io.Discard)

	flagset.StringVar(&cfg.Name, "name", "", "method name")

	if err := flagset.Parse(arguments); err != nil {
		return config{}, fmt.Errorf("%w: %w", errArgs, err)
	}

	lengths := flagset.Args()
	if len(lengths) != 2 {
		return config{}, fmt.Errorf("%w: want 2 array lengths, got %d", errArgs, len(lengths))
	}

	var err error

	if cfg.K, err = parseLen(lengths[0]); err != nil {
		return config{}, err
	}

	if cfg.L, err = parseLen(lengths[1]); err != nil {
		return config{}, err
	}

	if cfg.Name != "" && !token.IsIdentifier(cfg.Name) {
		return config{}, fmt.Errorf("%w: method name %q is not an identifier", errArgs, cfg.Name)
	}

	return cfg, nil
}

func parseLen(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: array length %q: %w", errArgs, s, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: array length %d", ErrNegativeLength, n)
	}

	return n, nil
}
