package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/alphabet"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/generator"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/pattern"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/runner"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/pkg/logging"
)

type options struct {
	minLength int
	maxLength int
	charset   string
	custom    string
	pattern   string
	output    string
}

func New() *cobra.Command {
	var cfgPath string

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "godzilla <min> <max>",
		Short:         "Flexible wordlist generator similar to crunch",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			opts.minLength, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid minimum length %q: %w", args[0], err)
			}

			opts.maxLength, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid maximum length %q: %w", args[1], err)
			}

			return run(cfgPath, opts)
		},
	}

	rootCmd.Flags().
		StringVar(&cfgPath, "config", "", "path to configuration file")
	rootCmd.Flags().
		StringVarP(&opts.charset, "charset", "c", "", "predefined character set: numeric, alpha, alpha-upper, alpha-mixed, alphanum, alphanum-upper, alphanum-mixed")
	rootCmd.Flags().
		StringVarP(&opts.custom, "string", "s", "", "custom character set from the provided string")
	rootCmd.Flags().
		StringVarP(&opts.pattern, "pattern", "p", "", "output pattern: @ lowercase, , digit, % uppercase, ^ any charset character, else literal")
	rootCmd.Flags().
		StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	rootCmd.MarkFlagsMutuallyExclusive("charset", "string")
	rootCmd.MarkFlagsOneRequired("charset", "string")

	return rootCmd
}

func run(cfgPath string, opts *options) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	logging.InitLogger(cfg.Logging, slog.String("service", "godzilla"))

	var alpha alphabet.Alphabet
	if opts.charset != "" {
		alpha, err = alphabet.Preset(opts.charset)
	} else {
		alpha, err = alphabet.Resolve(opts.custom)
	}
	if err != nil {
		slog.Error("resolve charset failed", slog.Any("error", err))
		return err
	}

	req := &wordlist.Request{
		MinLength: opts.minLength,
		MaxLength: opts.maxLength,
		Pattern:   opts.pattern,
	}

	coerced, err := req.Normalize()
	if err != nil {
		slog.Error("validate request failed", slog.Any("error", err))
		return err
	}

	if coerced {
		slog.Warn("pattern length outside min/max range, adjusting both bounds to match",
			slog.Int("pattern_length", req.MinLength))
	}

	out, closeSink, err := openSink(opts.output)
	if err != nil {
		slog.Error("open output failed", slog.Any("error", err))
		return err
	}
	defer closeSink()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	space := generator.NewSpace(alpha, req.MinLength, req.MaxLength)

	slog.Info("starting generation",
		slog.String("charset", alpha.String()),
		slog.Int("min_length", req.MinLength),
		slog.Int("max_length", req.MaxLength),
		slog.String("pattern", req.Pattern),
		slog.String("output", sinkName(opts.output)),
		slog.Uint64("space_size", space.Total()),
	)

	gen := generator.New(alpha, req.MinLength, req.MaxLength, pattern.New(req.Pattern))

	stats, runErr := runner.New(out, cfg.Writer, slog.Default()).Run(ctx, gen)

	if stats.Interrupted {
		slog.Warn("process interrupted by user")
	}

	slog.Info("wordlist generation finished",
		slog.String("run_id", stats.RunID.String()),
		slog.Uint64("total_words", stats.Words),
		slog.Duration("duration", stats.Duration),
	)

	if runErr != nil {
		slog.Error("write to output failed", slog.Any("error", runErr))
		return runErr
	}

	if opts.output != "" {
		slog.Info("wordlist saved", slog.String("path", opts.output))
	}

	return nil
}

func loadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func openSink(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output file %s: %w", path, err)
	}

	return f, func() { _ = f.Close() }, nil
}

func sinkName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
