package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/generator"
)

// DefaultFlushEvery is how many accepted words pass between sink flushes, so
// progress stays visible when the sink is a file.
const DefaultFlushEvery = 100000

type Config struct {
	FlushEvery int `yaml:"flush_every"`
}

// Stats describes one finished run, complete or interrupted.
type Stats struct {
	RunID       uuid.UUID
	Words       uint64
	StartedAt   time.Time
	Duration    time.Duration
	Interrupted bool
}

// Runner consumes a generator's word sequence and writes each word to the
// sink followed by a newline.
type Runner struct {
	out        *bufio.Writer
	flushEvery uint64
	log        *slog.Logger
}

func New(out io.Writer, cfg *Config, log *slog.Logger) *Runner {
	flushEvery := DefaultFlushEvery
	if cfg != nil && cfg.FlushEvery > 0 {
		flushEvery = cfg.FlushEvery
	}

	if log == nil {
		log = slog.Default()
	}

	return &Runner{
		out:        bufio.NewWriter(out),
		flushEvery: uint64(flushEvery),
		log:        log,
	}
}

// Run pulls words until the sequence is exhausted or ctx is canceled.
// Cancellation is cooperative: it is observed between words, the sequence is
// simply not asked for more elements, and partial stats are still returned.
// The buffer is flushed before returning in every case.
func (r *Runner) Run(ctx context.Context, g *generator.Generator) (Stats, error) {
	stats := Stats{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}

	var writeErr error

loop:
	for word := range g.Words() {
		select {
		case <-ctx.Done():
			stats.Interrupted = true
			break loop
		default:
		}

		if _, err := r.out.WriteString(word); err != nil {
			writeErr = err
			break
		}
		if err := r.out.WriteByte('\n'); err != nil {
			writeErr = err
			break
		}

		stats.Words++

		if stats.Words%r.flushEvery == 0 {
			if err := r.out.Flush(); err != nil {
				writeErr = err
				break
			}
			r.log.Debug("flushed sink", slog.Uint64("words", stats.Words))
		}
	}

	if err := r.out.Flush(); err != nil && writeErr == nil {
		writeErr = err
	}

	stats.Duration = time.Since(stats.StartedAt)

	if writeErr != nil {
		return stats, fmt.Errorf("write word: %w", writeErr)
	}

	return stats, nil
}
