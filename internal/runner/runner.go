package runner

import (
	"bufio"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/TimelordUK/minigrep/internal/config"
	grepio "github.com/TimelordUK/minigrep/internal/io"
	"github.com/TimelordUK/minigrep/internal/search"
)

// Runner reads the configured file, searches it and prints the matches
type Runner struct {
	out io.Writer
	log *zap.Logger
}

// New creates a runner printing matches to out
func New(out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{out: out, log: log}
}

// Run searches with cfg and prints matches to standard output
func Run(cfg *config.Config) error {
	return New(os.Stdout, nil).Run(cfg)
}

// Run reads cfg's file into memory and writes every matching line to the
// runner's output. Read errors are returned as-is and nothing is written.
func (r *Runner) Run(cfg *config.Config) error {
	contents, err := grepio.ReadText(cfg.Filename())
	if err != nil {
		return err
	}
	r.log.Debug("file read",
		zap.String("filename", cfg.Filename()),
		zap.Int("bytes", len(contents)))

	results := search.Search(cfg.Query(), contents, cfg.CaseSensitive())
	r.log.Debug("search complete",
		zap.String("query", cfg.Query()),
		zap.Bool("case_sensitive", cfg.CaseSensitive()),
		zap.Int("matches", len(results)))

	w := bufio.NewWriter(r.out)
	for _, line := range results {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
