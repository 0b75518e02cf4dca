package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rzbill/trawl/internal/lineio"
	"github.com/rzbill/trawl/internal/match"
	"github.com/rzbill/trawl/internal/ringbuf"
	logpkg "github.com/rzbill/trawl/pkg/log"
)

// Options configure a Scanner.
type Options struct {
	// Before is the number of context lines retained ahead of a match.
	Before int
	// After is the number of lines emitted unconditionally after a match.
	After int
	// Logger receives one Warn per skipped record and a Debug summary at
	// end of scan. Nil selects a default logger.
	Logger logpkg.Logger
}

// Stats summarize one completed or aborted scan.
type Stats struct {
	Records int64 // records decoded from the input
	Matches int64 // records that matched the pattern set
	Emitted int64 // lines written, matches and context together
	Skipped int64 // undecodable records skipped
}

// Scanner runs the single-pass match-and-context loop. State is one bounded
// buffer of candidate before-context lines plus a countdown of trailing
// lines still owed to the most recent match. Not safe for concurrent use;
// the scan is strictly sequential by design, since the decision for each
// line depends on everything buffered before it.
type Scanner struct {
	set     match.Set
	before  *ringbuf.Buffer[string]
	after   int
	pending int
	logger  logpkg.Logger
}

// New returns a Scanner over the given pattern set. Negative context counts
// are rejected.
func New(set match.Set, opts Options) (*Scanner, error) {
	if opts.Before < 0 {
		return nil, fmt.Errorf("before must be non-negative, got %d", opts.Before)
	}
	if opts.After < 0 {
		return nil, fmt.Errorf("after must be non-negative, got %d", opts.After)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("scanner"))
	}
	return &Scanner{
		set:    set,
		before: ringbuf.New[string](opts.Before),
		after:  opts.After,
		logger: logger,
	}, nil
}

// Run consumes src to exhaustion, writing matches and their context to
// sink. Undecodable records are reported on the logger and skipped; any
// write error aborts the scan immediately. Lines still buffered as
// candidate before-context when the input ends are discarded. Run is
// one-shot: the Scanner's buffer and counter are not reset afterwards.
func (s *Scanner) Run(ctx context.Context, src *lineio.Source, sink *lineio.Sink) (Stats, error) {
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		rec, err := src.Next()
		if err != nil {
			var recErr *lineio.RecordError
			switch {
			case errors.Is(err, io.EOF):
				s.logger.Debug("scan complete",
					logpkg.Int64("records", stats.Records),
					logpkg.Int64("matches", stats.Matches),
					logpkg.Int64("emitted", stats.Emitted),
					logpkg.Int64("skipped", stats.Skipped),
				)
				return stats, nil
			case errors.As(err, &recErr):
				stats.Skipped++
				s.logger.Warn("skipping undecodable record",
					logpkg.Int64("record", recErr.Num),
					logpkg.Err(recErr.Err),
				)
				continue
			default:
				return stats, err
			}
		}
		stats.Records++
		if err := s.step(rec, sink, &stats); err != nil {
			return stats, err
		}
	}
}

// step classifies one decoded record. The order of the branches is the
// contract: an active trailing window wins over fresh match evaluation, so
// a matching line inside the window is emitted as plain context and never
// re-arms the counter or flushes the buffer.
func (s *Scanner) step(rec lineio.Record, sink *lineio.Sink, stats *Stats) error {
	if s.pending > 0 {
		s.pending--
		return s.emit(sink, rec.Text, stats)
	}
	if s.set.MatchAny(match.Record{Num: rec.Num, Text: rec.Text}) {
		stats.Matches++
		for text := range s.before.Drain() {
			if err := s.emit(sink, text, stats); err != nil {
				return err
			}
		}
		if err := s.emit(sink, rec.Text, stats); err != nil {
			return err
		}
		s.pending = s.after
		return nil
	}
	s.before.Push(rec.Text)
	return nil
}

func (s *Scanner) emit(sink *lineio.Sink, text string, stats *Stats) error {
	if err := sink.WriteLine(text); err != nil {
		return err
	}
	stats.Emitted++
	return nil
}
