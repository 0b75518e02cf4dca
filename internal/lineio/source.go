package lineio

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

const (
	// defaultMaxLineBytes caps a single record when SourceOptions leaves
	// MaxLineBytes zero.
	defaultMaxLineBytes = 1 << 20

	readerBufBytes = 64 << 10
)

// Sentinel causes for *RecordError.
var (
	ErrLineTooLong = errors.New("line exceeds the maximum line length")
	ErrInvalidUTF8 = errors.New("line is not valid UTF-8")
)

// RecordError describes a single undecodable input record. The record has
// been consumed; the caller may report the error and continue with Next.
type RecordError struct {
	Num int64 // 1-based ordinal of the offending record
	Err error
}

func (e *RecordError) Error() string { return fmt.Sprintf("record %d: %v", e.Num, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }

// Record is one decoded input line.
type Record struct {
	Num  int64  // 1-based ordinal in the input stream
	Text string // content without the trailing newline
}

// SourceOptions configure input decoding.
type SourceOptions struct {
	// MaxLineBytes caps a single line; longer lines are skipped with a
	// *RecordError. Zero selects the built-in default of 1 MiB.
	MaxLineBytes int
	// GzipAutoDetect peeks the first two bytes and transparently
	// decompresses gzip input.
	GzipAutoDetect bool
}

// Source reads newline-delimited records from an input stream.
type Source struct {
	r      *bufio.Reader
	gz     *gzip.Reader
	closer io.Closer // underlying file; nil for standard input
	max    int
	num    int64
	done   bool
}

// OpenInput opens the named file, or standard input when path is empty.
func OpenInput(path string, opts SourceOptions) (*Source, error) {
	if path == "" {
		return NewSource(os.Stdin, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	src, err := NewSource(f, opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	src.closer = f
	return src, nil
}

// NewSource wraps an arbitrary reader as a Source.
func NewSource(r io.Reader, opts SourceOptions) (*Source, error) {
	max := opts.MaxLineBytes
	if max <= 0 {
		max = defaultMaxLineBytes
	}
	br := bufio.NewReaderSize(r, readerBufBytes)
	s := &Source{r: br, max: max}
	if opts.GzipAutoDetect {
		// Peek errors mean the stream is shorter than the magic; read it raw.
		if hdr, err := br.Peek(2); err == nil && hdr[0] == 0x1f && hdr[1] == 0x8b {
			gz, err := gzip.NewReader(br)
			if err != nil {
				return nil, fmt.Errorf("gzip input: %w", err)
			}
			s.gz = gz
			s.r = bufio.NewReaderSize(gz, readerBufBytes)
		}
	}
	return s, nil
}

// Next returns the next record. A *RecordError reports an undecodable
// record that was skipped; iteration may continue. io.EOF marks clean end
// of input. Any other error means the stream cannot advance.
func (s *Source) Next() (Record, error) {
	if s.done {
		return Record{}, io.EOF
	}
	line, err := s.readLine()
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		s.done = true
		if len(line) == 0 {
			return Record{}, io.EOF
		}
		// Final record without a trailing newline.
	case errors.Is(err, ErrLineTooLong):
		s.num++
		return Record{}, &RecordError{Num: s.num, Err: ErrLineTooLong}
	default:
		s.done = true
		return Record{}, fmt.Errorf("read input: %w", err)
	}
	s.num++
	if !utf8.Valid(line) {
		return Record{}, &RecordError{Num: s.num, Err: ErrInvalidUTF8}
	}
	return Record{Num: s.num, Text: string(line)}, nil
}

// readLine accumulates one raw line. When the line exceeds the cap the
// remainder is consumed and dropped so the stream stays aligned on the
// next record, and ErrLineTooLong is returned.
func (s *Source) readLine() ([]byte, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		part, err := s.r.ReadSlice('\n')
		if !tooLong && len(part) > 0 {
			// +2 leaves room for a CRLF still attached to part.
			if len(buf)+len(part) > s.max+2 {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, part...)
			}
		}
		switch {
		case err == nil:
			line := trimEOL(buf)
			if tooLong || len(line) > s.max {
				return nil, ErrLineTooLong
			}
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			line := trimEOL(buf)
			if tooLong || len(line) > s.max {
				return nil, ErrLineTooLong
			}
			return line, io.EOF
		default:
			return nil, err
		}
	}
}

// trimEOL drops one trailing LF and, when present before it, one CR.
func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}

// Close releases the underlying file, if any. Standard input is left open.
func (s *Source) Close() error {
	var first error
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			first = err
		}
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
