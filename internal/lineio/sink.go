package lineio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const writerBufBytes = 64 << 10

// Sink writes records to an output stream, one newline-terminated line per
// record. The first write failure is sticky: every later call reports it.
type Sink struct {
	w      *bufio.Writer
	closer io.Closer // underlying file; nil for standard output
}

// OpenOutput creates or truncates the named file, or wraps standard output
// when path is empty.
func OpenOutput(path string) (*Sink, error) {
	if path == "" {
		return NewSink(os.Stdout), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	sk := NewSink(f)
	sk.closer = f
	return sk, nil
}

// NewSink wraps an arbitrary writer as a Sink.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriterSize(w, writerBufBytes)}
}

// WriteLine writes text followed by exactly one newline, regardless of how
// the source line was terminated.
func (s *Sink) WriteLine(text string) error {
	if _, err := s.w.WriteString(text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Flush forces buffered records out to the underlying writer.
func (s *Sink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying file, if any. Standard output
// is flushed but left open.
func (s *Sink) Close() error {
	err := s.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
