package lineio

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestSource(t *testing.T, data []byte, opts SourceOptions) *Source {
	t.Helper()
	src, err := NewSource(bytes.NewReader(data), opts)
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	return src
}

// collect drains src, returning decoded records and the errors seen along
// the way (excluding the final io.EOF).
func collect(t *testing.T, src *Source) ([]Record, []error) {
	t.Helper()
	var recs []Record
	var errs []error
	for {
		rec, err := src.Next()
		switch {
		case err == nil:
			recs = append(recs, rec)
		case errors.Is(err, io.EOF):
			return recs, errs
		default:
			errs = append(errs, err)
			var recErr *RecordError
			if !errors.As(err, &recErr) {
				return recs, errs
			}
		}
	}
}

func texts(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text
	}
	return out
}

func TestNextSplitsOnLF(t *testing.T) {
	src := newTestSource(t, []byte("a\nb\nc\n"), SourceOptions{})
	recs, errs := collect(t, src)
	if len(errs) != 0 {
		t.Fatalf("errors: %v", errs)
	}
	if got := texts(recs); !slicesEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("records = %q", got)
	}
	for i, r := range recs {
		if r.Num != int64(i+1) {
			t.Fatalf("record %d has ordinal %d", i, r.Num)
		}
	}
}

func TestNextStripsCRLF(t *testing.T) {
	src := newTestSource(t, []byte("a\r\nb\r\n"), SourceOptions{})
	recs, _ := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"a", "b"}) {
		t.Fatalf("records = %q", got)
	}
}

func TestNextFinalLineWithoutNewline(t *testing.T) {
	src := newTestSource(t, []byte("a\nlast"), SourceOptions{})
	recs, _ := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"a", "last"}) {
		t.Fatalf("records = %q", got)
	}
}

func TestNextEmptyLinesAreRecords(t *testing.T) {
	src := newTestSource(t, []byte("\n\nx\n"), SourceOptions{})
	recs, _ := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"", "", "x"}) {
		t.Fatalf("records = %q", got)
	}
}

func TestNextEmptyInput(t *testing.T) {
	src := newTestSource(t, nil, SourceOptions{})
	recs, errs := collect(t, src)
	if len(recs) != 0 || len(errs) != 0 {
		t.Fatalf("records = %v, errors = %v", recs, errs)
	}
}

func TestNextInvalidUTF8SkippedWithOrdinal(t *testing.T) {
	src := newTestSource(t, []byte("good\n\xff\xfe\nalso good\n"), SourceOptions{})
	recs, errs := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"good", "also good"}) {
		t.Fatalf("records = %q", got)
	}
	if len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}
	var recErr *RecordError
	if !errors.As(errs[0], &recErr) {
		t.Fatalf("error type: %v", errs[0])
	}
	if !errors.Is(recErr, ErrInvalidUTF8) {
		t.Fatalf("cause: %v", recErr.Err)
	}
	// The skipped record consumed ordinal 2.
	if recErr.Num != 2 {
		t.Fatalf("ordinal = %d, want 2", recErr.Num)
	}
	if recs[1].Num != 3 {
		t.Fatalf("next ordinal = %d, want 3", recs[1].Num)
	}
}

func TestNextOverlongLineSkippedAndStreamStaysAligned(t *testing.T) {
	long := strings.Repeat("z", 100)
	data := []byte("first\n" + long + "\nsecond\n")
	src := newTestSource(t, data, SourceOptions{MaxLineBytes: 10})
	recs, errs := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"first", "second"}) {
		t.Fatalf("records = %q", got)
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrLineTooLong) {
		t.Fatalf("errors = %v", errs)
	}
}

func TestNextOverlongLineLargerThanReadBuffer(t *testing.T) {
	// Longer than the 64 KiB internal buffer, so the skip path has to keep
	// consuming across ReadSlice refills.
	long := strings.Repeat("z", 80<<10)
	data := []byte(long + "\nafter\n")
	src := newTestSource(t, data, SourceOptions{MaxLineBytes: 1 << 10})
	recs, errs := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"after"}) {
		t.Fatalf("records = %q", got)
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrLineTooLong) {
		t.Fatalf("errors = %v", errs)
	}
}

func TestGzipAutoDetect(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("one\ntwo\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	src := newTestSource(t, buf.Bytes(), SourceOptions{GzipAutoDetect: true})
	recs, errs := collect(t, src)
	if len(errs) != 0 {
		t.Fatalf("errors: %v", errs)
	}
	if got := texts(recs); !slicesEqual(got, []string{"one", "two"}) {
		t.Fatalf("records = %q", got)
	}
}

func TestGzipAutoDetectLeavesPlainTextAlone(t *testing.T) {
	src := newTestSource(t, []byte("plain\n"), SourceOptions{GzipAutoDetect: true})
	recs, _ := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"plain"}) {
		t.Fatalf("records = %q", got)
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "absent.log"), SourceOptions{})
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestOpenInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.log")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err := OpenInput(path, SourceOptions{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()
	recs, _ := collect(t, src)
	if got := texts(recs); !slicesEqual(got, []string{"hello"}) {
		t.Fatalf("records = %q", got)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
