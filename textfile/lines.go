package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// MaxLineLength is the longest line a Source will read, in bytes.
const MaxLineLength = 1 << 20

// ErrNotRegular is flagged for paths which do not denote a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrConsumed is flagged when a reader-backed Source is iterated twice.
var ErrConsumed = errors.New("textfile: reader already consumed")

// Source yields the lines of a text file, without line terminators.
type Source struct {
	name      string
	open      func() (io.ReadCloser, error)
	once      bool // source can be read only once
	consumed  bool
	lines     int   // lines produced by the last iteration
	lastError error // remember last I/O error
}

// Open checks that name is a regular file and returns a Source for it.
// The file itself is opened anew for every iteration.
func Open(name string) (*Source, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	return &Source{
		name: name,
		open: func() (io.ReadCloser, error) { return os.Open(name) },
	}, nil
}

// FromReader returns a Source reading lines from r. It can be iterated once.
func FromReader(name string, r io.Reader) *Source {
	return &Source{
		name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		once: true,
	}
}

// Name returns the file name of the source.
func (s *Source) Name() string {
	return s.name
}

// Err returns the error which ended the last iteration early, if any.
func (s *Source) Err() error {
	return s.lastError
}

// Count returns the number of lines produced by the last iteration.
func (s *Source) Count() int {
	return s.lines
}

// Lines returns an iterator over the lines of the source. A trailing carriage
// return is removed from every line. I/O errors end the iteration and are
// reported by Err.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.lastError, s.lines = nil, 0
		if s.once {
			if s.consumed {
				s.lastError = fmt.Errorf("%w: %s", ErrConsumed, s.name)
				return
			}
			s.consumed = true
		}
		rc, err := s.open()
		if err != nil {
			s.lastError = err
			return
		}
		defer rc.Close()
		scanner := bufio.NewScanner(rc)
		scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)
		for scanner.Scan() {
			s.lines++
			if !yield(strings.TrimSuffix(scanner.Text(), "\r")) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.lastError = fmt.Errorf("error reading %s: %w", s.name, err)
		}
	}
}
