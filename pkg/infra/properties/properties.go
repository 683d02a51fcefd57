package properties

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Properties holds key/value pairs read from a line-oriented properties file
type Properties map[string]string

// Get returns the value for key and whether it was set
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Keys returns all keys in lexical order
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// ParseError reports a line that is not valid key=value syntax
type ParseError struct {
	Path   string // empty when parsed from a reader
	Line   int    // 1-based line where the logical line starts
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: %s: %q", loc, e.Reason, e.Text)
}

// Parse reads key=value lines from r.
//
// Blank lines and lines starting with '#' or '!' are ignored. A line ending
// with an odd number of backslashes continues on the next line. Values are
// kept verbatim apart from leading whitespace.
func Parse(r io.Reader) (Properties, error) {
	props := Properties{}
	reader := bufio.NewReader(r)

	var (
		logical    strings.Builder
		lineNo     int
		startLine  int
		continuing bool
	)

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, goerr.Wrap(readErr, "failed to read properties")
		}
		if raw == "" && readErr == io.EOF {
			break
		}

		lineNo++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		line = strings.TrimLeft(line, " \t\f")

		switch {
		case !continuing && (line == "" || line[0] == '#' || line[0] == '!'):
			// comment or blank
		case hasContinuation(line):
			if !continuing {
				startLine = lineNo
			}
			logical.WriteString(line[:len(line)-1])
			continuing = true
		default:
			if !continuing {
				startLine = lineNo
			}
			logical.WriteString(line)
			continuing = false
			if err := props.add(logical.String(), startLine); err != nil {
				return nil, err
			}
			logical.Reset()
		}

		if readErr == io.EOF {
			break
		}
	}

	// a continuation at EOF terminates the logical line
	if continuing {
		if err := props.add(logical.String(), startLine); err != nil {
			return nil, err
		}
	}

	return props, nil
}

func (p Properties) add(line string, lineNo int) error {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return &ParseError{Line: lineNo, Text: line, Reason: "missing '=' separator"}
	}

	key := strings.TrimSpace(line[:idx])
	if key == "" {
		return &ParseError{Line: lineNo, Text: line, Reason: "empty key"}
	}

	p[key] = strings.TrimLeft(line[idx+1:], " \t\f")
	return nil
}

func hasContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// LoadFile parses the properties file at path. A missing file is not an
// error and yields an empty set.
func LoadFile(path string) (Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Properties{}, nil
		}
		return nil, goerr.Wrap(err, "failed to open properties file", goerr.V("path", path))
	}
	defer f.Close()

	props, err := Parse(f)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, goerr.Wrap(err, "failed to parse properties file", goerr.V("path", path))
	}

	return props, nil
}
