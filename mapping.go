package idcdump

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mapping is an address mapping, as produced by Dump.
type Mapping struct {
	// Named addresses, in file order.
	Recs []*Record
}

// ParseString parses the given address mapping, reading from s.
func ParseString(s string) (*Mapping, error) {
	r := strings.NewReader(s)
	return Parse(r)
}

// ParseBytes parses the given address mapping, reading from buf.
func ParseBytes(buf []byte) (*Mapping, error) {
	r := bytes.NewReader(buf)
	return Parse(r)
}

// ParseFile parses the given address mapping, reading from mappingPath.
func ParseFile(mappingPath string) (*Mapping, error) {
	buf, err := ioutil.ReadFile(mappingPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseBytes(buf)
}

// Parse parses the given address mapping, reading from r.
//
// Blank lines are skipped. Lines not of the form "0x<addr>: <name>" are
// reported as warnings and skipped.
func Parse(r io.Reader) (*Mapping, error) {
	// Read lines.
	lines, err := readLines(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Example contents of foo.map file:
	//
	//    0x401000: _main
	//    0x401230: _ZN3foo3barEv
	//    0x5030a8: g_counter
	m := &Mapping{}
	for i, line := range lines {
		switch {
		case len(line) == 0:
			// skip empty lines.
		case strings.HasPrefix(line, "0x"):
			rec, err := parseRecord(line)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to parse line %d", i+1)
			}
			m.Recs = append(m.Recs, rec)
		default:
			warn.Printf("skipping line %d; expected address mapping entry, got %q", i+1, line)
		}
	}
	return m, nil
}

// parseRecord parses the string representation of the given named address.
func parseRecord(s string) (*Record, error) {
	// Example:
	//
	//    0x401000: _main
	pos := strings.Index(s, ": ")
	if pos == -1 {
		return nil, errors.Errorf("missing address separator in %q", s)
	}
	rawAddr := strings.TrimPrefix(s[:pos], "0x")
	addr, err := strconv.ParseUint(rawAddr, 16, 64)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	name := s[pos+len(": "):]
	return &Record{Name: name, Addr: addr}, nil
}

// readLines reads and returns the lines of r, trimming spaces of each line.
func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for s.Scan() {
		line := s.Text()
		line = strings.TrimSpace(line)
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return lines, nil
}
