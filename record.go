package idcdump

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// setNameDirective is the IDC directive which assigns a name to an address.
const setNameDirective = "set_name"

// reDirective matches IDC directives of the form
//
//    set_name (0x401000, "_main")
//
// Submatches: directive, address (hex digits without 0x prefix), symbol name.
//
// Note: the character classes contain a literal '|', and the address class
// admits any ASCII letter, so addresses such as 0xg1 or 0x1|2 match and are
// rejected later on by ParseUint.
var reDirective = regexp.MustCompile(`([\w|_]+)\s+\(0[x|X]([0-9|a-z|A-Z]+),\s+"([\w|_]+)"\)`)

// Record is a named address.
type Record struct {
	// Symbol name.
	Name string
	// Address of symbol.
	Addr uint64
}

// String returns the mapping line of the record, without trailing newline.
//
//    0x401000: _main
func (rec *Record) String() string {
	return fmt.Sprintf("0x%x: %s", rec.Addr, rec.Name)
}

// ParseLine parses the given line of an IDC dump. The boolean result reports
// whether the line holds a set_name directive; other directives and malformed
// lines are not an error.
func ParseLine(line string) (*Record, bool, error) {
	m := reDirective.FindStringSubmatch(line)
	if m == nil {
		return nil, false, nil
	}
	directive, rawAddr, name := m[1], m[2], m[3]
	if directive != setNameDirective {
		return nil, false, nil
	}
	addr, err := strconv.ParseUint(rawAddr, 16, 64)
	if err != nil {
		return nil, false, errors.Wrapf(err, "invalid address 0x%s of symbol %q", rawAddr, name)
	}
	return &Record{Name: name, Addr: addr}, true, nil
}
