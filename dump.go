package idcdump

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// maxLineSize is the maximum length in bytes of a line of an IDC dump.
const maxLineSize = 1 << 20

// Stats tracks the number of set_name directives seen and symbols dumped.
type Stats struct {
	// Number of set_name directives.
	Matched int
	// Number of symbols written to the address mapping.
	Dumped int
}

// Percent returns the percentage (truncated) of matched symbols which were
// dumped. An empty database is reported as 0%.
func (stats Stats) Percent() int {
	if stats.Matched == 0 {
		return 0
	}
	return stats.Dumped * 100 / stats.Matched
}

// String returns the summary line of the stats.
//
//    Dumped 42 names (87% of the DB)
func (stats Stats) String() string {
	return fmt.Sprintf("Dumped %d names (%d%% of the DB)", stats.Dumped, stats.Percent())
}

// DumpFile dumps the C and C++ symbols of the given IDC dump, reading from
// inPath and writing the address mapping to outPath. The output file is
// created or truncated.
func DumpFile(inPath, outPath string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, errors.WithStack(err)
	}
	defer in.Close()
	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, errors.WithStack(err)
	}
	stats, err := Dump(in, out)
	if err != nil {
		out.Close()
		return stats, errors.WithStack(err)
	}
	if err := out.Close(); err != nil {
		return stats, errors.WithStack(err)
	}
	return stats, nil
}

// Dump dumps the C and C++ symbols of the given IDC dump, reading from r and
// writing one "0x<addr>: <name>" line per symbol to w, in input order.
//
// On error, the stats up to the failing line are returned and lines already
// written to w are left in place.
func Dump(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for lineNum := 1; s.Scan(); lineNum++ {
		rec, ok, err := ParseLine(s.Text())
		if err != nil {
			return stats, errors.Wrapf(err, "unable to parse line %d", lineNum)
		}
		if !ok {
			continue
		}
		stats.Matched++
		if !ShouldDump(rec.Name) {
			continue
		}
		if _, err := fmt.Fprintln(w, rec); err != nil {
			return stats, errors.WithStack(err)
		}
		stats.Dumped++
	}
	if err := s.Err(); err != nil {
		return stats, errors.WithStack(err)
	}
	return stats, nil
}
