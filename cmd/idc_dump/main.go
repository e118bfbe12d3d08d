// The idc_dump tool extracts C and C++ symbols from IDC dumps.
//
// Usage:
//
//    IDCDump INPUT OUTPUT
//
// Each set_name directive of INPUT naming a C or C++ symbol is written to
// OUTPUT as
//
//    0x401000: _main
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mewkiz/pkg/term"
	"github.com/mewrev/idcdump"
	"github.com/pkg/errors"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix(term.RedBold("idc_dump:") + " ")
}

func usage() {
	const use = `
Extract C and C++ symbols from IDC dumps.

Usage:

	IDCDump INPUT OUTPUT
`
	fmt.Fprintln(os.Stderr, use[1:])
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)
	if err := idcDump(os.Stdout, inPath, outPath); err != nil {
		log.Fatalf("%+v", err)
	}
}

// idcDump dumps the symbols of the IDC dump inPath to outPath, and prints a
// summary to w.
func idcDump(w io.Writer, inPath, outPath string) error {
	stats, err := idcdump.DumpFile(inPath, outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintln(w, stats); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
