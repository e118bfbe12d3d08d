// Package idcdump extracts named addresses from IDC symbol dumps exported by
// disassemblers, producing a simple address to name mapping.
package idcdump

import (
	"log"
	"os"

	"github.com/mewkiz/pkg/term"
)

var (
	// warn is a logger with the "idcdump:" prefix which logs warning messages
	// to standard error.
	warn = log.New(os.Stderr, term.RedBold("idcdump:")+" ", 0)
)
