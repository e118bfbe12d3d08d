package idcdump

import "strings"

// IsCName reports whether the given symbol name looks like a C symbol.
func IsCName(name string) bool {
	return strings.HasPrefix(name, "@") || strings.HasPrefix(name, "_")
}

// IsCXXName reports whether the given symbol name looks like a C++ symbol.
func IsCXXName(name string) bool {
	switch {
	// Itanium mangled names.
	case strings.HasPrefix(name, "_Z"):
		return true
	// Microsoft mangled names.
	case strings.HasPrefix(name, "?"):
		return true
	// Globals.
	case strings.HasPrefix(name, "g_"):
		return true
	// Demangled nested names (e.g. "foo::bar").
	case strings.Contains(name, "::"):
		return true
	}
	return false
}

// ShouldDump reports whether the given symbol name should be included in the
// address mapping.
func ShouldDump(name string) bool {
	return IsCXXName(name) || IsCName(name)
}
