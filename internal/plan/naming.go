package plan

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// predeclared lists the universe-scope identifiers of Go.
var predeclared = map[string]struct{}{
	"any": {}, "bool": {}, "byte": {}, "comparable": {}, "complex64": {}, "complex128": {},
	"error": {}, "float32": {}, "float64": {}, "int": {}, "int8": {}, "int16": {}, "int32": {},
	"int64": {}, "rune": {}, "string": {}, "uint": {}, "uint8": {}, "uint16": {}, "uint32": {},
	"uint64": {}, "uintptr": {}, "true": {}, "false": {}, "iota": {}, "nil": {}, "append": {},
	"cap": {}, "clear": {}, "close": {}, "complex": {}, "copy": {}, "delete": {}, "imag": {},
	"len": {}, "make": {}, "max": {}, "min": {}, "new": {}, "panic": {}, "print": {},
	"println": {}, "real": {}, "recover": {},
}

// IsPredeclared reports whether name is a universe-scope Go identifier.
func IsPredeclared(name string) bool {
	_, ok := predeclared[name]
	return ok
}

// SanitizeIdent replaces every rune that cannot appear in a Go identifier
// with '_' and prepends prefix when the result starts with a digit, is empty,
// or is a keyword or predeclared identifier.
func SanitizeIdent(s, prefix string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	ident := sb.String()

	first, _ := utf8.DecodeRuneInString(ident)
	if ident == "" || unicode.IsDigit(first) || token.IsKeyword(ident) || IsPredeclared(ident) {
		ident = prefix + ident
	}

	return ident
}

// ExportedIdent turns a dictionary name into an exported Go identifier.
func ExportedIdent(name string) string {
	ident := SanitizeIdent(name, "X")

	first, size := utf8.DecodeRuneInString(ident)
	if !unicode.IsUpper(first) {
		upper := unicode.ToUpper(first)
		if upper == first {
			return "X" + ident
		}

		ident = string(upper) + ident[size:]
	}

	return ident
}
