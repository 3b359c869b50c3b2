// Package rustfmt accumulates generated Rust source text. It does not
// invoke an actual Rust formatter — Buffer just gives emitters a
// consistent, indentation-aware way to build up a module's text before
// it is written to disk.
package rustfmt

import (
	"fmt"
	"strings"
)

// Buffer accumulates lines of Rust source with simple brace-tracked
// indentation, the way the original tool's quote!/TokenStream output
// reads once pretty-printed — except we build the text directly instead
// of going through a macro/token-stream layer.
type Buffer struct {
	b      strings.Builder
	indent int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Linef writes an indented, newline-terminated line. A trailing "{"
// increases indentation for subsequent lines; a leading "}" decreases it
// first.
func (b *Buffer) Linef(format string, args ...any) {
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "}") && b.indent > 0 {
		b.indent--
	}
	b.b.WriteString(strings.Repeat("    ", b.indent))
	b.b.WriteString(line)
	b.b.WriteString("\n")
	if strings.HasSuffix(trimmed, "{") {
		b.indent++
	}
}

// Raw writes s verbatim with no indentation or trailing newline logic
// applied, for multi-line blocks already formatted by the caller.
func (b *Buffer) Raw(s string) {
	b.b.WriteString(s)
}

// Blank writes an empty line.
func (b *Buffer) Blank() {
	b.b.WriteString("\n")
}

// String returns the accumulated source text.
func (b *Buffer) String() string {
	return b.b.String()
}
