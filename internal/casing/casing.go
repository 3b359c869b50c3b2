// Package casing converts IDL identifiers (camelCase, snake_case, or a
// mix) into the Rust naming conventions the generated crate uses:
// snake_case for fields and functions, PascalCase for types, and
// SHOUTY_SNAKE_CASE for constants.
package casing

import "strings"

// rustKeywords are reserved words that cannot be used as Rust
// identifiers. ConditionalPascalCase below gives a name that collides with
// one of these a trailing underscore after PascalCasing it, mirroring the
// original tool's "conditional" rename rule.
var rustKeywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true,
	"try": true,
}

// words splits an identifier into case-insensitive word boundaries,
// handling snake_case, kebab-case, camelCase, and PascalCase inputs alike.
func words(s string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				prev := runes[i-1]
				startOfNewWord := prev >= 'a' && prev <= 'z'
				// handle the boundary inside an acronym run, e.g. "HTTPServer" -> HTTP, Server
				if !startOfNewWord && i+1 < len(runes) {
					next := runes[i+1]
					if next >= 'a' && next <= 'z' {
						startOfNewWord = true
					}
				}
				if startOfNewWord {
					flush()
				}
			}
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// ToSnakeCase converts an identifier to snake_case, e.g.
// "createMetadataAccount" -> "create_metadata_account".
func ToSnakeCase(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

// ToShoutySnakeCase converts an identifier to SHOUTY_SNAKE_CASE, e.g.
// "createMetadataAccount" -> "CREATE_METADATA_ACCOUNT".
func ToShoutySnakeCase(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

// ToPascalCase converts an identifier to PascalCase, e.g.
// "create_metadata_account" -> "CreateMetadataAccount".
func ToPascalCase(s string) string {
	ws := words(s)
	var b strings.Builder
	for _, w := range ws {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		b.WriteString(strings.ToUpper(lower[:1]))
		b.WriteString(lower[1:])
	}
	return b.String()
}

// ConditionalPascalCase returns name unchanged if it is already PascalCase
// (an uppercase first letter and no underscores) and not a Rust keyword.
// A keyword is PascalCased and given a trailing underscore ("move" ->
// "Move_"); any other name is PascalCased ("bonding_curve" ->
// "BondingCurve").
func ConditionalPascalCase(name string) string {
	if name == "" {
		return name
	}
	if rustKeywords[name] {
		return ToPascalCase(name) + "_"
	}
	if isPascalCase(name) {
		return name
	}
	return ToPascalCase(name)
}

func isPascalCase(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	if r < 'A' || r > 'Z' {
		return false
	}
	for _, r := range s {
		if r == '_' {
			return false
		}
	}
	return true
}
