// Package idlmodel is the semantic model shared by all three IDL
// dialects: type references, typedefs, accounts, instructions, events,
// errors, and program metadata. Parsing lives in
// internal/dialect; this package only models the data once parsed.
package idlmodel

import (
	"encoding/json"
	"fmt"

	"github.com/solores-go/solores/internal/casing"
)

// Kind enumerates the TypeRef variants.
type Kind int

const (
	KindPrimitive Kind = iota
	KindDefined
	KindArray
	KindOption
	KindVec
)

// primitiveNames is the fixed set of primitive/pubkey identifiers a bare
// string type-ref may name.
var primitiveNames = map[string]bool{
	"bool": true, "u8": true, "i8": true, "u16": true, "i16": true,
	"u32": true, "i32": true, "u64": true, "i64": true, "u128": true,
	"i128": true, "f32": true, "f64": true, "string": true, "bytes": true,
	"publicKey": true, "pubkey": true, "Pubkey": true,
}

// TypeRef is the sum type: Primitive, Defined, Array,
// Option, or Vec. Exactly one of the fields below is meaningful,
// selected by Kind.
type TypeRef struct {
	Kind Kind

	// KindPrimitive
	Primitive string

	// KindDefined
	Defined string

	// KindArray
	Elem   *TypeRef
	Length uint32

	// KindOption, KindVec reuse Elem
}

// UnmarshalJSON implements the "string-or-struct" duality that permeates
// every dialect's IDL: a bare string names a primitive or
// pubkey; a single-key object carries a composite (defined/array/option/
// vec). Grounded on the original tool's `string_or_struct` +
// `FromStr`/`Deserialize` idiom, reimplemented as one shared
// json.Unmarshaler instead of duplicating it per dialect.
func (t *TypeRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return t.fromPrimitiveString(s)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("type-ref is neither a string nor an object: %s", data)
	}

	switch {
	case obj["defined"] != nil:
		name, err := definedName(obj["defined"])
		if err != nil {
			return err
		}
		t.Kind = KindDefined
		t.Defined = name
		return nil
	case obj["array"] != nil:
		var arr []json.RawMessage
		if err := json.Unmarshal(obj["array"], &arr); err != nil || len(arr) != 2 {
			return fmt.Errorf("malformed array type-ref: %s", obj["array"])
		}
		var elem TypeRef
		if err := elem.UnmarshalJSON(arr[0]); err != nil {
			return err
		}
		var length uint32
		if err := json.Unmarshal(arr[1], &length); err != nil {
			return fmt.Errorf("malformed array length: %s", arr[1])
		}
		t.Kind = KindArray
		t.Elem = &elem
		t.Length = length
		return nil
	case obj["option"] != nil:
		var elem TypeRef
		if err := elem.UnmarshalJSON(obj["option"]); err != nil {
			return err
		}
		t.Kind = KindOption
		t.Elem = &elem
		return nil
	case obj["vec"] != nil:
		var elem TypeRef
		if err := elem.UnmarshalJSON(obj["vec"]); err != nil {
			return err
		}
		t.Kind = KindVec
		t.Elem = &elem
		return nil
	default:
		return fmt.Errorf("unknown type-ref shape: %s", data)
	}
}

func (t *TypeRef) fromPrimitiveString(s string) error {
	if !primitiveNames[s] {
		return fmt.Errorf("unknown primitive type-ref: %q", s)
	}
	t.Kind = KindPrimitive
	t.Primitive = s
	return nil
}

// definedName accepts either a bare string ({"defined": "Foo"}) or the
// newer Anchor IDL shape ({"defined": {"name": "Foo"}}).
func definedName(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("malformed defined type-ref: %s", raw)
	}
	return obj.Name, nil
}

// ContainsPubkey reports whether ref transitively contains the
// public-key primitive at any leaf.
func (t TypeRef) ContainsPubkey() bool {
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive == "publicKey" || t.Primitive == "pubkey" || t.Primitive == "Pubkey"
	case KindDefined:
		return false
	case KindArray, KindOption, KindVec:
		return t.Elem != nil && t.Elem.ContainsPubkey()
	default:
		return false
	}
}

// ContainsDefined reports whether ref transitively contains a Defined
// leaf.
func (t TypeRef) ContainsDefined() bool {
	switch t.Kind {
	case KindDefined:
		return true
	case KindArray, KindOption, KindVec:
		return t.Elem != nil && t.Elem.ContainsDefined()
	default:
		return false
	}
}

// rustPrimitive maps the fixed primitive name set to the Rust types the
// generated crate uses.
var rustPrimitive = map[string]string{
	"bool": "bool", "u8": "u8", "i8": "i8", "u16": "u16", "i16": "i16",
	"u32": "u32", "i32": "i32", "u64": "u64", "i64": "i64", "u128": "u128",
	"i128": "i128", "f32": "f32", "f64": "f64", "string": "String",
	"bytes": "Vec<u8>", "publicKey": "Pubkey", "pubkey": "Pubkey", "Pubkey": "Pubkey",
}

// EmitRust renders ref as the Rust type it names, resolving Defined
// references to their PascalCase name.
func (t TypeRef) EmitRust() string {
	switch t.Kind {
	case KindPrimitive:
		if s, ok := rustPrimitive[t.Primitive]; ok {
			return s
		}
		return t.Primitive
	case KindDefined:
		return casing.ConditionalPascalCase(t.Defined)
	case KindArray:
		return fmt.Sprintf("[%s; %d]", t.Elem.EmitRust(), t.Length)
	case KindOption:
		return fmt.Sprintf("Option<%s>", t.Elem.EmitRust())
	case KindVec:
		return fmt.Sprintf("Vec<%s>", t.Elem.EmitRust())
	default:
		return "()"
	}
}
