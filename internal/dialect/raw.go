package dialect

import (
	"encoding/json"
	"fmt"

	"github.com/solores-go/solores/internal/idlmodel"
)

// rawField is the wire shape of a (name, type-ref) pair shared by
// typedef struct fields, instruction args, and event fields.
type rawField struct {
	Name string          `json:"name"`
	Type idlmodel.TypeRef `json:"type"`
}

func parseFields(raw []rawField) []idlmodel.Field {
	fields := make([]idlmodel.Field, len(raw))
	for i, f := range raw {
		fields[i] = idlmodel.Field{Name: f.Name, Type: f.Type}
	}
	return fields
}

// rawNamedType is the wire shape of a typedef declaration,
// shared verbatim between a dialect's "types" section and its "accounts"
// section — an Anchor/Shank account is just a typedef the IDL also lists
// as an account (original tool: `NamedAccount(pub NamedType)`).
type rawNamedType struct {
	Name string             `json:"name"`
	Type rawTypedefTypeDesc `json:"type"`
}

type rawTypedefTypeDesc struct {
	Kind     string          `json:"kind"`
	Fields   []rawField      `json:"fields"`
	Variants []rawVariant    `json:"variants"`
}

type rawVariant struct {
	Name   string          `json:"name"`
	Fields json.RawMessage `json:"fields"`
}

func (n rawNamedType) toTypedef() (idlmodel.Typedef, error) {
	switch n.Type.Kind {
	case "struct":
		return idlmodel.Typedef{
			Name:   n.Name,
			Kind:   idlmodel.TypedefKindStruct,
			Fields: parseFields(n.Type.Fields),
		}, nil
	case "enum":
		variants := make([]idlmodel.Variant, len(n.Type.Variants))
		for i, v := range n.Type.Variants {
			kind, named, tuple, err := parseVariantFields(v.Fields)
			if err != nil {
				return idlmodel.Typedef{}, fmt.Errorf("typedef %q variant %q: %w", n.Name, v.Name, err)
			}
			variants[i] = idlmodel.Variant{
				Name:        v.Name,
				FieldsKind:  kind,
				NamedFields: named,
				TupleFields: tuple,
			}
		}
		return idlmodel.Typedef{
			Name:     n.Name,
			Kind:     idlmodel.TypedefKindEnum,
			Variants: variants,
		}, nil
	default:
		return idlmodel.Typedef{}, fmt.Errorf("typedef %q: unknown kind %q", n.Name, n.Type.Kind)
	}
}

// parseVariantFields discriminates an enum variant's fields:
// absent (unit), a named-field list (struct-like), or an anonymous
// type-ref list (tuple-like). Grounded on the original tool's
// `EnumVariantFields` untagged enum, reimplemented here as a two-attempt
// decode since Go lacks serde's `#[serde(untagged)]`.
func parseVariantFields(raw json.RawMessage) (idlmodel.VariantFieldsKind, []idlmodel.Field, []idlmodel.TypeRef, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return idlmodel.VariantFieldsNone, nil, nil, nil
	}

	var namedRaw []rawField
	if err := json.Unmarshal(raw, &namedRaw); err == nil {
		allNamed := len(namedRaw) > 0
		for _, f := range namedRaw {
			if f.Name == "" {
				allNamed = false
				break
			}
		}
		if allNamed {
			return idlmodel.VariantFieldsStruct, parseFields(namedRaw), nil, nil
		}
	}

	var tupleRaw []idlmodel.TypeRef
	if err := json.Unmarshal(raw, &tupleRaw); err != nil {
		return 0, nil, nil, fmt.Errorf("malformed variant fields: %s", raw)
	}
	return idlmodel.VariantFieldsTuple, nil, tupleRaw, nil
}

// rawIxAccount is the wire shape of an instruction's declared account
// entry.
type rawIxAccount struct {
	Name     string `json:"name"`
	IsMut    bool   `json:"isMut"`
	IsSigner bool   `json:"isSigner"`
	Desc     string `json:"desc"`
}

func (a rawIxAccount) toIxAccount() idlmodel.IxAccount {
	return idlmodel.IxAccount{
		Name:     a.Name,
		IsMut:    a.IsMut,
		IsSigner: a.IsSigner,
		Desc:     a.Desc,
	}
}

// rawError is the wire shape of an error table entry.
type rawError struct {
	Code uint32 `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg"`
}

func (e rawError) toErrorVariant() idlmodel.ErrorVariant {
	return idlmodel.ErrorVariant{Code: e.Code, Name: e.Name, Msg: e.Msg}
}
