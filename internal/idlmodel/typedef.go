package idlmodel

// Field is a named (name, type-ref) pair.
type Field struct {
	Name string
	Type TypeRef
}

// VariantFieldsKind discriminates an enum variant's field shape: struct-like
// (named fields), tuple-like (anonymous type-refs), or absent (unit).
type VariantFieldsKind int

const (
	VariantFieldsNone VariantFieldsKind = iota
	VariantFieldsStruct
	VariantFieldsTuple
)

// Variant is one entry of an enum typedef.
type Variant struct {
	Name        string
	FieldsKind  VariantFieldsKind
	NamedFields []Field
	TupleFields []TypeRef
}

// TypedefKind distinguishes struct from enum typedefs.
type TypedefKind int

const (
	TypedefKindStruct TypedefKind = iota
	TypedefKindEnum
)

// Typedef is a named type declared in the IDL: either an
// ordered struct of fields, or an ordered sequence of enum variants.
// Borsh variant ordinal == declaration order.
type Typedef struct {
	Name     string
	Kind     TypedefKind
	Fields   []Field   // struct
	Variants []Variant // enum
}

// ContainsPubkey reports whether any field/variant transitively contains
// the public-key primitive (drives conditional imports).
func (t Typedef) ContainsPubkey() bool {
	switch t.Kind {
	case TypedefKindStruct:
		for _, f := range t.Fields {
			if f.Type.ContainsPubkey() {
				return true
			}
		}
	case TypedefKindEnum:
		for _, v := range t.Variants {
			if v.containsPubkey() {
				return true
			}
		}
	}
	return false
}

// ContainsDefined reports whether any field/variant transitively
// references a Defined type (drives conditional imports).
func (t Typedef) ContainsDefined() bool {
	switch t.Kind {
	case TypedefKindStruct:
		for _, f := range t.Fields {
			if f.Type.ContainsDefined() {
				return true
			}
		}
	case TypedefKindEnum:
		for _, v := range t.Variants {
			if v.containsDefined() {
				return true
			}
		}
	}
	return false
}

func (v Variant) containsPubkey() bool {
	switch v.FieldsKind {
	case VariantFieldsStruct:
		for _, f := range v.NamedFields {
			if f.Type.ContainsPubkey() {
				return true
			}
		}
	case VariantFieldsTuple:
		for _, tr := range v.TupleFields {
			if tr.ContainsPubkey() {
				return true
			}
		}
	}
	return false
}

func (v Variant) containsDefined() bool {
	switch v.FieldsKind {
	case VariantFieldsStruct:
		for _, f := range v.NamedFields {
			if f.Type.ContainsDefined() {
				return true
			}
		}
	case VariantFieldsTuple:
		for _, tr := range v.TupleFields {
			if tr.ContainsDefined() {
				return true
			}
		}
	}
	return false
}
