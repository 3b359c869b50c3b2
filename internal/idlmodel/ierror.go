package idlmodel

// ErrorVariant is one entry of the program's error table:
// a numeric code, a name, and an optional display message. Codes need
// not be contiguous; distinct variants may legally share a message —
// such entries are emitted as given, with no dedup or validation pass.
type ErrorVariant struct {
	Code uint32
	Name string
	Msg  string
}
