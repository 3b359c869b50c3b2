package idlmodel

// Event is an Anchor-only named record with an 8-byte `event:` prefixed
// discriminator. Shank and Bincode ASTs never populate events.
type Event struct {
	Name   string
	Fields []Field
}
