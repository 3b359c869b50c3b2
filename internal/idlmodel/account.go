package idlmodel

// Account is a named typedef that, for Anchor, also carries an 8-byte
// discriminator prefix; Shank accounts reuse typedef emission with no
// prefix at all.
type Account struct {
	Typedef Typedef
}
