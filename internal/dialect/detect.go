package dialect

import "encoding/json"

// rawMetadata is the subset of the top-level IDL document used to detect
// which dialect produced it.
type rawMetadata struct {
	Metadata struct {
		Origin string `json:"origin"`
	} `json:"metadata"`
}

// detect picks a dialect from metadata.origin: "shank" and
// "bincode" are explicit opt-ins; anything else, including an absent
// metadata.origin, falls back to Anchor, the original tool's default.
func detect(data []byte) Dialect {
	var meta rawMetadata
	_ = json.Unmarshal(data, &meta)
	switch meta.Metadata.Origin {
	case "shank":
		return Shank
	case "bincode":
		return Bincode
	default:
		return Anchor
	}
}
