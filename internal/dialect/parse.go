package dialect

import "fmt"

// Parse detects the IDL dialect and deserializes data into the shared
// AST. Detection mirrors the original tool's
// try-anchor-last ordering: metadata.origin selects Shank or Bincode
// explicitly; any other value, or its absence, is treated as Anchor.
func Parse(data []byte) (*AST, error) {
	switch detect(data) {
	case Shank:
		ast, err := parseShank(data)
		if err != nil {
			return nil, fmt.Errorf("parse shank idl: %w", err)
		}
		return ast, nil
	case Bincode:
		ast, err := parseBincode(data)
		if err != nil {
			return nil, fmt.Errorf("parse bincode idl: %w", err)
		}
		return ast, nil
	default:
		ast, err := parseAnchor(data)
		if err != nil {
			return nil, fmt.Errorf("parse anchor idl: %w", err)
		}
		return ast, nil
	}
}
