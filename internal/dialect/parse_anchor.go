package dialect

import (
	"encoding/json"
	"fmt"

	"github.com/solores-go/solores/internal/idlmodel"
)

// rawAnchorIdl is the top-level Anchor document shape,
// grounded on the original tool's AnchorIdl struct: every section but
// name/version is optional and independently absent.
type rawAnchorIdl struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Metadata *struct {
		Address string `json:"address"`
	} `json:"metadata"`
	Accounts     []rawNamedType        `json:"accounts"`
	Types        []rawNamedType        `json:"types"`
	Instructions []rawAnchorInstruction `json:"instructions"`
	Errors       []rawError            `json:"errors"`
	Events       []rawAnchorEvent      `json:"events"`
}

type rawAnchorInstruction struct {
	Name     string         `json:"name"`
	Accounts []rawIxAccount `json:"accounts"`
	Args     []rawField     `json:"args"`
}

type rawAnchorEvent struct {
	Name   string     `json:"name"`
	Fields []rawField `json:"fields"`
}

func parseAnchor(data []byte) (*AST, error) {
	var raw rawAnchorIdl
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("anchor idl: %w", err)
	}

	ast := &AST{
		Dialect: Anchor,
		Program: idlmodel.Program{Name: raw.Name, Version: raw.Version},
	}
	if raw.Metadata != nil {
		ast.Program.Address = raw.Metadata.Address
	}

	for _, a := range raw.Accounts {
		td, err := a.toTypedef()
		if err != nil {
			return nil, err
		}
		ast.Accounts = append(ast.Accounts, idlmodel.Account{Typedef: td})
	}

	for _, t := range raw.Types {
		td, err := t.toTypedef()
		if err != nil {
			return nil, err
		}
		ast.Types = append(ast.Types, td)
	}

	for _, ix := range raw.Instructions {
		accounts := make([]idlmodel.IxAccount, len(ix.Accounts))
		for i, a := range ix.Accounts {
			accounts[i] = a.toIxAccount()
		}
		ast.Instructions = append(ast.Instructions, idlmodel.Instruction{
			Name:     ix.Name,
			Accounts: accounts,
			Args:     parseFields(ix.Args),
		})
	}

	for _, e := range raw.Errors {
		ast.Errors = append(ast.Errors, e.toErrorVariant())
	}

	for _, ev := range raw.Events {
		ast.Events = append(ast.Events, idlmodel.Event{
			Name:   ev.Name,
			Fields: parseFields(ev.Fields),
		})
	}

	return ast, nil
}
