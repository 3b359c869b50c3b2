package dialect

import (
	"encoding/json"
	"fmt"

	"github.com/solores-go/solores/internal/idlmodel"
)

// rawShankIdl is the top-level Shank document shape, grounded on the
// original tool's ShankIdl struct. Shank accounts reuse the same
// rawNamedType shape as types (original: `Vec<NamedType>` for both).
type rawShankIdl struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Metadata struct {
		Address string `json:"address"`
		Origin  string `json:"origin"`
	} `json:"metadata"`
	Accounts     []rawNamedType        `json:"accounts"`
	Types        []rawNamedType        `json:"types"`
	Instructions []rawShankInstruction `json:"instructions"`
	Errors       []rawError            `json:"errors"`
}

type rawShankInstruction struct {
	Name        string          `json:"name"`
	Accounts    []rawIxAccount  `json:"accounts"`
	Args        []rawField      `json:"args"`
	Discriminant rawDiscriminant `json:"discriminant"`
}

// rawDiscriminant is Shank's explicit single-byte instruction tag
// (original tool: `Discriminant{r#type: String, value: u8}`).
type rawDiscriminant struct {
	Type  string `json:"type"`
	Value uint8  `json:"value"`
}

func parseShank(data []byte) (*AST, error) {
	var raw rawShankIdl
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("shank idl: %w", err)
	}

	ast := &AST{
		Dialect: Shank,
		Program: idlmodel.Program{Name: raw.Name, Version: raw.Version, Address: raw.Metadata.Address},
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
		value := ix.Discriminant.Value
		ast.Instructions = append(ast.Instructions, idlmodel.Instruction{
			Name:              ix.Name,
			Accounts:          accounts,
			Args:              parseFields(ix.Args),
			ShankDiscriminant: &value,
		})
	}

	for _, e := range raw.Errors {
		ast.Errors = append(ast.Errors, e.toErrorVariant())
	}

	return ast, nil
}
