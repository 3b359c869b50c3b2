package dialect

import (
	"encoding/json"
	"fmt"

	"github.com/solores-go/solores/internal/idlmodel"
)

// rawBincodeIdl is the top-level Bincode document shape, grounded on the
// original tool's BincodeIdl struct: no accounts or named types section at
// all, just instructions and errors (a bincode program has no Borsh
// account layout to describe).
type rawBincodeIdl struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Metadata struct {
		Address string `json:"address"`
		Origin  string `json:"origin"`
	} `json:"metadata"`
	Instructions []rawBincodeInstruction `json:"instructions"`
	Errors       []rawError              `json:"errors"`
}

type rawBincodeInstruction struct {
	Name     string         `json:"name"`
	Accounts []rawIxAccount `json:"accounts"`
	Args     []rawField     `json:"args"`
}

func parseBincode(data []byte) (*AST, error) {
	var raw rawBincodeIdl
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("bincode idl: %w", err)
	}

	ast := &AST{
		Dialect: Bincode,
		Program: idlmodel.Program{Name: raw.Name, Version: raw.Version, Address: raw.Metadata.Address},
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

	return ast, nil
}
