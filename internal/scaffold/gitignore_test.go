package scaffold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solores-go/solores/internal/scaffold"
)

func TestGitignoreContents(t *testing.T) {
	require.Equal(t, "/target\nCargo.lock\n", scaffold.Gitignore())
}
