package dedupe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type acct struct {
	name string
	mut  bool
}

func TestResolve(t *testing.T) {
	items := []acct{
		{name: "a", mut: true},
		{name: "b", mut: false},
		{name: "a", mut: false},
	}
	res := Resolve(items, func(a acct) string { return a.name })
	require.Len(t, res.Unique, 2)
	require.Equal(t, "a", res.Unique[0].name)
	require.Equal(t, "b", res.Unique[1].name)
	require.Len(t, res.Duplicates, 1)
	require.Equal(t, "a", res.Duplicates[0].name)
}

func TestResolveIdempotent(t *testing.T) {
	items := []acct{{name: "a"}, {name: "b"}, {name: "a"}}
	first := Resolve(items, func(a acct) string { return a.name })
	second := Resolve(first.Unique, func(a acct) string { return a.name })
	require.Empty(t, second.Duplicates)
	require.Equal(t, first.Unique, second.Unique)
}

func TestResolveEmpty(t *testing.T) {
	res := Resolve([]acct{}, func(a acct) string { return a.name })
	require.Empty(t, res.Unique)
	require.Empty(t, res.Duplicates)
}
