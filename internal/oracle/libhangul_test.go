//go:build cgo && libhangul

package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibhangulBenchmarkSet(t *testing.T) {
	err := With(OpenLibhangul, "2", func(o Oracle) error {
		want := []string{"ㅁ", "마", "만"}
		for i, ch := range "aks" {
			require.True(t, o.Process(ch))
			require.Equal(t, want[i], string(o.PreeditString()))
		}
		require.Equal(t, "만", string(o.Flush()))
		require.Empty(t, o.PreeditString())
		return nil
	})
	require.NoError(t, err)
}

func TestLibhangulCommitsOnNonJamo(t *testing.T) {
	err := With(OpenLibhangul, "2", func(o Oracle) error {
		o.Process('a')
		o.Process('k')
		require.False(t, o.Process(' '))
		require.Equal(t, "마", string(o.CommitString())+string(o.Flush()))
		return nil
	})
	require.NoError(t, err)
}
