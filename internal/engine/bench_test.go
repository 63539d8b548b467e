package engine

import (
	"strings"
	"testing"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/key"
)

func benchmarkCommit(b *testing.B, count int) {
	cfg := config.Default()
	eng := New(cfg)
	unit := []key.Key{key.New(key.A, 0), key.New(key.K, 0), key.New(key.S, 0)}
	keys := make([]key.Key, 0, len(unit)*count)
	for i := 0; i < count; i++ {
		keys = append(keys, unit...)
	}
	want := strings.Repeat("만", count)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			eng.PressKey(cfg, k)
		}
		eng.ClearPreedit()
		if eng.CommitStr() != want {
			b.Fatalf("unexpected commit %q", eng.CommitStr())
		}
		eng.Reset()
	}
}

func BenchmarkInputEngineCommit5(b *testing.B)   { benchmarkCommit(b, 5) }
func BenchmarkInputEngineCommit50(b *testing.B)  { benchmarkCommit(b, 50) }
func BenchmarkInputEngineCommit500(b *testing.B) { benchmarkCommit(b, 500) }
