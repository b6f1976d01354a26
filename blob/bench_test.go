package blob_test

import (
	"testing"

	"github.com/katalvlaran/wang/blob"
)

// BenchmarkGenerate fills a 128×128 map per iteration.
func BenchmarkGenerate(b *testing.B) {
	const side = 128
	b.ReportAllocs()
	b.SetBytes(int64(side * side))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m, _ := blob.New(side, side, int64(i))
		_ = m.Generate()
	}
}
