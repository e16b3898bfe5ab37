package benchmark

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kmerkv/kmerkv"
	"github.com/kmerkv/kmerkv/codec"
	"github.com/kmerkv/kmerkv/model"
)

var cdc *codec.KmerCodec

func init() {
	var err error
	cdc, err = codec.NewKmerCodec(21, 8)
	if err != nil {
		panic(err)
	}
}

// Benchmark_DecodeWithValue .
func Benchmark_DecodeWithValue(b *testing.B) {
	line := []byte(strings.Repeat("ACGTACG", 3) + " 42")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cdc.DecodeWithValue(line); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_SplitCombine .
func Benchmark_SplitCombine(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		grp, keyInGroup := cdc.Split(model.Key(i))
		if cdc.Combine(grp, keyInGroup) != model.Key(i) {
			b.Fatal("round trip mismatch")
		}
	}
}

// Benchmark_Write .
func Benchmark_Write(b *testing.B) {
	writer, err := kmerkv.NewBinaryKmerWriter(filepath.Join(b.TempDir(), "bench.kmr"))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := writer.Write(model.Record{Key: model.Key(i), Value: 1}); err != nil {
			b.Fatal(err)
		}
	}

	b.StopTimer()
	if err := writer.Finish(); err != nil {
		b.Fatal(err)
	}
}
