package automaton_test

import (
	"testing"

	"github.com/katalvlaran/motifguard/automaton"
)

// BenchmarkBuild_EcoRI measures a typical six-cutter.
func BenchmarkBuild_EcoRI(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = automaton.Build("GAATTC")
	}
}

// BenchmarkBuild_Degenerate measures a long interrupted palindrome.
func BenchmarkBuild_Degenerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = automaton.Build("GCNNNNNNNGC")
	}
}
