package automaton_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/motifguard/automaton"
)

// ExampleBuild compiles the forward-only automaton for "AT" and writes
// its transition table.
func ExampleBuild() {
	m, err := automaton.Build("AT", automaton.WithForwardOnly(true), automaton.WithAllowRepeats(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = m.WriteDot(os.Stdout, "")
	// Output:
	// digraph G {
	//  0 [label="start"];
	//  1 [label="f1"];
	//  2 [label="end"];
	//
	//  0 -> 1 [headlabel="A/A"];
	//  0 -> 0 [headlabel="C/C"];
	//  0 -> 0 [headlabel="G/G"];
	//  0 -> 0 [headlabel="T/T"];
	//  0 -> 2 [headlabel="&epsilon;/&epsilon;"];
	//
	//  1 -> 1 [headlabel="A/A"];
	//  1 -> 0 [headlabel="C/C"];
	//  1 -> 0 [headlabel="G/G"];
	//  1 -> 2 [headlabel="&epsilon;/&epsilon;"];
	//
	// }
}

// ExampleBuildWithStats shows the size of an EcoRI-avoiding automaton
// that also forbids homopolymer runs.
func ExampleBuildWithStats() {
	m, st, err := automaton.BuildWithStats("GAATTC")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(st.Discovered == st.Live, m.Accepts("GACTAC"), m.Accepts("TGAATTCA"), m.Accepts("GAAC"))
	// Output:
	// true true false false
}
