// Package motifguard compiles IUPAC motifs into echo transducers that
// pass through every DNA sequence avoiding the motif and reject the rest.
//
// A compiled machine consumes one base at a time (A, C, G, T), emits it
// unchanged, and can stop from any state. A sequence is rejected as soon
// as it completes an occurrence of the motif on the forward strand, or of
// its reverse complement, and optionally when it repeats a base.
//
// Packages:
//
//	iupac/           bases, degenerate codes, motifs, reverse complement
//	progress/        partial-match tuples, successor function, state IDs
//	core/            arena-backed directed graph with dense int vertices
//	bfs/, dfs/       traversals over core.Graph (forward or reversed)
//	machine/         transition tables, JSON/DOT encodings, execution, checks
//	automaton/       exploration, pruning and concurrent batch builds
//	cmd/motifguard   command-line front end
//
// Quick start:
//
//	m, err := automaton.Build("GAATTC")
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = m.WriteJSON(os.Stdout)
package motifguard
