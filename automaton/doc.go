// Package automaton compiles motif-avoidance automata.
//
// Given a motif over the IUPAC alphabet, Build returns a deterministic
// echo transducer (machine.Machine) that copies a DNA sequence base by
// base and has no transition that would complete an occurrence of the
// motif on the forward strand or, unless WithForwardOnly(true), on the
// reverse-complement strand. Unless WithAllowRepeats(true), it also has
// no transition repeating the previous base.
//
// Pipeline
//
//  1. Parse and validate the motif (configuration errors surface here,
//     before any exploration).
//  2. Explore the reachable progress tuples breadth-first from the
//     initial tuple; each distinct tuple becomes exactly one state, and
//     transitions are generated in A, C, G, T order.
//  3. Attach the terminal "end" state and an unconditional end edge from
//     every state.
//  4. Walk backward from the terminal (bfs.WithReverse) and keep only the
//     states, and the transitions between states, that can reach it.
//
// With the construction above every state has its own end edge, so step 4
// keeps everything. It still runs on every build.
//
// Concurrency
//
//	A build owns its queue, index map and graph exclusively; the alphabet
//	tables are read-only. Independent builds may run in parallel, and
//	BuildAll does exactly that with an errgroup.
//
// Errors
//
//	ErrConfig wraps every configuration failure; the underlying cause is
//	one of iupac.ErrEmptyMotif, iupac.ErrInvalidCode or
//	progress.ErrMotifTooLong and can be tested with errors.Is.
package automaton
