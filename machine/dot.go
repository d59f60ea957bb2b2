package machine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultEmptyLabel renders empty input/output labels in Graphviz output.
const DefaultEmptyLabel = "&epsilon;"

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// WriteDot renders m as a Graphviz digraph. Each edge is labelled
// "in/out", with emptyLabel substituted for empty symbols; pass "" to
// use DefaultEmptyLabel.
func (m *Machine) WriteDot(w io.Writer, emptyLabel string) error {
	if emptyLabel == "" {
		emptyLabel = DefaultEmptyLabel
	}
	label := func(s string) string {
		if s == "" {
			return emptyLabel
		}
		return dotEscaper.Replace(s)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for i, s := range m.States {
		fmt.Fprintf(bw, " %d [label=\"%s\"];\n", i, dotEscaper.Replace(s.ID))
	}
	fmt.Fprintln(bw)
	for i, s := range m.States {
		for _, t := range s.Trans {
			fmt.Fprintf(bw, " %d -> %d [headlabel=\"%s/%s\"];\n", i, t.Dest, label(t.In), label(t.Out))
		}
		if len(s.Trans) > 0 {
			fmt.Fprintln(bw)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
