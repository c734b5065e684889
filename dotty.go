package smallvec

import (
	"fmt"
	"io"
	"strings"
)

// Vector2Dot outputs the slot layout of a vector in Graphviz DOT format
// (for debugging purposes).
//
// Occupied slots are filled, free slots of the current buffer are left blank.
// Storage mode is shown by the colour of the header node.
func Vector2Dot[T any, A any, PA Storage[T, A]](v *Vector[T, A, PA], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	mode, fill := "inline", "#a3d7e4"
	if !v.IsInline() {
		mode, fill = "heap", "#FFBB88"
	}
	header := fmt.Sprintf("%s\\nsize %d / cap %d\\nstatic %d", mode, v.Size(), v.Capacity(), v.StaticCapacity())
	fmt.Fprintf(w, "\"hdr\" [label=\"%s\",shape=box,style=filled,fillcolor=\"%s\"];\n", header, fill)
	var slots []string
	data := v.Data()
	for i := 0; i < v.Capacity(); i++ {
		if i < len(data) {
			slots = append(slots, fmt.Sprintf("<s%d> %s", i, dotEscape(fmt.Sprint(data[i]))))
		} else {
			slots = append(slots, fmt.Sprintf("<s%d> ", i))
		}
	}
	fmt.Fprintf(w, "\"buf\" [label=\"%s\",shape=record];\n", strings.Join(slots, "|"))
	io.WriteString(w, "\"hdr\" -> \"buf\";\n")
	io.WriteString(w, "}\n")
}

func dotEscape(s string) string {
	r := strings.NewReplacer(`"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`)
	return r.Replace(s)
}
