package segtree

import (
	"fmt"
	"io"
)

// ToDot outputs the heap layout of a tree in Graphviz DOT format (for
// debugging purposes). label formats node values; if nil, %v is used.
// Padding leaves are drawn dashed.
func (t *Tree[T]) ToDot(w io.Writer, label func(T) string) {
	writeDot(w, t.size, t.n, func(p int) string {
		return formatValue(t.agg[p], label)
	})
}

// ToDot outputs the heap layout of a lazy tree in Graphviz DOT format (for
// debugging purposes). Internal nodes show their pending action below the
// aggregate. label formats node values; if nil, %v is used.
func (t *LazyTree[T, S]) ToDot(w io.Writer, label func(T) string) {
	writeDot(w, t.size, t.n, func(p int) string {
		s := formatValue(t.agg[p], label)
		if p < t.size {
			s += fmt.Sprintf("\\n⟨%v⟩", t.pending[p])
		}
		return s
	})
}

func writeDot(w io.Writer, size, n int, label func(p int) string) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for p := 1; p < 2*size; p++ {
		isleaf := p >= size
		padding := isleaf && p-size >= n
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", p, label(p), nodeDotStyles(isleaf, padding))
		if !isleaf {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", p, 2*p)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", p, 2*p+1)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func formatValue[T any](v T, label func(T) string) string {
	if label != nil {
		return label(v)
	}
	return fmt.Sprintf("%v", v)
}

func nodeDotStyles(isleaf bool, padding bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	if padding {
		s = ",style=dashed,shape=box,color=grey"
	}
	return s
}
