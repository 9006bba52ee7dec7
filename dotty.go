package abtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format (for
// debugging purposes). label renders a node's value; if it is nil, values
// are printed with %v. Every node shows its value and its subtree size.
func Tree2Dot[T any](tree *Tree[T], w io.Writer, label func(T) string) error {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	for it := range tree.Structure() {
		if it.State() == StateParent {
			continue
		}
		node := it.node
		ID := ids.alloc(node)
		if it.IsLeaf() {
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\\n%d\" %s];\n", ID, dotEscape(label(node.value)), node.size, nodeDotStyles(true))
			continue
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\\n%d\" %s];\n", ID, dotEscape(label(node.value)), node.size, nodeDotStyles(false))
		for i, child := range [2]*Node[T]{node.left, node.right} {
			if child == nil {
				nilid := fmt.Sprintf("%d_nil%d", ID, i)
				fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode)
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()+edgelist.String()+"}\n"); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

const emptyNode = "[label=\"\",color=black,shape=point,width=.1]"

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=white"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
