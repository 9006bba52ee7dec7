package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/abtree"
	"github.com/npillmayer/abtree/formatter"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "build a small tree, update a value and insert a range",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	tree := abtree.Of(7, 1, 8, 0)
	printValues(stdout, tree)

	tree.Set(1, -1)
	if _, err := tree.InsertSliceAt(2, []int{10, 16}); err != nil {
		return err
	}
	printValues(stdout, tree)

	fw := formatter.NewConsoleFixedWidthFormat[int](nil, nil)
	if err := fw.Fprint(tree, stdout, formatter.ConfigFromTerminal()); err != nil {
		return err
	}
	return writeDot(tree, strconv.Itoa)
}

func printValues[T any](w io.Writer, tree *abtree.Tree[T]) {
	fmt.Fprint(w, "ab-tree = { ")
	for _, v := range tree.All() {
		fmt.Fprintf(w, "%v, ", v)
	}
	fmt.Fprintln(w, "};")
}

// writeDot exports the tree structure if the --dot flag is set.
func writeDot[T any](tree *abtree.Tree[T], label func(T) string) error {
	if dotFile == "" {
		return nil
	}
	f, err := os.Create(dotFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return abtree.Tree2Dot(tree, f, label)
}
