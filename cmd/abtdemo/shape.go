package main

import (
	"math/rand"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/abtree"
	"github.com/npillmayer/abtree/metrics"
	"github.com/spf13/cobra"
)

var shapeConfig = struct {
	count  int
	seed   int64
	mode   string
	levels bool
}{
	count: 10000,
	seed:  1449168817,
	mode:  "random",
}

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "grow a tree and print its shape statistics",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE:  runShape,
}

func runShape(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	tree, err := abtree.New(abtree.Config[int]{
		Allocator: abtree.NewArenaAllocator[int](0, 0),
	})
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(shapeConfig.seed))
	for i := 0; i < shapeConfig.count; i++ {
		switch shapeConfig.mode {
		case "back":
			err = tree.PushBack(i)
		case "front":
			err = tree.PushFront(i)
		case "random":
			_, err = tree.InsertAt(rng.Intn(tree.Len()+1), i)
		default:
			return errors.Newf("unknown insertion mode %q", shapeConfig.mode)
		}
		if err != nil {
			return err
		}
	}
	if err = tree.Check(); err != nil {
		return err
	}
	shape := metrics.Measure(tree)
	shape.WriteTable(stdout)
	if shapeConfig.levels {
		shape.WriteLevels(stdout)
	}
	return writeDot(tree, strconv.Itoa)
}
