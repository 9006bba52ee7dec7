// Command abtdemo demonstrates AB-trees: it runs a small scripted demo,
// prints shape statistics of generated trees and loads text files as trees
// of lines.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dotFile string
)

var rootCmd = &cobra.Command{
	Use:   "abtdemo [command] (flags)",
	Short: "AB-tree demonstration and introspection tool",
	Long:  ``,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.CoreTracer = gologadapter.New()
		level := tracing.LevelInfo
		if verbose {
			level = tracing.LevelDebug
		}
		gtrace.CoreTracer.SetTraceLevel(level)
		tracing.Select("abtree").SetTraceLevel(level)
	},
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		demoCmd,
		shapeCmd,
		loadCmd,
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug tracing")
	rootCmd.PersistentFlags().StringVar(
		&dotFile, "dot", "", "write the tree structure in Graphviz DOT format to this file")
	shapeCmd.Flags().IntVarP(
		&shapeConfig.count, "num", "n", shapeConfig.count, "number of values to insert")
	shapeCmd.Flags().Int64Var(
		&shapeConfig.seed, "seed", shapeConfig.seed, "seed for random insertion positions")
	shapeCmd.Flags().StringVar(
		&shapeConfig.mode, "mode", shapeConfig.mode, "insertion mode: back, front or random")
	shapeCmd.Flags().BoolVar(
		&shapeConfig.levels, "levels", false, "print the number of nodes per level")
	loadCmd.Flags().Int64Var(
		&loadConfig.fragSize, "fragment", 0, "fragment size for reading (0 selects a default)")
	loadCmd.Flags().StringVar(
		&loadConfig.pattern, "find", "", "regular expression to search for")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
