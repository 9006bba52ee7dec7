package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/abtree"
	"github.com/npillmayer/abtree/metrics"
	"github.com/npillmayer/abtree/textfile"
	"github.com/spf13/cobra"
)

var loadConfig struct {
	fragSize int64
	pattern  string
}

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "load a text file as a tree of lines",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	cfg := abtree.Config[string]{Allocator: abtree.NewFreeListAllocator[string](0)}
	lines, err := textfile.LoadWithContext(context.Background(), args[0], cfg, loadConfig.fragSize)
	if err != nil {
		return err
	}
	words, err := metrics.Count(lines, 0, lines.Len(), metrics.Words())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d lines, %d words\n", args[0], lines.Len(), words)
	if loadConfig.pattern != "" {
		m, err := metrics.Pattern(loadConfig.pattern)
		if err != nil {
			return err
		}
		locs, err := metrics.Find(lines, 0, lines.Len(), m)
		if err != nil {
			return err
		}
		for _, loc := range locs {
			fmt.Fprintf(stdout, "%5d: %s\n", loc.Index+1, lines.Get(loc.Index))
		}
	}
	metrics.Measure(lines).WriteTable(stdout)
	return writeDot(lines, func(s string) string {
		if r := []rune(s); len(r) > 20 {
			return strings.TrimSpace(string(r[:20])) + "…"
		}
		return s
	})
}
