package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/abtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for console output.
type Config struct {
	LineWidth int            // maximum width of a line in fixed-width positions
	Indent    int            // indentation per level, defaults to 2
	Context   *uax11.Context // context for measuring labels, defaults to uax11.LatinContext
}

// ConsoleFixedWidth outputs tree shapes to a console with a fixed width font.
type ConsoleFixedWidth[T any] struct {
	label  func(T) string
	colors map[abtree.NodeState]*color.Color
}

// NewConsoleFixedWidthFormat creates a new formatter for consoles with a
// fixed width font.
//
// label renders a value; if it is nil, values are printed with %v.
// colors is a map from arrival states to colors, used for display. It may
// contain just a subset of the states; nodes with other states are printed
// without color.
func NewConsoleFixedWidthFormat[T any](label func(T) string, colors map[abtree.NodeState]*color.Color) *ConsoleFixedWidth[T] {
	fw := &ConsoleFixedWidth[T]{label: label, colors: colors}
	if fw.label == nil {
		fw.label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	if fw.colors == nil {
		fw.colors = makeDefaultPalette()
	}
	return fw
}

func makeDefaultPalette() map[abtree.NodeState]*color.Color {
	palette := map[abtree.NodeState]*color.Color{
		abtree.StateRoot:    color.New(color.FgRed, color.Bold),
		abtree.StateLeft:    color.New(color.FgBlue),
		abtree.StateRight:   color.New(color.FgGreen),
		abtree.StateSibling: color.New(color.FgGreen),
	}
	return palette
}

// Print outputs the shape of tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func (fw *ConsoleFixedWidth[T]) Print(tree *abtree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return fw.Fprint(tree, os.Stdout, config)
}

// Fprint outputs the shape of tree to w.
func (fw *ConsoleFixedWidth[T]) Fprint(tree *abtree.Tree[T], w io.Writer, config *Config) error {
	config = normalize(config)
	for it := range tree.Structure() {
		if it.State() == abtree.StateParent {
			continue
		}
		indent := it.Depth() * config.Indent
		prefix := strings.Repeat(" ", indent) + sideMarker(it.State()) + " "
		suffix := fmt.Sprintf(" (%d)", it.Size())
		room := config.LineWidth - indent - 2 - len(suffix)
		label := truncate(fw.label(it.Value()), room, config.Context)
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		if c, ok := fw.colors[it.State()]; ok {
			if _, err := c.Fprint(w, label); err != nil {
				return err
			}
		} else if _, err := io.WriteString(w, label); err != nil {
			return err
		}
		if _, err := io.WriteString(w, suffix+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// sideMarker tells on which side of its parent a node hangs. A forward walk
// arrives at right children either by descending or as the sibling of a left
// child.
func sideMarker(state abtree.NodeState) string {
	switch state {
	case abtree.StateRoot:
		return "*"
	case abtree.StateLeft:
		return "L"
	}
	return "R"
}

func normalize(config *Config) *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 65
	}
	if c.Indent <= 0 {
		c.Indent = 2
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

var setupGraphemes sync.Once

// Width returns the number of fixed-width positions s occupies.
func Width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate cuts s down to at most width positions, marking the cut with an
// ellipsis.
func truncate(s string, width int, context *uax11.Context) string {
	if Width(s, context) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && Width(string(runes)+"…", context) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			config.LineWidth = 65
		} else if w > 65 {
			config.LineWidth = w - 10
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}
