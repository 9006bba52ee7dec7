package textfile

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/guiguan/caster"
	"github.com/npillmayer/abtree"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// subscriberCapacity is the number of fragments buffered between the reading
// goroutine and the tree builder.
const subscriberCapacity = 16

// fragment is a piece of a text-file's content, as broadcast by the reading
// goroutine.
type fragment struct {
	content string // content of the fragment
	pos     int64  // start position of this fragment within the file
	err     error  // I/O error, terminates loading
	last    bool   // no more fragments will follow
}

// textFile represents an OS file which will be loaded as a tree of lines.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and loads it as a tree of
// lines, using the default tree configuration. Clients may indicate a
// recommended fragment length for reading. It may be 0, letting Load use
// sensible defaults.
func Load(name string, fragSize int64) (*abtree.Tree[string], error) {
	return LoadWithContext(context.Background(), name, abtree.Config[string]{}, fragSize)
}

// LoadWithContext reads a text file into a new tree created with cfg. Line
// terminators are stripped. Loading stops early if ctx is cancelled.
func LoadWithContext(ctx context.Context, name string, cfg abtree.Config[string], fragSize int64) (*abtree.Tree[string], error) {
	tree, err := abtree.New(cfg)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	fragments, ok := tf.cast.Sub(ctx, subscriberCapacity)
	if !ok {
		return nil, errors.Newf("textfile: cannot subscribe to fragments of %s", name)
	}
	reading := make(chan struct{})
	go func() {
		defer close(reading)
		readFragments(ctx, tf, fragSize)
	}()
	err = buildLines(ctx, tree, fragments)
	if err != nil {
		// The broadcaster blocks on undelivered fragments and ignores ctx
		// while doing so. Drain the subscription until it is closed.
		cancel()
		for range fragments {
		}
	}
	<-reading
	if err != nil {
		tree.Clear()
		return nil, errors.Wrapf(err, "textfile: loading %s", name)
	}
	tracer().Debugf("textfile: loaded %d lines from %s", tree.Len(), name)
	return tree, nil
}

// fragmentSize picks a fragment length depending on the size of the file.
func fragmentSize(size, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 64:
		fragSize = max(size, 1)
	case size < 1024:
		fragSize = 64
	case size < tenKb:
		fragSize = 256
	case size < hundredKb:
		fragSize = 512
	case size < oneMb:
		fragSize = twoKb
	default:
		fragSize = sixKb
	}
	return fragSize
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, errors.Newf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

// readFragments reads the file front to back and publishes every fragment.
// The final message carries last=true.
func readFragments(ctx context.Context, tf *textFile, fragSize int64) {
	size := tf.info.Size()
	for pos := int64(0); pos < size; pos += fragSize {
		if ctx.Err() != nil {
			return
		}
		buf := make([]byte, min(fragSize, size-pos))
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			tf.cast.Pub(fragment{pos: pos, err: errors.Wrap(err, "error loading text fragment"), last: true})
			return
		} else if cnt < len(buf) {
			tf.cast.Pub(fragment{pos: pos, err: errors.New("not all bytes loaded for text fragment"), last: true})
			return
		}
		if !tf.cast.Pub(fragment{content: string(buf), pos: pos}) {
			return // broadcaster has been closed
		}
	}
	tf.cast.Pub(fragment{pos: size, last: true})
}

// buildLines consumes fragments and appends complete lines to tree.
func buildLines(ctx context.Context, tree *abtree.Tree[string], fragments <-chan interface{}) error {
	var carry strings.Builder
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-fragments:
			if !ok {
				return errors.New("fragment broadcast ended prematurely")
			}
			frag := msg.(fragment)
			if frag.err != nil {
				return frag.err
			}
			content := frag.content
			for {
				i := strings.IndexByte(content, '\n')
				if i < 0 {
					break
				}
				carry.WriteString(content[:i])
				if err := tree.PushBack(strings.TrimSuffix(carry.String(), "\r")); err != nil {
					return err
				}
				carry.Reset()
				content = content[i+1:]
			}
			carry.WriteString(content)
			if frag.last {
				if carry.Len() > 0 {
					return tree.PushBack(strings.TrimSuffix(carry.String(), "\r"))
				}
				return nil
			}
		}
	}
}
