package wordpool

import (
	"fmt"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ProgressFn is told how many of the total distinct words have been placed in
// the tree. It may be called from several goroutines at once.
type ProgressFn = func(done, total int)

// Option configures New.
type Option func(*options)

type options struct {
	parallelism int
	progress    ProgressFn
}

// WithParallelism builds up to n of the root's letter partitions concurrently.
// Values below 2 build sequentially.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithProgress registers fn to be called each time a letter partition under
// the root is finished.
func WithProgress(fn ProgressFn) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// partition is the range of a sorted slice whose words begin with letter.
type partition struct {
	letter     byte
	start, end int
}

// partitions splits words, which must be sorted and deduplicated, by first
// letter. It reports whether words[0] is the empty string, and returns the
// letter ranges from 'z' down to 'a'.
func partitions(words []string) (terminal bool, parts []partition) {
	if len(words) == 0 {
		return false, nil
	}
	terminal = words[0] == ""

	end := len(words)
	if words[end-1] == "" {
		end--
	}

	for c := byte('z'); c >= 'a' && end > 0; c-- {
		// the one-letter string c sorts exactly where the c-group begins
		start := sort.SearchStrings(words[:end], string(c))
		if start >= end {
			continue
		}
		parts = append(parts, partition{letter: c, start: start, end: end})
		end = start
	}
	return terminal, parts
}

// suffixes strips letter from the front of every word in words. A word that
// does not begin with letter means the input was not sorted.
func suffixes(words []string, letter byte) []string {
	out := make([]string, len(words))
	for i, w := range words {
		if len(w) == 0 || w[0] != letter {
			panic(fmt.Sprintf("wordpool: %q is out of order under letter %q", w, letter))
		}
		out[i] = w[1:]
	}
	return out
}

// build returns the node for words, a sorted and deduplicated set of suffixes.
func build(words []string) *Node {
	terminal, parts := partitions(words)
	node := &Node{terminal: terminal}
	for _, p := range parts {
		node.children[p.letter-'a'] = build(suffixes(words[p.start:p.end], p.letter))
	}
	return node
}

// buildRoot builds the root's partitions, in parallel when asked to, and
// reports progress as each one completes. Children are assigned before
// Wait returns, so nothing is published half built.
func buildRoot(words []string, o *options) *Node {
	terminal, parts := partitions(words)
	root := &Node{terminal: terminal}

	var done atomic.Int64
	if terminal {
		done.Add(1)
	}
	finish := func(p partition) {
		n := done.Add(int64(p.end - p.start))
		if o.progress != nil {
			o.progress(int(n), len(words))
		}
	}

	if o.parallelism < 2 || len(parts) < 2 {
		for _, p := range parts {
			root.children[p.letter-'a'] = build(suffixes(words[p.start:p.end], p.letter))
			finish(p)
		}
		return root
	}

	var g errgroup.Group
	g.SetLimit(o.parallelism)
	for _, p := range parts {
		g.Go(func() error {
			// each goroutine owns a distinct slot
			root.children[p.letter-'a'] = build(suffixes(words[p.start:p.end], p.letter))
			finish(p)
			return nil
		})
	}
	_ = g.Wait()
	return root
}
