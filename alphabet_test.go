package wordpool

import (
	"testing"
)

func TestLetterIndex(t *testing.T) {
	for i := 0; i < AlphabetSize; i++ {
		c := IndexLetter(i)
		if got := LetterIndex(c); got != i {
			t.Errorf("LetterIndex(%q) = %d, expected %d", c, got, i)
		}
	}

	if LetterIndex('\n') != Terminator || LetterIndex('\r') != Terminator {
		t.Errorf("line terminators should map to Terminator")
	}
}

func TestLetterIndexPanics(t *testing.T) {
	for _, c := range []byte{'A', '0', ' ', '{', '`', 0xff} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("LetterIndex(%q) did not panic", c)
				}
			}()
			LetterIndex(c)
		}()
	}
}

func TestChildTerminator(t *testing.T) {
	root := build([]string{"a"})
	if root.Child('a') == nil {
		t.Errorf("Child('a') = nil, expected a node")
	}
	if root.Child('b') != nil {
		t.Errorf("Child('b') should be nil")
	}
	for _, c := range []byte{'\n', '\r'} {
		if got := root.Child(c); got != nil {
			t.Errorf("Child(%q) = %v, expected nil", c, got)
		}
	}
}

func TestTrimTerminators(t *testing.T) {
	tests := []struct {
		input  string
		output string
	}{
		{input: "", output: ""},
		{input: "word", output: "word"},
		{input: "word\n", output: "word"},
		{input: "word\r\n", output: "word"},
		{input: "\r\n", output: ""},
		{input: "two\nlines", output: "two\nlines"},
	}

	for _, tt := range tests {
		if got := TrimTerminators(tt.input); got != tt.output {
			t.Errorf("TrimTerminators(%q) = %q, expected %q", tt.input, got, tt.output)
		}
	}
}

func TestSuffixesOutOfOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("suffixes accepted a word from the wrong group")
		}
	}()
	suffixes([]string{"cat", "dog"}, 'c')
}

func TestPartitions(t *testing.T) {
	terminal, parts := partitions([]string{"", "a", "ab", "b", "d"})
	if !terminal {
		t.Errorf("expected a terminal node")
	}

	want := []partition{
		{letter: 'd', start: 4, end: 5},
		{letter: 'b', start: 3, end: 4},
		{letter: 'a', start: 1, end: 3},
	}
	if len(parts) != len(want) {
		t.Fatalf("partitions = %v, expected %v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("partition %d = %v, expected %v", i, parts[i], want[i])
		}
	}
}
