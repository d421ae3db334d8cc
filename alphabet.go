package wordpool

import (
	"fmt"
	"strings"
)

// AlphabetSize is the number of letters a node can branch on.
const AlphabetSize = 26

// Terminator is the index LetterIndex reports for a line terminator. It is only
// meaningful while cleaning raw lines and never names a branch of the tree.
const Terminator = AlphabetSize

// LetterIndex maps 'a'..'z' to 0..25 and '\r' or '\n' to Terminator.
//
// Any other character is a programming error: input must be checked with
// Validate before it gets here, so LetterIndex panics rather than guess.
func LetterIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c == '\n' || c == '\r':
		return Terminator
	}
	panic(fmt.Sprintf("wordpool: character %q is not in the alphabet", c))
}

// IndexLetter is the inverse of LetterIndex for 0..25.
func IndexLetter(i int) byte {
	if i < 0 || i >= AlphabetSize {
		panic(fmt.Sprintf("wordpool: letter index %d out of range", i))
	}
	return byte('a' + i)
}

// Validate returns an *InvalidCharacterError for the first character of s that
// is not a lowercase letter a to z.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return newInvalidCharacter(s, i)
		}
	}
	return nil
}

// TrimTerminators strips trailing carriage returns and line feeds.
func TrimTerminators(line string) string {
	return strings.TrimRight(line, "\r\n")
}
