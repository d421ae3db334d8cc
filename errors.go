package wordpool

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidCharacter is wrapped by every *InvalidCharacterError.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError reports a word or board that contains something other
// than the letters a to z. Position is the byte offset of Char within Word.
type InvalidCharacterError struct {
	Word     string
	Char     rune
	Position int
}

func newInvalidCharacter(s string, pos int) *InvalidCharacterError {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return &InvalidCharacterError{Word: s, Char: r, Position: pos}
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v %q at position %d of %q", ErrInvalidCharacter, e.Char, e.Position, e.Word)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
