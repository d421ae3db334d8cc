package wordpool

// Board is a set of playable letters bound to a dictionary.
type Board struct {
	letters string
	finder  Finder
}

// NewBoard checks letters and binds them to finder.
func NewBoard(letters string, finder Finder) (*Board, error) {
	if err := Validate(letters); err != nil {
		return nil, err
	}
	return &Board{letters: letters, finder: finder}, nil
}

// Letters returns the board as given.
func (b *Board) Letters() string {
	return b.letters
}

// Solve returns every dictionary word that can be played on the board.
func (b *Board) Solve() []string {
	// letters were validated by NewBoard
	words, _ := b.finder.Solve(b.letters)
	return words
}
