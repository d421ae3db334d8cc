package wordpool

import (
	"slices"
)

// Solve returns every stored word that can be spelled from letters, each
// letter used at most as often as it occurs in letters. Letters left over are
// fine. The board is rejected with an *InvalidCharacterError if it holds
// anything but a to z.
//
// Results come in the order they are found: branches are tried from 'a' to
// 'z' and a word is recorded after its extensions.
func (t *WordTree) Solve(letters string) ([]string, error) {
	var results []string
	err := t.SolveFunc(letters, func(word string) {
		results = append(results, word)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// SolveFunc is like Solve but hands each word to fn as it is found.
func (t *WordTree) SolveFunc(letters string, fn func(word string)) error {
	if err := Validate(letters); err != nil {
		return err
	}

	pool := []byte(letters)
	slices.Sort(pool)
	solve(t.root, pool, make([]byte, 0, len(pool)), fn)
	return nil
}

// solve walks node with pool, the sorted letters still unused, and prefix, the
// letters spent reaching node. Each descent removes exactly one occurrence of
// its letter, which is what limits a letter to its count on the board.
func solve(node *Node, pool []byte, prefix []byte, fn func(word string)) {
	for i := 0; i < len(pool); i++ {
		c := pool[i]
		// pool is sorted, so i is the first occurrence of c
		if i > 0 && pool[i-1] == c {
			continue
		}
		child := node.children[c-'a']
		if child == nil {
			continue
		}

		rest := make([]byte, 0, len(pool)-1)
		rest = append(rest, pool[:i]...)
		rest = append(rest, pool[i+1:]...)

		solve(child, rest, append(prefix, c), fn)
	}

	if node.terminal {
		fn(string(prefix))
	}
}
