/*
Package wordpool finds every dictionary word that can be spelled from a pool of
letters, the way anagram and word-search games ask for it.

The dictionary is held in a 26-way prefix tree. The tree is not built by inserting
words one at a time. Instead the word list is sorted and deduplicated once, and each
node is produced by binary searching the sorted slice for the range of words that
begin with each letter, then recursing into that range with the first letter
stripped. Because sorted order is preserved at every level, no word is ever walked
down the tree more than once.

In general, to use it you create a tree with wordpool.New(), passing it the raw word
list. Words may arrive in any order and may repeat. Every word must consist of the
lowercase letters a to z only; anything else is rejected with an
*InvalidCharacterError before any node is built.

Once built, a WordTree is never modified, so it may be queried from many goroutines
at once. Solve() returns every stored word that can be spelled from a board, each
letter used at most as many times as it appears on the board:

	tree, err := wordpool.New([]string{"at", "cat", "cats"})
	if err != nil {
		log.Fatal(err)
	}
	words, err := tree.Solve("act") // [at cat]

Words() and Enumerate() walk the stored words. A Board binds a set of letters to a
tree for callers that solve the same letters repeatedly.
*/
package wordpool
