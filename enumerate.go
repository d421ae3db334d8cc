package wordpool

// EnumFn is called by Enumerate for every prefix in the tree.
type EnumFn = func(prefix []byte, terminal bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this prefix or stop altogether.
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Words returns every stored word.
//
// Children are visited from 'a' to 'z' and a node's own word is appended after
// all of its children, so "cats" comes before "cat". Callers that need
// lexicographic order should sort the result.
func (t *WordTree) Words() []string {
	results := make([]string, 0, t.numWords)
	collectWords(t.root, nil, &results)
	return results
}

func collectWords(node *Node, word []byte, results *[]string) {
	l := len(word)
	word = append(word, 0)
	for i, child := range node.children {
		if child == nil {
			continue
		}
		word[l] = IndexLetter(i)
		collectWords(child, word, results)
	}

	if node.terminal {
		*results = append(*results, string(word[:l]))
	}
}

// Enumerate calls fn for every prefix in the tree in lexicographic order,
// starting with the empty prefix at the root. The prefix slice is reused
// between calls and must be copied to be kept.
func (t *WordTree) Enumerate(fn EnumFn) {
	enumerate(t.root, nil, fn)
}

func enumerate(node *Node, prefix []byte, fn EnumFn) EnumerationResult {
	result := fn(prefix, node.terminal)

	// if the function didn't say to continue, then return.
	if result != Continue {
		return result
	}

	l := len(prefix)
	prefix = append(prefix, 0)

	for i, child := range node.children {
		if child == nil {
			continue
		}
		prefix[l] = IndexLetter(i)
		if enumerate(child, prefix, fn) == Stop {
			return Stop
		}
	}

	return Continue
}
