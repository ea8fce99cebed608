package tokenizer

import (
	radix "github.com/armon/go-radix"

	"github.com/chemfoundry/rxntok/rxntok/vocab"
)

// greedyIndex holds the vocabulary keys in a radix tree so the legacy greedy
// tokenizer can resolve its longest-match-first lookup in one walk instead of
// probing every substring length.
type greedyIndex struct {
	tree *radix.Tree
}

func newGreedyIndex(table *vocab.Table) *greedyIndex {
	tree := radix.New()
	table.Tokens(func(token string, id int) {
		// The scan below always consumes at least one byte; an empty key
		// would stall it.
		if token == "" {
			return
		}
		tree.Insert(token, id)
	})
	return &greedyIndex{tree: tree}
}

// GreedyTokenize is the legacy longest-match-first segmentation, kept for
// compatibility with older reaction datasets. At each position the longest
// vocabulary entry prefixing the remaining text wins; a miss emits the
// unknown-token literal and advances one byte. Not used by Encode or Decode,
// which segment with the SMILES pattern instead.
func (t *ReactionTokenizer) GreedyTokenize(text string) []string {
	tokens := make([]string, 0, len(text))
	for i := 0; i < len(text); {
		match, _, ok := t.greedy.tree.LongestPrefix(text[i:])
		if ok {
			tokens = append(tokens, match)
			i += len(match)
		} else {
			tokens = append(tokens, vocab.UnkToken)
			i++
		}
	}
	return tokens
}
