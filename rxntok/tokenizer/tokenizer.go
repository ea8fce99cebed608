package tokenizer

import (
	"context"
	"fmt"
	"strings"

	internal "github.com/chemfoundry/rxntok/rxntok"
	"github.com/chemfoundry/rxntok/rxntok/config"
	"github.com/chemfoundry/rxntok/rxntok/segment"
	"github.com/chemfoundry/rxntok/rxntok/vocab"

	"github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog"
)

// Tokenizer converts reaction text to model-ready token ids and back
type Tokenizer interface {
	Encode(text string) []int
	EncodeBatch(texts []string) [][]int
	Decode(ids []int) string
	DecodeSkipSpecial(ids []int) string
	GreedyTokenize(text string) []string
	VocabSize() int
	GetSpecialTokenID(token string) int
	IsReactionClass(text string) bool
}

// ReactionTokenizer is the vocabulary-driven tokenizer for reaction SMILES
// strings optionally paired with reaction-class labels ("CCO>>CCCBr 2.12.13").
// It holds no mutable state after construction and is safe for concurrent use.
type ReactionTokenizer struct {
	vocab        *vocab.Table
	greedy       *greedyIndex
	batchWorkers int
	logger       zerolog.Logger
}

var _ Tokenizer = (*ReactionTokenizer)(nil)

// New builds a ReactionTokenizer from a token->id mapping.
func New(tokenToID map[string]int) (*ReactionTokenizer, error) {
	table, err := vocab.New(tokenToID)
	if err != nil {
		return nil, fmt.Errorf("failed to build vocabulary table: %w", err)
	}

	assertHandler := assert.NewAssertHandler()
	assertHandler.Assert(context.Background(), table.Size() == len(tokenToID),
		"vocabulary table must retain every supplied entry")

	batchWorkers := config.AppConfig.Tokenizer.BatchWorkers
	if batchWorkers <= 0 {
		batchWorkers = internal.DefaultBatchWorkers
	}

	t := &ReactionTokenizer{
		vocab:        table,
		greedy:       newGreedyIndex(table),
		batchWorkers: batchWorkers,
		logger:       internal.GetLogger(),
	}

	t.logger.Debug().
		Int("vocab_size", table.Size()).
		Int("batch_workers", batchWorkers).
		Msg("reaction tokenizer initialized")

	return t, nil
}

// NewFromFile builds a ReactionTokenizer from a JSON vocabulary file.
func NewFromFile(vocabPath string) (*ReactionTokenizer, error) {
	tokenToID, err := vocab.LoadFile(vocabPath)
	if err != nil {
		return nil, err
	}
	return New(tokenToID)
}

// Encode tokenizes text into ids. Whitespace separates pieces; each piece is
// either a reaction class, a verbatim vocabulary entry (special tokens), or a
// SMILES string segmented into atomic tokens. Unknown tokens map to the
// unknown id, so Encode never fails.
func (t *ReactionTokenizer) Encode(text string) []int {
	pieces := strings.Fields(text)

	tokens := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		switch {
		case segment.IsReactionClass(piece):
			tokens = append(tokens, piece)
		case t.vocab.Contains(piece):
			tokens = append(tokens, piece)
		default:
			tokens = append(tokens, segment.SplitSMILES(piece)...)
		}
	}

	ids := make([]int, len(tokens))
	for i, token := range tokens {
		ids[i] = t.vocab.ID(token)
	}
	return ids
}

// Decode maps ids back to text. Pad ids are dropped entirely; unknown ids
// decode to the unknown-token literal. Spacing is reconstructed, not
// remembered: reaction classes and bracketed tokens get a separating space,
// atomic SMILES fragments abut.
func (t *ReactionTokenizer) Decode(ids []int) string {
	return t.decode(ids, false)
}

// DecodeSkipSpecial decodes like Decode but drops every special token, not
// just padding.
func (t *ReactionTokenizer) DecodeSkipSpecial(ids []int) string {
	return t.decode(ids, true)
}

func (t *ReactionTokenizer) decode(ids []int, skipSpecial bool) string {
	if len(ids) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == t.vocab.PadID() {
			continue
		}
		if skipSpecial && t.vocab.IsSpecialID(id) {
			continue
		}
		tokens = append(tokens, t.vocab.Token(id))
	}
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 && needsSpace(tokens[i-1], token) {
			sb.WriteByte(' ')
		}
		sb.WriteString(token)
	}
	return sb.String()
}

// needsSpace decides whether cur gets a leading space after prev: reaction
// classes and bracketed tokens are visually separated, plain fragments abut.
func needsSpace(prev, cur string) bool {
	return segment.IsReactionClass(cur) ||
		segment.IsReactionClass(prev) ||
		strings.HasPrefix(cur, "[") ||
		strings.HasPrefix(prev, "[")
}

// VocabSize returns the number of entries in the vocabulary mapping.
func (t *ReactionTokenizer) VocabSize() int {
	return t.vocab.Size()
}

// GetSpecialTokenID returns the id for token, falling back to the unknown id.
func (t *ReactionTokenizer) GetSpecialTokenID(token string) int {
	return t.vocab.ID(token)
}

// IsReactionClass reports whether text is a reaction class label.
func (t *ReactionTokenizer) IsReactionClass(text string) bool {
	return segment.IsReactionClass(text)
}

// Vocab exposes the underlying vocabulary table.
func (t *ReactionTokenizer) Vocab() *vocab.Table {
	return t.vocab
}

func (t *ReactionTokenizer) PadTokenID() int     { return t.vocab.PadID() }
func (t *ReactionTokenizer) MaskTokenID() int    { return t.vocab.MaskID() }
func (t *ReactionTokenizer) UnkTokenID() int     { return t.vocab.UnkID() }
func (t *ReactionTokenizer) EOSTokenID() int     { return t.vocab.EOSID() }
func (t *ReactionTokenizer) NoAgentTokenID() int { return t.vocab.NoAgentID() }
