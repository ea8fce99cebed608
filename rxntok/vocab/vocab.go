package vocab

import (
	"fmt"

	roaring "github.com/RoaringBitmap/roaring"
)

// Required special tokens. Construction fails if any is absent.
const (
	PadToken     = "[PAD]"
	MaskToken    = "[MASK]"
	UnkToken     = "[UNK]"
	EOSToken     = "[EOS]"
	NoAgentToken = "[NOAGENT]"
)

// MissingSpecialTokenError reports a required special token absent from the
// supplied vocabulary mapping.
type MissingSpecialTokenError struct {
	Token string
}

func (e *MissingSpecialTokenError) Error() string {
	return fmt.Sprintf("%s token is missing in vocabulary", e.Token)
}

// Table is an immutable bidirectional token<->id mapping with special-token
// lookup. Safe for concurrent readers; no mutation occurs after New returns.
type Table struct {
	tokenToID  map[string]int
	idToToken  map[int]string
	specialIDs *roaring.Bitmap

	padID     int
	maskID    int
	unkID     int
	eosID     int
	noAgentID int
}

// New builds a Table from a token->id mapping. The mapping is copied, so the
// caller keeps ownership of its map. Ids need not be contiguous; if two tokens
// share an id, the inverse keeps a single survivor (the lexicographically
// greatest token, since Go maps hide source insertion order).
func New(tokenToID map[string]int) (*Table, error) {
	t := &Table{
		tokenToID: make(map[string]int, len(tokenToID)),
		idToToken: make(map[int]string, len(tokenToID)),
	}

	for token, id := range tokenToID {
		t.tokenToID[token] = id
		if cur, ok := t.idToToken[id]; !ok || token > cur {
			t.idToToken[id] = token
		}
	}

	var err error
	if t.padID, err = t.Require(PadToken); err != nil {
		return nil, err
	}
	if t.maskID, err = t.Require(MaskToken); err != nil {
		return nil, err
	}
	if t.unkID, err = t.Require(UnkToken); err != nil {
		return nil, err
	}
	if t.eosID, err = t.Require(EOSToken); err != nil {
		return nil, err
	}
	if t.noAgentID, err = t.Require(NoAgentToken); err != nil {
		return nil, err
	}

	t.specialIDs = roaring.New()
	for _, id := range []int{t.padID, t.maskID, t.unkID, t.eosID, t.noAgentID} {
		t.specialIDs.Add(uint32(id))
	}

	return t, nil
}

// Require returns the id for token or a MissingSpecialTokenError.
func (t *Table) Require(token string) (int, error) {
	id, ok := t.tokenToID[token]
	if !ok {
		return 0, &MissingSpecialTokenError{Token: token}
	}
	return id, nil
}

// ID returns the id for token, falling back to the unknown-token id. Unseen
// tokens must not crash inference, so there is no error path here.
func (t *Table) ID(token string) int {
	if id, ok := t.tokenToID[token]; ok {
		return id
	}
	return t.unkID
}

// Token returns the token for id, falling back to the literal unknown token.
func (t *Table) Token(id int) string {
	if token, ok := t.idToToken[id]; ok {
		return token
	}
	return UnkToken
}

// Contains reports whether token is present verbatim in the vocabulary.
func (t *Table) Contains(token string) bool {
	_, ok := t.tokenToID[token]
	return ok
}

// Size returns the number of entries in the token->id mapping, not
// deduplicated by id.
func (t *Table) Size() int {
	return len(t.tokenToID)
}

// Tokens calls fn for every token in the vocabulary, in unspecified order.
func (t *Table) Tokens(fn func(token string, id int)) {
	for token, id := range t.tokenToID {
		fn(token, id)
	}
}

// IsSpecialID reports whether id belongs to one of the required special tokens.
func (t *Table) IsSpecialID(id int) bool {
	if id < 0 {
		return false
	}
	return t.specialIDs.Contains(uint32(id))
}

func (t *Table) PadID() int     { return t.padID }
func (t *Table) MaskID() int    { return t.maskID }
func (t *Table) UnkID() int     { return t.unkID }
func (t *Table) EOSID() int     { return t.eosID }
func (t *Table) NoAgentID() int { return t.noAgentID }
