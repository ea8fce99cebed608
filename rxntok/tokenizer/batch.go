package tokenizer

import (
	"github.com/sourcegraph/conc/pool"
)

// EncodeBatch encodes texts under a bounded worker pool and returns one id
// sequence per input, in input order. The vocabulary table is immutable, so
// concurrent Encode calls need no locking.
func (t *ReactionTokenizer) EncodeBatch(texts []string) [][]int {
	out := make([][]int, len(texts))
	if len(texts) == 0 {
		return out
	}

	p := pool.New().WithMaxGoroutines(t.batchWorkers)
	for i, text := range texts {
		p.Go(func() {
			out[i] = t.Encode(text)
		})
	}
	p.Wait()

	t.logger.Debug().
		Int("inputs", len(texts)).
		Msg("batch encode completed")

	return out
}
