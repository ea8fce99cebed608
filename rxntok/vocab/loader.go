package vocab

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a token->id mapping from a JSON vocabulary file. Two layouts
// are accepted: the mapping itself, or the mapping nested under a
// "token_to_id" key (the layout written by the training pipeline).
func LoadFile(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var nested struct {
		TokenToID map[string]int `json:"token_to_id"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.TokenToID != nil {
		return nested.TokenToID, nil
	}

	var direct map[string]int
	if err := json.Unmarshal(data, &direct); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	return direct, nil
}
