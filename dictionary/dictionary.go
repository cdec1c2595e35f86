package dictionary

import (
	"fmt"

	"github.com/eridgd/tentoku/model"
)

// CombinedDictionary tries each underlying store in order and returns
// the first one's hits: a names dictionary (ENAMDICT-backed) is
// consulted only when the main store has nothing.
type CombinedDictionary struct {
	stores []model.Dictionary
}

// NewCombinedDictionary builds a dictionary that tries stores in order.
func NewCombinedDictionary(stores ...model.Dictionary) *CombinedDictionary {
	return &CombinedDictionary{stores: stores}
}

// GetWords implements model.Dictionary.
func (c *CombinedDictionary) GetWords(inputText string, maxResults int, matchingText ...string) ([]model.WordEntry, error) {
	for _, store := range c.stores {
		entries, err := store.GetWords(inputText, maxResults, matchingText...)
		if err != nil {
			return nil, fmt.Errorf("dictionary: underlying store: %w", err)
		}
		if len(entries) > 0 {
			return entries, nil
		}
	}
	return nil, nil
}
