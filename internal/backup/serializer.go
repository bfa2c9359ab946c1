package backup

import (
	"encoding/json"
	"fmt"

	"github.com/s4daharu/novel-apps-sub001/internal/entities"
)

// Marshal renders the completed document as pretty-printed UTF-8 JSON.
// Empty collections serialize as [] so consumers always find the
// revisions[0].scenes, revisions[0].sections and
// revisions[0].book_progresses[0].word_count paths.
func Marshal(doc *entities.Backup) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize backup: %w", err)
	}
	return data, nil
}
