package blocks

import (
	"strings"

	"github.com/s4daharu/novel-apps-sub001/internal/entities"
)

// FromText partitions raw chapter text into an ordered block sequence.
// Line endings are normalized first, then each non-empty line becomes one
// text block. The result is never empty: fully empty input yields a single
// block with empty text. The conversion is pure and total — it never fails,
// whatever bytes the text carries.
func FromText(text string) []entities.Block {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var result []entities.Block
	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, textBlock(line))
	}

	if len(result) == 0 {
		result = append(result, textBlock(""))
	}

	return result
}

// Container wraps the converted text in a block container, the shape
// embedded as a string field inside each scene.
func Container(text string) entities.BlockContainer {
	return entities.BlockContainer{Blocks: FromText(text)}
}

// EmptyContainer returns the container used for synthetic chapters: a
// single block with empty text.
func EmptyContainer() entities.BlockContainer {
	return entities.BlockContainer{Blocks: []entities.Block{textBlock("")}}
}

func textBlock(text string) entities.Block {
	return entities.Block{
		Type:  entities.BlockTypeText,
		Align: entities.BlockAlignLeft,
		Text:  text,
	}
}
