package blocks

import (
	"encoding/json"
	"strings"

	"github.com/s4daharu/novel-apps-sub001/internal/entities"
)

// CountWords sums whitespace-delimited tokens across all scenes. Each
// scene's text field holds a serialized block container; a scene whose
// text cannot be decoded contributes zero.
func CountWords(scenes []entities.Scene) int {
	total := 0
	for _, scene := range scenes {
		var container entities.BlockContainer
		if err := json.Unmarshal([]byte(scene.Text), &container); err != nil {
			continue
		}
		for _, block := range container.Blocks {
			total += len(strings.Fields(block.Text))
		}
	}
	return total
}
