package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s4daharu/novel-apps-sub001/internal/entities"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input yields single empty block",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "whitespace-only input yields single empty block",
			input:    "  \n\t\n  ",
			expected: []string{""},
		},
		{
			name:     "single paragraph",
			input:    "Hello world.",
			expected: []string{"Hello world."},
		},
		{
			name:     "one block per non-empty line",
			input:    "First line.\nSecond line.\n\nThird line.",
			expected: []string{"First line.", "Second line.", "Third line."},
		},
		{
			name:     "windows line endings",
			input:    "First.\r\nSecond.\r\n",
			expected: []string{"First.", "Second."},
		},
		{
			name:     "old mac line endings",
			input:    "First.\rSecond.",
			expected: []string{"First.", "Second."},
		},
		{
			name:     "mixed line endings",
			input:    "a\r\nb\rc\nd",
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "lines are trimmed",
			input:    "  padded  \n\ttabbed\t",
			expected: []string{"padded", "tabbed"},
		},
		{
			name:     "control characters survive inside a line",
			input:    "before\x00after",
			expected: []string{"before\x00after"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromText(tt.input)

			texts := make([]string, 0, len(result))
			for _, block := range result {
				assert.Equal(t, entities.BlockTypeText, block.Type)
				assert.Equal(t, entities.BlockAlignLeft, block.Align)
				texts = append(texts, block.Text)
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestFromTextIsDeterministic(t *testing.T) {
	input := "Chapter one.\r\n\r\nIt was a dark\nand stormy night.\r"

	first := FromText(input)
	second := FromText(input)

	assert.Equal(t, first, second)
}

func TestEmptyContainer(t *testing.T) {
	container := EmptyContainer()

	assert.Len(t, container.Blocks, 1)
	assert.Equal(t, "", container.Blocks[0].Text)
	assert.Equal(t, entities.BlockTypeText, container.Blocks[0].Type)
}
