package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNote_PlainText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "rich text tree",
			content: `{"root":{"children":[` +
				`{"children":[{"text":"First "},{"text":"paragraph"}]},` +
				`{"children":[{"text":"Second"}]}]}}`,
			want: "First paragraph\nSecond",
		},
		{
			name:    "nested children",
			content: `{"root":{"children":[{"children":[{"children":[{"text":"deep"}]}]}]}}`,
			want:    "deep",
		},
		{
			name:    "plain string passes through",
			content: "just a plain note",
			want:    "just a plain note",
		},
		{
			name:    "json without the expected shape passes through",
			content: `{"title":"not an editor tree"}`,
			want:    `{"title":"not an editor tree"}`,
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := Note{Content: tt.content}
			assert.Equal(t, tt.want, note.PlainText())
		})
	}
}
