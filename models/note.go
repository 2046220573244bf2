package models

import (
	"encoding/json"
	"strings"
)

// Note is a rich-text document attached to a subject.
//
// Content is opaque to the server: it stores the serialized editor state
// (a JSON tree of nested nodes, each block holding text leaves) exactly as
// the client submitted it and returns it byte-for-byte on read. Only the
// client interprets the tree; PlainText exists for previews and search.
type Note struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subject_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags,omitempty"`

	UserID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// noteNode is the minimal shape of one node in the serialized editor tree.
// Unknown fields are ignored so the extraction survives editor upgrades.
type noteNode struct {
	Text     string     `json:"text"`
	Children []noteNode `json:"children"`
}

// PlainText extracts the concatenated text leaves from the serialized
// rich-text tree in Content. Top-level blocks are joined with newlines.
//
// If Content is not a JSON document of the expected shape, the raw Content
// string is returned unchanged, so plain-text notes remain readable.
func (n Note) PlainText() string {
	var doc struct {
		Root noteNode `json:"root"`
	}
	if err := json.Unmarshal([]byte(n.Content), &doc); err != nil {
		return n.Content
	}
	if doc.Root.Text == "" && len(doc.Root.Children) == 0 {
		return n.Content
	}

	blocks := make([]string, 0, len(doc.Root.Children))
	for _, block := range doc.Root.Children {
		blocks = append(blocks, collectText(block))
	}

	return strings.Join(blocks, "\n")
}

func collectText(node noteNode) string {
	var b strings.Builder
	b.WriteString(node.Text)
	for _, child := range node.Children {
		b.WriteString(collectText(child))
	}
	return b.String()
}
