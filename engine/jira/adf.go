package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/Parthiban024/jira-automation/pkg/logger"
)

// Node kinds recognized by the normalizer. Everything else is skipped.
const (
	nodeParagraph = "paragraph"
	nodeText      = "text"
)

// Document is the root of an Atlassian Document Format (ADF) tree.
type Document struct {
	Type    string `json:"type"`
	Content []Node `json:"content"`
}

// Node is a block or inline ADF node. Block nodes carry Content,
// inline text nodes carry Text.
type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// NormalizeDescription converts a Jira description value into plain text.
// The value is either a plain string, an ADF document, or absent. ADF
// trees vary across Jira versions, so extraction is best-effort: the
// normalizer takes what it recognizes and never returns an error. A value
// that parses as neither a string nor a document is rendered verbatim,
// since a degraded description still beats a dropped task.
func NormalizeDescription(ctx context.Context, raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
		return renderRaw(trimmed)
	}
	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil || doc.Content == nil {
		if err != nil {
			logger.FromContext(ctx).Warn("description is not an ADF document, rendering raw value", "error", err)
		}
		return renderRaw(trimmed)
	}
	return extractText(&doc)
}

// extractText walks top-level paragraph nodes and joins their inline text
// with newlines. Empty paragraphs stay as empty segments so the block
// structure of the original document is preserved.
func extractText(doc *Document) string {
	var paragraphs []string
	for i := range doc.Content {
		block := &doc.Content[i]
		if block.Type != nodeParagraph {
			continue
		}
		paragraphs = append(paragraphs, paragraphText(block))
	}
	return strings.Join(paragraphs, "\n")
}

func paragraphText(block *Node) string {
	var sb strings.Builder
	for i := range block.Content {
		inline := &block.Content[i]
		if inline.Type == nodeText && inline.Text != "" {
			sb.WriteString(inline.Text)
		}
	}
	return sb.String()
}

// renderRaw produces a compact textual rendering of a JSON value that
// could not be interpreted as a string or document.
func renderRaw(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
