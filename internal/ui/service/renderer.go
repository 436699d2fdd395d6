// Package service provides rendering helpers for the UI.
package service

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal display
type MarkdownRenderer interface {
	Render(content string) (string, error)
}

// GlamourRenderer implements MarkdownRenderer using glamour
type GlamourRenderer struct {
	wordWrap int
}

// NewGlamourRenderer creates a renderer wrapping at the given column.
func NewGlamourRenderer(wordWrap int) *GlamourRenderer {
	return &GlamourRenderer{wordWrap: wordWrap}
}

// Render renders markdown; on any renderer failure the raw content is
// returned so the preview still shows something.
func (r *GlamourRenderer) Render(content string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.wordWrap),
	)
	if err != nil {
		return content, err
	}
	out, err := tr.Render(content)
	if err != nil {
		return content, err
	}
	return out, nil
}

// RenderSource prepares arbitrary source content for the preview
// pane. Markdown renders as-is; everything else is fenced first so
// glamour shows it verbatim.
func RenderSource(r MarkdownRenderer, content, mime string) string {
	md := content
	if !isMarkdown(mime) {
		md = fmt.Sprintf("```\n%s\n```", strings.TrimRight(content, "\n"))
	}
	out, err := r.Render(md)
	if err != nil {
		return content
	}
	return out
}

func isMarkdown(mime string) bool {
	return mime == "text/markdown" || mime == "text/x-markdown"
}
