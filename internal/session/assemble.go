// Package session compiles a context list into model-request content.
// The list the user curates in the table view is exactly the material
// that reaches the model: whole buffers, overlay spans, and file
// contents, in list order.
package session

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/pathutil"
	"google.golang.org/genai"
)

// Source is the minimal host surface the assembler reads from.
type Source interface {
	BufferText(name string) (string, error)
	BufferRegion(name string, startLine, endLine int) (string, error)
	FileText(path string) (string, error)
	FileBytes(path string) ([]byte, error)
}

// Assembler turns context items into genai request parts.
type Assembler struct {
	src Source
}

// NewAssembler creates an assembler reading through src.
func NewAssembler(src Source) *Assembler {
	return &Assembler{src: src}
}

// Contents assembles the list into a single user-role content whose
// parts follow list order. Items whose source has disappeared are
// skipped: a stale entry degrades the request, it does not fail it.
// Returns nil when nothing contributes.
func (a *Assembler) Contents(list []contextitem.Item) []*genai.Content {
	var parts []*genai.Part

	for _, it := range list {
		parts = append(parts, a.itemParts(it)...)
	}

	if len(parts) == 0 {
		return nil
	}
	return []*genai.Content{{Role: "user", Parts: parts}}
}

func (a *Assembler) itemParts(it contextitem.Item) []*genai.Part {
	switch v := it.(type) {
	case *contextitem.BufferItem:
		return a.bufferParts(v)
	case *contextitem.FileItem:
		return a.fileParts(v)
	default:
		return nil
	}
}

func (a *Assembler) bufferParts(item *contextitem.BufferItem) []*genai.Part {
	if len(item.Overlays) == 0 {
		text, err := a.src.BufferText(item.Handle)
		if err != nil {
			return nil
		}
		label := fmt.Sprintf("In buffer `%s`:", item.Handle)
		return []*genai.Part{genai.NewPartFromText(fence(label, text))}
	}

	var parts []*genai.Part
	for _, ov := range item.Overlays {
		if ov.Released() {
			continue
		}
		text, err := a.src.BufferRegion(item.Handle, ov.StartLine, ov.EndLine)
		if err != nil {
			continue
		}
		label := fmt.Sprintf("In buffer `%s` (lines %d-%d):", item.Handle, ov.StartLine, ov.EndLine)
		parts = append(parts, genai.NewPartFromText(fence(label, text)))
	}
	return parts
}

func (a *Assembler) fileParts(item *contextitem.FileItem) []*genai.Part {
	if pathutil.IsTextual(item.MIME) {
		text, err := a.src.FileText(item.Path)
		if err != nil {
			return nil
		}
		label := fmt.Sprintf("In file `%s`:", item.Name())
		return []*genai.Part{genai.NewPartFromText(fence(label, text))}
	}

	data, err := a.src.FileBytes(item.Path)
	if err != nil {
		return nil
	}
	return []*genai.Part{genai.NewPartFromBytes(data, item.MIME)}
}

func fence(label, text string) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString("\n```\n")
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}
