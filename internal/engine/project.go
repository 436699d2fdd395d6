package engine

import (
	"fmt"

	"github.com/Cyclone1070/ctxboard/internal/contextitem"
)

// Row is one displayable line of the context table. Rows are rebuilt
// from the list on every refresh and carry no state of their own;
// Mark is filled in by the caller from the transient mark set.
type Row struct {
	ID      contextitem.Identity
	Mark    string
	Type    string
	Name    string
	Details string
}

// Project maps a context list to its table rows, one per item, in
// list order. Pure: it reads the list and touches nothing else.
func Project(list []contextitem.Item) []Row {
	rows := make([]Row, 0, len(list))
	for _, it := range list {
		rows = append(rows, projectItem(it))
	}
	return rows
}

func projectItem(it contextitem.Item) Row {
	row := Row{ID: it.Identity()}

	switch v := it.(type) {
	case *contextitem.BufferItem:
		row.Type = string(contextitem.KindBuffer)
		row.Name = v.Handle
		row.Details = overlayDetails(len(v.Overlays))
	case *contextitem.FileItem:
		row.Type = string(contextitem.KindFile)
		row.Name = v.Name()
		row.Details = fileDetails(v.MIME)
	default:
		row.Type = string(row.ID.Kind)
		row.Name = row.ID.Key
	}

	return row
}

func overlayDetails(n int) string {
	switch n {
	case 0:
		return "Full buffer"
	case 1:
		return "1 overlay"
	default:
		return fmt.Sprintf("%d overlays", n)
	}
}

func fileDetails(mime string) string {
	if mime == "" {
		return "Text"
	}
	return mime
}
