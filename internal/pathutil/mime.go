package pathutil

import (
	"mime"
	"path/filepath"
	"strings"
)

// MIMELabel returns the content-type label for a file, or "" when the
// type is unknown or plain text. Plain text maps to "" so the table's
// default "Text" label applies.
func MIMELabel(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}

	typ := mime.TypeByExtension(ext)
	if typ == "" {
		return ""
	}
	// Drop parameters such as "; charset=utf-8".
	if i := strings.Index(typ, ";"); i >= 0 {
		typ = strings.TrimSpace(typ[:i])
	}
	if typ == "text/plain" {
		return ""
	}
	return typ
}

// IsTextual reports whether a MIME label names content that can be
// inlined as text in a model request.
func IsTextual(label string) bool {
	if label == "" {
		return true
	}
	if strings.HasPrefix(label, "text/") {
		return true
	}
	switch label {
	case "application/json", "application/xml", "application/yaml",
		"application/toml", "application/javascript":
		return true
	}
	return false
}
