package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/todo/internal/model"
)

// DefaultExportPath returns the default export file path for a list name.
// Format: ~/Downloads/<name>-export-YYYY-MM-DD.html
func DefaultExportPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s-export-%s.html", name, time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the list as an HTML checklist.
// The output reads back through importer.ParseHTMLItems.
func ExportHTML(title string, list *model.List) string {
	var b strings.Builder
	escaped := html.EscapeString(title)

	// Header
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", escaped)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", escaped)
	b.WriteString("<ol>\n")

	for _, item := range list.Items {
		fmt.Fprintf(&b, "    <li><input type=\"checkbox\"> %s</li>\n", html.EscapeString(item))
	}

	// Footer
	b.WriteString("</ol>\n")
	b.WriteString("</body>\n</html>\n")

	return b.String()
}
