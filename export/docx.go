// Package export renders a note's text as a downloadable Word document.
package export

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// Docx builds a one-paragraph .docx document holding text.
func Docx(text string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(text)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename names the download after the exported note.
func Filename(noteID int) string {
	return fmt.Sprintf("note_%d.docx", noteID)
}
