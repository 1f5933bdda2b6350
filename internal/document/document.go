// Package document extracts plain text from uploaded job description files.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupported is returned for files whose type has no extractor.
var ErrUnsupported = errors.New("unsupported file type")

// selfClosingTag matches empty WordprocessingML elements such as <w:p/>. The
// HTML parser behind goquery would otherwise leave them open and nest every
// following sibling inside.
var selfClosingTag = regexp.MustCompile(`<(w:[A-Za-z0-9]+)([^<>]*?)/>`)

// ExtractText returns the text content of data, choosing the extractor by the
// file extension.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".md", ".text":
		return string(data), nil
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		b.WriteString(text)
	}

	return strings.TrimSpace(b.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxParagraphs(doc.Editable().GetContent())
}

// docxParagraphs flattens WordprocessingML into one line per paragraph.
func docxParagraphs(content string) (string, error) {
	content = selfClosingTag.ReplaceAllString(content, "<$1$2></$1>")

	xmlDoc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to read docx content: %w", err)
	}

	var lines []string
	xmlDoc.Find(`w\:p`).Each(func(_ int, p *goquery.Selection) {
		var line strings.Builder
		p.Find(`w\:t`).Each(func(_ int, run *goquery.Selection) {
			line.WriteString(run.Text())
		})
		lines = append(lines, line.String())
	})

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
