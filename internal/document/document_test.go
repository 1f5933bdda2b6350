package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		data     string
		expect   string
	}{
		{name: "txt", filename: "jd.txt", data: "Responsibilities:\n- Build", expect: "Responsibilities:\n- Build"},
		{name: "upper case extension", filename: "JD.TXT", data: "Go", expect: "Go"},
		{name: "markdown", filename: "jd.md", data: "# Role", expect: "# Role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractText(tt.filename, []byte(tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	t.Parallel()

	_, err := ExtractText("jd.odt", []byte("data"))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestExtractTextBrokenFiles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"jd.pdf", "jd.docx"} {
		if _, err := ExtractText(name, []byte("not a real document")); err == nil {
			t.Fatalf("expected error for %s", name)
		}
	}
}

func TestDocxParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		expect  string
	}{
		{
			name: "runs joined per paragraph",
			content: `<w:document><w:body>` +
				`<w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Go Engineer</w:t></w:r></w:p>` +
				`<w:p><w:r><w:t>Responsibilities:</w:t></w:r></w:p>` +
				`</w:body></w:document>`,
			expect: "Senior Go Engineer\nResponsibilities:",
		},
		{
			name: "empty paragraph keeps siblings flat",
			content: `<w:document><w:body>` +
				`<w:p><w:r><w:t>Title</w:t></w:r></w:p>` +
				`<w:p/>` +
				`<w:p><w:r><w:t>Responsibilities:</w:t></w:r></w:p>` +
				`<w:p><w:r><w:t>- Build</w:t></w:r></w:p>` +
				`</w:body></w:document>`,
			expect: "Title\n\nResponsibilities:\n- Build",
		},
		{
			name: "self closing properties and breaks",
			content: `<w:document><w:body>` +
				`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Backend</w:t><w:br/></w:r></w:p>` +
				`<w:p w:rsidR="00A1"/>` +
				`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">Qualifications: </w:t></w:r></w:p>` +
				`</w:body></w:document>`,
			expect: "Backend\n\nQualifications:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := docxParagraphs(tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExtractTextDocx(t *testing.T) {
	t.Parallel()

	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
		`<w:p><w:r><w:t>Platform Engineer</w:t></w:r></w:p>`+
		`<w:p/>`+
		`<w:p><w:r><w:t>Responsibilities:</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>- Run Kubernetes</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Qualifications:</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>- Go</w:t></w:r></w:p>`+
		`<w:sectPr/></w:body></w:document>`)

	got, err := ExtractText("platform.docx", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expect := "Platform Engineer\n\nResponsibilities:\n- Run Kubernetes\nQualifications:\n- Go"
	if got != expect {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

// buildDocx packs the minimal parts a docx reader needs around body.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"word/document.xml": body,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing docx archive: %v", err)
	}

	return buf.Bytes()
}
