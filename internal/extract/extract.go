package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"

	"resume-parser/internal/parse"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// Extractor turns document bytes into raw text. It implements
// parse.TextExtractor. The zero value is ready to use.
type Extractor struct{}

// Extract sniffs the byte signature, falls back to the filename extension
// when sniffing is inconclusive, and runs the matching format reader.
// Unrecognized types retry as PDF, the most common document source, before
// giving up.
func (Extractor) Extract(ctx context.Context, data []byte, filenameHint string) (parse.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return parse.Extraction{}, err
	}
	if len(data) == 0 {
		return parse.Extraction{}, fmt.Errorf("%w: empty payload", parse.ErrEmptyDocument)
	}

	mime := Sniff(data, filenameHint)
	switch mime {
	case mimePDF:
		text, pages, err := extractPDF(data)
		if err != nil {
			return parse.Extraction{FileType: "pdf"}, fmt.Errorf("%w: pdf: %v", parse.ErrCorruptDocument, err)
		}
		return parse.Extraction{Text: text, PageCount: pages, FileType: "pdf"}, nil
	case mimeDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return parse.Extraction{FileType: "docx"}, fmt.Errorf("%w: docx: %v", parse.ErrCorruptDocument, err)
		}
		return parse.Extraction{Text: text, FileType: "docx"}, nil
	case mimeText:
		return parse.Extraction{Text: string(data), FileType: "txt"}, nil
	default:
		// Last-resort fallback: retry as PDF before declaring the format
		// unsupported.
		if text, pages, err := extractPDF(data); err == nil {
			return parse.Extraction{Text: text, PageCount: pages, FileType: "pdf"}, nil
		}
		return parse.Extraction{FileType: mime}, fmt.Errorf("%w: %s", parse.ErrUnsupportedFormat, mime)
	}
}

// Sniff resolves the effective MIME type from the byte signature, using
// the filename extension only when the signature is inconclusive. A DOCX
// payload sniffed as a plain zip is disambiguated by its archive contents.
func Sniff(data []byte, filenameHint string) string {
	detected := mimetype.Detect(data)

	switch {
	case detected.Is(mimePDF):
		return mimePDF
	case detected.Is(mimeDOCX):
		return mimeDOCX
	case detected.Is("application/zip"):
		if hasZipEntry(data, "word/document.xml") {
			return mimeDOCX
		}
	case strings.HasPrefix(detected.String(), "text/"):
		return mimeText
	}

	switch strings.ToLower(filepath.Ext(filenameHint)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".txt":
		return mimeText
	}

	return strings.Split(detected.String(), ";")[0]
}

func extractPDF(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", 0, err
	}
	return buf.String(), reader.NumPage(), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return stripDocxXML(string(raw)), nil
}

// stripDocxXML walks the document XML and keeps character data, emitting a
// newline at paragraph and line-break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func hasZipEntry(data []byte, name string) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == name {
			return true
		}
	}
	return false
}
