package resume

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"pitchbot/internal/domain"
)

// ExtractText pulls plain text from a PDF. Image-only or malformed PDFs that
// yield no text return domain.ErrNoExtractableText so the caller can surface
// a parse failure instead of a silently empty result.
func ExtractText(fileBytes []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", domain.ErrNoExtractableText
	}
	return text, nil
}
