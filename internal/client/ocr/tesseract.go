package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer implements Recognizer with the gosseract client. A
// fresh client per call keeps recognitions independent; handwritten note
// photos are one-at-a-time anyway.
type TesseractRecognizer struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

func NewTesseractRecognizer(languages ...string) *TesseractRecognizer {
	return &TesseractRecognizer{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}
}

func (r *TesseractRecognizer) Recognize(imagePath string) (string, error) {
	c := r.clientFactory()
	defer c.Close()

	if err := c.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(r.languages) > 0 {
		if err := c.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
