package ocr

// Recognizer extracts text from a captured image file.
type Recognizer interface {
	Recognize(imagePath string) (string, error)
}
