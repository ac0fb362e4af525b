package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"student-notes-ai/internal/client/api"
	"student-notes-ai/internal/client/capture"
	"student-notes-ai/internal/client/flow"
	"student-notes-ai/internal/client/ocr"
	"student-notes-ai/internal/client/render"
	"student-notes-ai/internal/client/staging"
	"student-notes-ai/internal/dto"
	"student-notes-ai/pkg/storage"

	"github.com/fatih/color"
)

func main() {
	var (
		baseURL  = flag.String("base-url", envOr("BASE_URL", "http://localhost:8080"), "backend base URL")
		subject  = flag.String("subject", "", "subject hint sent with the completion request")
		language = flag.String("lang", "eng", "tesseract language")
		edit     = flag.Bool("edit", false, "review and edit the extracted text before sending")
		save     = flag.Bool("save", false, "save the staged text to a local file before sending")
		upload   = flag.Bool("upload", false, "upload the text instead of requesting completion")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: notescli [flags] <image file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	recognizer := ocr.NewTesseractRecognizer(*language)
	client := api.NewClient(api.Config{BaseURL: *baseURL})
	renderer := render.New(os.Stdout)

	if err := run(imagePath, *subject, *edit, *save, *upload, recognizer, client, renderer); err != nil {
		log.Fatalf("notescli: %v", err)
	}
}

func run(
	imagePath, subject string,
	edit, save, upload bool,
	recognizer ocr.Recognizer,
	client *api.Client,
	renderer *render.Renderer,
) error {
	f := flow.New()

	// Capture
	if err := f.StartCapture(); err != nil {
		return err
	}
	img, err := capture.FromFile(imagePath)
	if err != nil {
		f.Fail(err)
		return err
	}
	if err := f.FinishCapture(); err != nil {
		return err
	}

	// Recognition
	renderer.Info("Recognizing %s ...", img.Path)
	text, err := recognizer.Recognize(img.Path)
	if err != nil {
		f.Fail(err)
		return err
	}
	if err := f.FinishRecognition(); err != nil {
		return err
	}

	// Staging
	stage := staging.New(text)
	color.New(color.FgCyan, color.Bold).Println("Extracted Text")
	fmt.Println(stage.Text())

	if edit {
		stage.ToggleEdit()
		stage.SetDraft(readMultiline(os.Stdin, stage.Text()))
		stage.ToggleEdit()
	}

	timestamp := img.Timestamp.Format(time.RFC3339)

	if save {
		store := storage.NewTextFileStore(envOr("NOTES_DIR", "notes"))
		path, err := store.Save(storage.FileName(img.Timestamp), stage.Text(), timestamp)
		if err != nil {
			return fmt.Errorf("save staged text: %w", err)
		}
		renderer.Info("Saved staged text to %s", path)
	}

	ctx := context.Background()

	if upload {
		token, err := f.StartUpload()
		if err != nil {
			return err
		}
		res, err := client.UploadText(ctx, &dto.TextUploadRequest{
			Text:      stage.Text(),
			Timestamp: timestamp,
			FileName:  storage.FileName(img.Timestamp),
		})
		if err != nil {
			f.Resolve(token, err)
			renderer.TransportFailure(err)
			return nil
		}
		f.Resolve(token, nil)
		renderer.Upload(res)
		return nil
	}

	token, err := f.StartCompletion()
	if err != nil {
		return err
	}
	res, err := client.CompleteNotes(ctx, &dto.CompletionRequest{
		ExtractedText: stage.Text(),
		Subject:       subject,
	})
	if err != nil {
		f.Resolve(token, err)
		renderer.TransportFailure(err)
		return nil
	}
	f.Resolve(token, nil)
	renderer.Completion(res)
	return nil
}

// readMultiline collects replacement text from stdin until EOF. An empty
// submission keeps the current text.
func readMultiline(in *os.File, current string) string {
	fmt.Println("Enter replacement text, finish with Ctrl-D (empty keeps current):")
	var b strings.Builder
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	edited := strings.TrimRight(b.String(), "\n")
	if edited == "" {
		return current
	}
	return edited
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
