package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"student-notes-ai/internal/client/api"
	"student-notes-ai/internal/dto"

	"github.com/fatih/color"
)

func main() {
	var (
		title   = flag.String("title", "", "title of the document (default: file name)")
		author  = flag.String("author", "", "author of the document")
		subject = flag.String("subject", "", "subject category")
		apiURL  = flag.String("api-url", "http://localhost:8080", "backend base URL")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: upload_literature [flags] <file or directory>")
		fmt.Fprintln(os.Stderr, "\nExamples:")
		fmt.Fprintln(os.Stderr, "  upload_literature --subject Biology ./literature/biology_textbook.txt")
		fmt.Fprintln(os.Stderr, "  upload_literature --subject Physics ./literature/")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	client := api.NewClient(api.Config{BaseURL: *apiURL})
	ctx := context.Background()

	if _, err := client.Health(ctx); err != nil {
		color.Red("Cannot connect to API at %s: %v", *apiURL, err)
		color.Red("Make sure the server is running")
		os.Exit(1)
	}

	info, err := os.Stat(path)
	if err != nil {
		color.Red("Error: %s is not a valid file or directory", path)
		os.Exit(1)
	}

	if info.IsDir() {
		uploadDirectory(ctx, client, path, *subject)
		return
	}
	if !uploadFile(ctx, client, path, *title, *author, *subject) {
		os.Exit(1)
	}
}

func uploadFile(ctx context.Context, client *api.Client, path, title, author, subject string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		color.Red("Error reading %s: %v", path, err)
		return false
	}

	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	res, err := client.AddLiterature(ctx, &dto.AddLiteratureRequest{
		Text:    string(content),
		Title:   title,
		Author:  author,
		Subject: subject,
	})
	if err != nil {
		color.Red("Error uploading %s: %v", path, err)
		return false
	}
	if !res.Success {
		color.Red("Upload failed: %s", res.Message)
		return false
	}

	color.Green("Successfully uploaded: %s", title)
	color.Green("Document ID: %s", res.DocumentId)
	return true
}

func uploadDirectory(ctx context.Context, client *api.Client, dir, subject string) {
	var files []string
	for _, pattern := range []string{"*.txt", "*.md", "*.rst"} {
		matches, _ := filepath.Glob(filepath.Join(dir, pattern))
		files = append(files, matches...)
	}

	if len(files) == 0 {
		color.Yellow("No text files found in %s", dir)
		return
	}

	fmt.Printf("Found %d text files to upload...\n", len(files))

	succeeded := 0
	for _, file := range files {
		if uploadFile(ctx, client, file, "", "", subject) {
			succeeded++
		}
	}

	fmt.Printf("\nUpload complete: %d/%d files uploaded successfully\n", succeeded, len(files))
}
