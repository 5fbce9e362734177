package main

// Parse a local résumé file and print the result as JSON:
//   go run ./cmd/parsedemo path/to/resume.pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resume-parser/internal/extract"
	"resume-parser/internal/parse"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: parsedemo <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	pipeline := parse.NewPipeline(&extract.Extractor{})
	result, err := pipeline.Run(context.Background(), data, filepath.Base(path))
	if err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}
