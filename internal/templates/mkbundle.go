//go:build ignore

// mkbundle compresses the files under src/ into bundle/ for embedding.
package main

import (
	"bytes"
	"compress/zlib"
	"log"
	"os"
	"path/filepath"
)

func main() {
	files, err := filepath.Glob("src/*")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll("bundle", 0755); err != nil {
		log.Fatal(err)
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}

		var buf bytes.Buffer
		w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			log.Fatal(err)
		}
		if err := w.Close(); err != nil {
			log.Fatal(err)
		}

		out := filepath.Join("bundle", filepath.Base(file)+".z")
		if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: %d -> %d bytes", out, len(data), buf.Len())
	}
}
