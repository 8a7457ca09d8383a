//go:build ignore
// +build ignore

package main

import (
	"log"

	boolq "github.com/mithrel/boolq/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := boolq.NewRootCmd()

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "BOOLQ-CLI",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
