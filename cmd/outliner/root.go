package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Outliner — extract document outlines from files",
	Long: `Outliner reads PDF, DOCX, HTML, Markdown, or plain-text documents and
produces a JSON outline: the document title plus H1/H2/H3 headings with
their page numbers.

Usage:
  outliner extract <file> [flags]
  outliner extract --input-dir ./docs --output-dir ./out`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
