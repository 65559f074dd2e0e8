package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"weighbridge/internal/ner"
)

func lexiconCMD() *cobra.Command {
	var path string
	var lexicon = &cobra.Command{
		Use:   "lexicon [text]",
		Short: "Load the organization lexicon and print its size, or the organizations found in text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := ner.LoadLexicon(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				for _, e := range lex.Recognize(args[0]) {
					fmt.Fprintf(out, "%s\t%s\t%d-%d\n", e.Label, e.Text, e.Start, e.End)
				}
				return nil
			}
			orgs, suffixes := lex.Stats()
			source := path
			if source == "" {
				source = "built-in"
			}
			fmt.Fprintf(out, "lexicon: %s\norganizations: %d\nsuffixes: %d\n", source, orgs, suffixes)
			return nil
		},
	}
	lexicon.Flags().StringVar(&path, "path", "", "lexicon YAML file (default built-in)")

	return lexicon
}
