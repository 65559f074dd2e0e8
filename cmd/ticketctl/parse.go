package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"weighbridge/internal/csvexport"
	"weighbridge/internal/domain"
	"weighbridge/internal/export"
	"weighbridge/internal/ner"
	"weighbridge/internal/parser"
	"weighbridge/internal/service"
)

const maxFileSizeMB = 10

func parseCMD() *cobra.Command {
	var format string
	var outPath string
	var lexiconPath string
	var noNER bool
	var parse = &cobra.Command{
		Use:   "parse <file.json>...",
		Short: "Parse OCR result files and print the extracted tickets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := domain.ParseExportFormat(format)
			if !ok {
				return fmt.Errorf("unknown format %q (want json, csv or xlsx)", format)
			}
			if f == domain.ExportFormatXLSX && len(args) > 1 {
				return fmt.Errorf("xlsx output holds one ticket, got %d files", len(args))
			}

			var opts []parser.Option
			if !noNER {
				opts = append(opts, parser.WithRecognizer(ner.NewLazy(lexiconPath)))
			}
			svc := service.NewTicketService(parser.New(opts...), maxFileSizeMB<<20)

			out := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating output: %w", err)
				}
				defer func() { _ = file.Close() }()
				out = file
			}
			return runParse(cmd.Context(), out, svc, f, args)
		},
	}
	parse.Flags().StringVarP(&format, "format", "f", "json", "output format: json, csv or xlsx")
	parse.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	parse.Flags().StringVar(&lexiconPath, "lexicon", "", "organization lexicon YAML (default built-in)")
	parse.Flags().BoolVar(&noNER, "no-ner", false, "disable the organization recognizer fallback")

	return parse
}

// runParse parses every file and writes the tickets to out. CSV output
// shares one header across files; JSON output is one document per file.
func runParse(ctx context.Context, out io.Writer, svc service.TicketService, format domain.ExportFormat, paths []string) error {
	tickets := make([]*domain.Ticket, 0, len(paths))
	for _, path := range paths {
		ticket, err := parseFile(ctx, svc, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tickets = append(tickets, ticket)
	}

	switch format {
	case domain.ExportFormatCSV:
		if _, err := out.Write(csvexport.BOM); err != nil {
			return err
		}
		w := csvexport.NewWriter(out)
		if err := w.WriteHeader(); err != nil {
			return err
		}
		for _, t := range tickets {
			clean := t.WithoutOriginalText()
			if err := w.WriteTicket(&clean); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	case domain.ExportFormatJSON:
		if len(tickets) == 1 {
			return export.Write(out, format, tickets[0])
		}
		list := make([]domain.Ticket, len(tickets))
		for i, t := range tickets {
			list[i] = t.WithoutOriginalText()
		}
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	default:
		return export.Write(out, format, tickets[0])
	}
}

func parseFile(ctx context.Context, svc service.TicketService, path string) (*domain.Ticket, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	size := int64(-1)
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}
	return svc.ParseUpload(ctx, service.UploadInput{
		Filename: filepath.Base(path),
		Size:     size,
		Content:  file,
	})
}
