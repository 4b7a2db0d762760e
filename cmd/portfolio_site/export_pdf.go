package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-site/internal/pdf"
)

var exportPDFCommand = &cobra.Command{
	Use:   "export-pdf",
	Short: "Print the rendered CV page to PDF",
	Long: `Renders a built page in a headless browser and saves the printed PDF.
Meant for the printable CV variant. Requires Chrome/Chromium to be installed.`,
	RunE: runExportPDFCmd,
}

var (
	exportPage      string
	exportOut       string
	exportTimeout   int
	exportLandscape bool
	exportVerbose   bool
)

func init() {
	exportPDFCommand.Flags().StringVar(&exportPage, "page", "public/printable_cv.html", "Rendered page to print (path or URL)")
	exportPDFCommand.Flags().StringVarP(&exportOut, "out", "o", "cv.pdf", "Output PDF path")
	exportPDFCommand.Flags().IntVar(&exportTimeout, "timeout", 60, "Browser timeout in seconds")
	exportPDFCommand.Flags().BoolVar(&exportLandscape, "landscape", false, "Print in landscape orientation")
	exportPDFCommand.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(exportPDFCommand)
}

func runExportPDFCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := loggerForVerbosity(os.Stderr, exportVerbose)

	pageURL, err := pdf.PageURL(exportPage)
	if err != nil {
		return err
	}

	opts := pdf.DefaultOptions()
	opts.Timeout = time.Duration(exportTimeout) * time.Second
	opts.Landscape = exportLandscape

	logger.Info("printing page", "page", pageURL, "out", exportOut)
	if err := pdf.Export(ctx, pageURL, exportOut, opts); err != nil {
		return err
	}
	logger.Info("PDF written", "out", exportOut)
	return nil
}
