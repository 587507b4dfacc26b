package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"menodiary/internal/services"
)

var (
	exportFormat string
	exportRange  string
	exportFrom   string
	exportTo     string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export logs to a CSV or XLSX report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		appLogger, err := newLogger()
		if err != nil {
			return err
		}
		defer appLogger.Sync()

		documents, err := openDocumentStore(cfg, appLogger)
		if err != nil {
			return err
		}

		state := documents.Load()
		r := services.ResolveRange(services.RangePreset(exportRange), time.Now(), state, exportFrom, exportTo)

		output, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer output.Close()

		switch exportFormat {
		case "csv":
			err = services.WriteCSV(output, state, r)
		case "xlsx":
			err = services.WriteXLSX(output, state, r)
		default:
			return fmt.Errorf("unknown format %q (expected csv or xlsx)", exportFormat)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s (%s to %s)\n", exportFormat, exportOut, r.Start, r.End)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportRange, "range", "all", "Range preset: last7, last30, last90, all, custom")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Custom range start YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Custom range end YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportOut, "out", "menodiary-export.csv", "Output file path")
}
