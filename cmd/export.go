package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tsukin/config"
	"tsukin/output"
)

var (
	exportInput  string
	exportSheet  string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export extracted commute days to CSV/Excel",
	Long: `Export the commute days extracted from the monthly attendance sheet.

Each output row holds the date, its day of month, the logged hours, and the
note text. Output format can be selected explicitly via --format or inferred
from the --output extension.`,
	Example: `
  # Export commute days to CSV
  tsukin export -i 勤務表2024.xlsx -o commute-days.csv

  # Export commute days to Excel
  tsukin export -i 勤務表2024.xlsx -o commute-days.xlsx

  # Force Excel format independent of extension
  tsukin export -i 勤務表2024.xlsx --format excel -o commute-days.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		days, sheet, err := readCommuteDays(exportInput, exportSheet, *cfg)
		if err != nil {
			return err
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(exportOutput, days); err != nil {
			return err
		}

		fmt.Printf("Export completed. Sheet: %s, Days: %d, Format: %s, File: %s\n", sheet, len(days), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Attendance workbook path (.xlsx)")
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "", "Read this sheet instead of matching by pattern")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("input")
	_ = exportCmd.MarkFlagRequired("output")
}
