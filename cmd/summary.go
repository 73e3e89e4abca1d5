package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsukin/attendance"
	"tsukin/config"
	"tsukin/importer"
	"tsukin/output"
)

var (
	summaryInput string
	summarySheet string
	summaryRate  int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the commute reimbursement summary for a monthly workbook",
	Long: `Read the monthly attendance sheet and print the reimbursement request line.

The sheet is located by the configured name pattern (default ^勤務表\d+月$);
--sheet bypasses the lookup. A row counts as a commute day when its date cell
holds a value, its hours cell is filled and non-zero, and its note is not the
home-work marker. Consecutive days collapse to ranges in the output.`,
	Example: `
  # Summary with the configured rate
  tsukin summary -i 勤務表2024.xlsx

  # Override the round-trip rate for this run
  tsukin summary -i 勤務表2024.xlsx --rate 980

  # Read a specific sheet instead of matching by pattern
  tsukin summary -i 勤務表2024.xlsx --sheet 勤務表4月
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		summary, sheet, err := runSummary(summaryInput, summarySheet, summaryRate, *cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Sheet: %s\n", sheet)
		color.New(color.FgCyan, color.Bold).Println(summary)
		return nil
	},
}

// runSummary executes the whole pipeline for one workbook: locate the monthly
// sheet, read the attendance block, extract commute days, format the summary.
func runSummary(inputPath, sheetOverride string, rateOverride int, cfg config.Config) (string, string, error) {
	days, sheet, err := readCommuteDays(inputPath, sheetOverride, cfg)
	if err != nil {
		return "", "", err
	}

	rate := cfg.Rate.RoundTripYen
	if rateOverride > 0 {
		rate = rateOverride
	}

	summary, err := output.BuildCommuteSummary(days, rate)
	if err != nil {
		return "", "", fmt.Errorf("sheet %s: %w", sheet, err)
	}

	return summary, sheet, nil
}

// readCommuteDays opens the workbook, resolves the attendance sheet, and
// extracts the commute days. Shared by summary and export.
func readCommuteDays(inputPath, sheetOverride string, cfg config.Config) ([]attendance.Day, string, error) {
	file, err := importer.OpenWorkbook(inputPath)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	sheet := sheetOverride
	if sheet == "" {
		pattern, err := cfg.Workbook.Pattern()
		if err != nil {
			return nil, "", err
		}
		sheet, err = importer.FindMonthlySheet(file, pattern)
		if err != nil {
			return nil, "", err
		}
	}

	rows, err := importer.ReadAttendanceRows(file, sheet, importer.Block{
		FirstRow:    cfg.Workbook.FirstRow,
		LastRow:     cfg.Workbook.LastRow,
		DateColumn:  cfg.Workbook.DateColumn,
		HoursColumn: cfg.Workbook.HoursColumn,
		NoteColumn:  cfg.Workbook.NoteColumn,
	})
	if err != nil {
		return nil, "", err
	}

	return attendance.CommuteDays(rows, cfg.Extract.HomeNote), sheet, nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVarP(&summaryInput, "input", "i", "", "Attendance workbook path (.xlsx)")
	summaryCmd.Flags().StringVar(&summarySheet, "sheet", "", "Read this sheet instead of matching by pattern")
	summaryCmd.Flags().IntVar(&summaryRate, "rate", 0, "Round-trip rate in yen for this run (overrides config)")

	_ = summaryCmd.MarkFlagRequired("input")
}
