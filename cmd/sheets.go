package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsukin/config"
	"tsukin/importer"
)

var sheetsInput string

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List workbook sheets and mark which ones match the attendance pattern",
	Long: `List every sheet in the workbook and mark the ones whose name matches the
configured attendance pattern. Useful when summary reports that no sheet
matches, or when a workbook unexpectedly carries several monthly sheets.`,
	Example: `
  # Show sheets of a workbook
  tsukin sheets -i 勤務表2024.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		pattern, err := cfg.Workbook.Pattern()
		if err != nil {
			return err
		}

		file, err := importer.OpenWorkbook(sheetsInput)
		if err != nil {
			return err
		}
		defer file.Close()

		matches := 0
		for _, name := range file.GetSheetList() {
			if pattern.MatchString(name) {
				matches++
				color.New(color.FgGreen).Printf("%s  (matches %s)\n", name, pattern)
				continue
			}
			fmt.Println(name)
		}

		if matches == 0 {
			return fmt.Errorf("no sheet matching %s in %s", pattern, sheetsInput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetsCmd)

	sheetsCmd.Flags().StringVarP(&sheetsInput, "input", "i", "", "Attendance workbook path (.xlsx)")

	_ = sheetsCmd.MarkFlagRequired("input")
}
