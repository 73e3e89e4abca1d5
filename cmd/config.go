package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tsukin configuration file values.",
	Long: `Create, edit, display, and delete the tsukin configuration file.

The configuration stores the reimbursement rate and the attendance sheet layout:
- rate.round_trip_yen
- workbook.sheet_pattern / first_row / last_row / date_column / hours_column / note_column
- extract.home_note`,
	Example: `
  # Create default config in $HOME/.tsukin.yaml
  tsukin config create

  # Show active config and source file
  tsukin config show

  # Open active config in editor (creates example if missing)
  tsukin config edit

  # Delete active config file
  tsukin config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
