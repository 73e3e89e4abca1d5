package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tsukin/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  tsukin config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use, showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("rate.round_trip_yen: %d\n", cfg.Rate.RoundTripYen)
		fmt.Printf("workbook.sheet_pattern: %s\n", cfg.Workbook.SheetPattern)
		fmt.Printf("workbook.first_row: %d\n", cfg.Workbook.FirstRow)
		fmt.Printf("workbook.last_row: %d\n", cfg.Workbook.LastRow)
		fmt.Printf("workbook.date_column: %s\n", cfg.Workbook.DateColumn)
		fmt.Printf("workbook.hours_column: %s\n", cfg.Workbook.HoursColumn)
		fmt.Printf("workbook.note_column: %s\n", cfg.Workbook.NoteColumn)
		fmt.Printf("extract.home_note: %s\n", cfg.Extract.HomeNote)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
