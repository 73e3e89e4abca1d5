/*
Copyright © 2025

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tsukin/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsukin",
	Short: "Build commute reimbursement summaries from monthly attendance workbooks.",
	Long: `tsukin reads a monthly attendance workbook (.xlsx), finds the sheet named
like 勤務表<N>月, and works out which days were spent commuting to the office:
rows with a date, logged hours, and no home-work note.

From those days it prints the reimbursement request line, collapsing runs of
consecutive days:

  【通勤】＠716円×4日（4/1～3,5）

The round-trip rate, sheet pattern, attendance block, and home-work marker all
come from configuration and can be adjusted without touching the tool.`,
	Example: `
  # Create configuration file
  tsukin config create

  # Print the reimbursement summary for a monthly workbook
  tsukin summary -i 勤務表2024.xlsx

  # Use a one-off rate without editing configuration
  tsukin summary -i 勤務表2024.xlsx --rate 980

  # Inspect which sheets the pattern matches
  tsukin sheets -i 勤務表2024.xlsx

  # Export the extracted commute days
  tsukin export -i 勤務表2024.xlsx -o commute-days.csv
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.tsukin.yaml, then ./.tsukin.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tsukin" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tsukin")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Defaults cover every setting, so a missing config file is not an error.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: tsukin config create")
	}
}
