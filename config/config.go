package config

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyRateRoundTripYen     = "rate.round_trip_yen"
	KeyWorkbookSheetPattern = "workbook.sheet_pattern"
	KeyWorkbookFirstRow     = "workbook.first_row"
	KeyWorkbookLastRow      = "workbook.last_row"
	KeyWorkbookDateColumn   = "workbook.date_column"
	KeyWorkbookHoursColumn  = "workbook.hours_column"
	KeyWorkbookNoteColumn   = "workbook.note_column"
	KeyExtractHomeNote      = "extract.home_note"
)

type Config struct {
	Rate     RateConfig     `mapstructure:"rate" validate:"required"`
	Workbook WorkbookConfig `mapstructure:"workbook" validate:"required"`
	Extract  ExtractConfig  `mapstructure:"extract"`
}

type RateConfig struct {
	RoundTripYen int `mapstructure:"round_trip_yen" validate:"required,gt=0"`
}

type WorkbookConfig struct {
	SheetPattern string `mapstructure:"sheet_pattern" validate:"required"`
	FirstRow     int    `mapstructure:"first_row" validate:"required,gt=0"`
	LastRow      int    `mapstructure:"last_row" validate:"required,gt=0"`
	DateColumn   string `mapstructure:"date_column" validate:"required"`
	HoursColumn  string `mapstructure:"hours_column" validate:"required"`
	NoteColumn   string `mapstructure:"note_column" validate:"required"`
}

type ExtractConfig struct {
	HomeNote string `mapstructure:"home_note"`
}

// Pattern compiles the configured sheet-name pattern.
func (w WorkbookConfig) Pattern() (*regexp.Regexp, error) {
	pattern, err := regexp.Compile(w.SheetPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook.sheet_pattern %q: %w", w.SheetPattern, err)
	}
	return pattern, nil
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# tsukin configuration
rate:
  round_trip_yen: 716

workbook:
  sheet_pattern: "^勤務表\\d+月$"
  first_row: 19
  last_row: 49
  date_column: "A"
  hours_column: "F"
  note_column: "O"

extract:
  home_note: "自宅作業"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateWorkbook(cfg.Workbook); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRateRoundTripYen, 716)
	v.SetDefault(KeyWorkbookSheetPattern, `^勤務表\d+月$`)
	v.SetDefault(KeyWorkbookFirstRow, 19)
	v.SetDefault(KeyWorkbookLastRow, 49)
	v.SetDefault(KeyWorkbookDateColumn, "A")
	v.SetDefault(KeyWorkbookHoursColumn, "F")
	v.SetDefault(KeyWorkbookNoteColumn, "O")
	v.SetDefault(KeyExtractHomeNote, "自宅作業")
}

func validateWorkbook(workbook WorkbookConfig) error {
	if _, err := workbook.Pattern(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if workbook.LastRow < workbook.FirstRow {
		return fmt.Errorf(
			"validation failed: workbook.last_row (%d) must not precede workbook.first_row (%d)",
			workbook.LastRow,
			workbook.FirstRow,
		)
	}
	for key, column := range map[string]string{
		"workbook.date_column":  workbook.DateColumn,
		"workbook.hours_column": workbook.HoursColumn,
		"workbook.note_column":  workbook.NoteColumn,
	} {
		if !isColumnName(column) {
			return fmt.Errorf("validation failed: %s %q is not a column name", key, column)
		}
	}
	return nil
}

func isColumnName(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
