package config

import (
	"strings"

	"github.com/apcamargo/pdf-converter/internal/env"
)

type Config struct {
	ENV       string
	Converter ConverterConfig
}

// ConverterConfig holds environment-derived defaults. CLI flags
// override every one of them.
type ConverterConfig struct {
	OutputDir string
	Scale     float64
	Quiet     bool
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		ENV: env.GetString("ENV", "development"),
		Converter: ConverterConfig{
			OutputDir: env.GetString("PDF_CONVERTER_OUTPUT_DIR", "."),
			Scale:     env.GetFloat64("PDF_CONVERTER_SCALE", 1.0),
			Quiet:     env.GetBool("PDF_CONVERTER_QUIET", false),
		},
	}
}
