// Package config handles rotconv configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/rotkit/internal/logger"
	"github.com/Faultbox/rotkit/pkg/encoding"
	"github.com/Faultbox/rotkit/pkg/formats"
	"github.com/Faultbox/rotkit/pkg/math"
)

// Config holds all rotconv settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig controls how documents are rewritten.
type ConvertConfig struct {
	Output     string `yaml:"output"`      // target encoding, e.g. "euler"
	EulerOrder string `yaml:"euler_order"` // axis order for euler output
	AngleUnit  string `yaml:"angle_unit"`  // unit of written angles
	Canonical  bool   `yaml:"canonical"`   // write quaternions with w >= 0

	InputCharset string `yaml:"input_charset"` // charset of input documents, "" for UTF-8
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Output:     "quat",
			EulerOrder: math.DefaultEulerRot.String(),
			AngleUnit:  "radians",
			Canonical:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	_, err := c.Target()
	_, orderErr := math.ParseEulerRot(c.Convert.EulerOrder)
	_, unitErr := formats.ParseAngleUnit(c.Convert.AngleUnit)
	_, charsetErr := encoding.Lookup(c.Convert.InputCharset)
	_, levelErr := logger.ParseLevel(c.Logging.Level)
	return multierr.Combine(err, orderErr, unitErr, charsetErr, levelErr)
}

// Target returns the configured output encoding.
func (c *Config) Target() (formats.Encoding, error) {
	enc, err := formats.ParseEncoding(c.Convert.Output)
	if err != nil {
		return formats.EncodingUnknown, err
	}
	if enc == formats.EncodingArc {
		return formats.EncodingUnknown, fmt.Errorf("%w: %v", formats.ErrInputOnlyEncoding, enc)
	}
	return enc, nil
}

// EncodeOptions converts the convert settings for formats.Encode.
func (c *Config) EncodeOptions() (formats.EncodeOptions, error) {
	order, err := math.ParseEulerRot(c.Convert.EulerOrder)
	if err != nil {
		return formats.EncodeOptions{}, err
	}
	unit, err := formats.ParseAngleUnit(c.Convert.AngleUnit)
	if err != nil {
		return formats.EncodeOptions{}, err
	}
	return formats.EncodeOptions{Order: order, Unit: unit, Canonical: c.Convert.Canonical}, nil
}
