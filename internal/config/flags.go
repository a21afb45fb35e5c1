package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log-file", "", "Write logs to a rotating file")
	flagOutput     = flag.String("output", "", "Output encoding: quat, axis_angle, scaled_axis or euler")
	flagOrder      = flag.String("order", "", "Euler axis order for euler output, e.g. YXZ")
	flagUnit       = flag.String("unit", "", "Angle unit of the output: radians or degrees")
	flagCharset    = flag.String("charset", "", "Charset of the input document, e.g. euc-kr (default UTF-8)")
	flagCanonical  = new(optionalBool)
	flagOut        = flag.String("out", "", "Write the converted document to this file instead of stdout")
	flagSaveConfig = flag.String("save-config", "", "Write the effective configuration to this file")
)

func init() {
	flag.Var(flagCanonical, "canonical", "Write quaternions with w >= 0; -canonical=false keeps the computed sign")
}

// optionalBool is a boolean flag that remembers whether it was given, so
// that an explicit false can override a config file.
type optionalBool struct {
	set   bool
	value bool
}

func (b *optionalBool) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

// IsBoolFlag lets the flag package accept a bare -canonical.
func (b *optionalBool) IsBoolFlag() bool { return true }

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// OutPath returns the -out destination, or "" for stdout.
func OutPath() string {
	return *flagOut
}

// SaveConfigPath returns the -save-config destination.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// InputPath returns the positional input file, or "" for stdin.
func InputPath() string {
	return flag.Arg(0)
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagOutput != "" {
		cfg.Convert.Output = *flagOutput
	}
	if *flagOrder != "" {
		cfg.Convert.EulerOrder = *flagOrder
	}
	if *flagUnit != "" {
		cfg.Convert.AngleUnit = *flagUnit
	}
	if *flagCharset != "" {
		cfg.Convert.InputCharset = *flagCharset
	}
	if flagCanonical.set {
		cfg.Convert.Canonical = flagCanonical.value
	}
}
