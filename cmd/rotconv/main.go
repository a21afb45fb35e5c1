// rotconv converts rotation documents between encodings.
//
// Usage:
//
//	rotconv [flags] [input.yaml]
//
// The document is read from input.yaml, or stdin when no file is given,
// and the converted document is written to stdout or -out.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/rotkit/internal/config"
	"github.com/Faultbox/rotkit/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("config: %+v", cfg)

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to save config", zap.String("path", path), zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("saved config", zap.String("path", path))
	}

	if err := convertFiles(cfg, config.InputPath(), config.OutPath()); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// convertFiles opens the input and output streams and runs the conversion.
// Empty paths mean stdin and stdout.
func convertFiles(cfg *config.Config, inPath, outPath string) error {
	in := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	if outPath == "" {
		return run(cfg, in, os.Stdout)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := run(cfg, in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
