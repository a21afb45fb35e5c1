package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/rotkit/internal/config"
	"github.com/Faultbox/rotkit/internal/logger"
	"github.com/Faultbox/rotkit/pkg/encoding"
	"github.com/Faultbox/rotkit/pkg/formats"
)

// run reads one rotation document from in and writes it to out in the
// configured encoding.
func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	target, err := cfg.Target()
	if err != nil {
		return err
	}
	opts, err := cfg.EncodeOptions()
	if err != nil {
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	data, err = encoding.ToUTF8(data, cfg.Convert.InputCharset)
	if err != nil {
		return err
	}
	doc, err := formats.ParseDocument(data)
	if err != nil {
		return err
	}

	quats, err := doc.Quats()
	if err != nil {
		return err
	}
	for i, q := range quats {
		enc, _ := doc.Rotations[i].Encoding()
		logger.Debug("rotation",
			zap.String("name", doc.Label(i)),
			zap.Stringer("from", enc),
			zap.Stringer("quat", q),
		)
	}

	converted, err := formats.Convert(doc, target, opts)
	if err != nil {
		return err
	}
	for i, r := range converted.Rotations {
		if r.Euler != nil && r.Euler.GimbalLocked {
			logger.Warn("gimbal lock, third euler angle set to 0",
				zap.String("name", converted.Label(i)),
				zap.Stringer("order", opts.Order),
			)
		}
	}
	encoded, err := converted.Marshal()
	if err != nil {
		return err
	}
	if _, err := out.Write(encoded); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Info("converted rotations",
		zap.Int("count", len(converted.Rotations)),
		zap.Stringer("to", target),
		zap.Stringer("unit", opts.Unit),
	)
	return nil
}
