package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON")
	ErrUnknownFormat = errors.New("neither a GOOD nor a mona document")
	ErrSkipRatio     = errors.New("too many artifacts skipped")
)

// ImportResult is the outcome of Import. For mona input Result is nil and Raw
// holds the untouched document.
type ImportResult struct {
	Format Format
	Result *ConversionResult
	Raw    []byte
}

// Total returns the number of GOOD records that were looked at.
func (r *ImportResult) Total() int {
	if r.Result == nil {
		return 0
	}
	return r.Result.Converted() + r.Result.Skipped
}

// SkipRatio returns skipped/total, 0 for an empty or mona import.
func (r *ImportResult) SkipRatio() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Result.Skipped) / float64(total)
}

// CheckSkipRatio returns ErrSkipRatio when more than limit of the records were
// rejected. limit <= 0 disables the check.
func (r *ImportResult) CheckSkipRatio(limit float64) error {
	if limit <= 0 {
		return nil
	}
	if ratio := r.SkipRatio(); ratio > limit {
		return fmt.Errorf("%w: %d of %d (%.0f%% > %.0f%%)",
			ErrSkipRatio, r.Result.Skipped, r.Total(), ratio*100, limit*100)
	}
	return nil
}

// Import detects the format of data and converts GOOD documents to mona.
// mona documents are passed through without touching the conversion pipeline.
func Import(data []byte, cfg Config, log zerolog.Logger) (*ImportResult, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)

	switch format := DetectFormat(doc); format {
	case FormatMona:
		log.Info().Msg("[GOOD import] document is already mona, passing through")
		return &ImportResult{Format: format, Raw: data}, nil
	case FormatGood:
		if cfg.Strict {
			if err := validateGoodEnvelope(data); err != nil {
				return nil, err
			}
		}
		conv := NewConverter(WithLogger(log), WithWorkers(cfg.Workers))
		return &ImportResult{Format: format, Result: conv.Convert(doc), Raw: data}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// ImportFile reads path and imports it.
func ImportFile(path string, cfg Config, log zerolog.Logger) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	res, err := Import(data, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return res, nil
}
