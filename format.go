package main

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jedib0t/go-pretty/v6/table"
)

// SummaryMode selects how FormatSummary renders.
type SummaryMode string

const (
	SummaryASCII    SummaryMode = "ascii"
	SummaryMarkdown SummaryMode = "markdown"
	SummaryNone     SummaryMode = "none"
)

// resultEnvelope is the JSON handed to mona's importer: the five buckets under
// "result" and the skip count beside them.
type resultEnvelope struct {
	Result  map[Position][]Artifact `json:"result"`
	Skipped int                     `json:"skipped"`
}

// EncodeResult serializes a conversion. mona pass-through imports are returned
// byte for byte.
func EncodeResult(r *ImportResult, pretty bool) ([]byte, error) {
	if r.Result == nil {
		return r.Raw, nil
	}
	env := resultEnvelope{Result: r.Result.Buckets, Skipped: r.Result.Skipped}
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = sonic.ConfigStd.MarshalIndent(env, "", "  ")
	} else {
		out, err = sonic.ConfigStd.Marshal(env)
	}
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return out, nil
}

// FormatSummary renders per-position counts and the skip total. It returns ""
// for SummaryNone and for mona pass-through imports.
func FormatSummary(r *ImportResult, mode SummaryMode) string {
	if mode == SummaryNone || r.Result == nil {
		return ""
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Position", "Artifacts"})
	for _, p := range positions {
		t.AppendRow(table.Row{p, len(r.Result.Buckets[p])})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"skipped", r.Result.Skipped})
	t.AppendFooter(table.Row{"total", r.Total()})

	var sb strings.Builder
	if mode == SummaryMarkdown {
		sb.WriteString(t.RenderMarkdown())
	} else {
		sb.WriteString(t.Render())
	}
	if r.Result.Skipped > 0 {
		fmt.Fprintf(&sb, "\n%.1f%% of artifacts were skipped", r.SkipRatio()*100)
	}
	return sb.String()
}
