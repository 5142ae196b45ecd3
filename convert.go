package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

// Converter turns GOOD documents into mona's five position buckets.
type Converter struct {
	resolve MainStatResolver
	log     zerolog.Logger
	workers int
}

// Option configures a Converter.
type Option func(*Converter)

// WithResolver replaces the default main-stat table.
func WithResolver(r MainStatResolver) Option {
	return func(c *Converter) {
		if r != nil {
			c.resolve = r
		}
	}
}

// WithLogger sets where per-record rejections and the skip summary are reported.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) { c.log = l }
}

// WithWorkers validates records on up to n goroutines. Output order is unaffected.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.workers = n
		}
	}
}

// NewConverter returns a Converter using MainStatValue, a no-op logger and a
// single worker unless overridden.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		resolve: MainStatValue,
		log:     zerolog.Nop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type recordOutcome struct {
	artifact Artifact
	dropped  int
	err      error
}

// Convert maps every entry of doc's "artifacts" array. Rejected entries are
// counted in Skipped and never abort the batch. doc is expected to have been
// classified as FormatGood.
func (c *Converter) Convert(doc gjson.Result) *ConversionResult {
	records := doc.Get("artifacts")
	var items []gjson.Result
	if records.IsArray() {
		items = records.Array()
	} else if records.Exists() {
		c.log.Warn().Str("value", records.Raw).Msg("[GOOD import] artifacts is not an array, nothing to convert")
	}

	res := newConversionResult()
	for i, o := range c.mapAll(items) {
		if o.err != nil {
			res.Skipped++
			c.logRejection(o.err)
			continue
		}
		if o.dropped > 0 {
			c.log.Debug().Int("index", i).Int("dropped", o.dropped).Msg("[GOOD import] dropped unusable substats")
		}
		pos := o.artifact.Position
		res.Buckets[pos] = append(res.Buckets[pos], o.artifact)
	}

	if res.Skipped > 0 {
		c.log.Warn().
			Int("skipped", res.Skipped).
			Int("total", len(items)).
			Msgf("[GOOD import] %d artifact(s) skipped due to validation errors", res.Skipped)
	}
	return res
}

// mapAll validates items and returns one outcome per item, in input order.
func (c *Converter) mapAll(items []gjson.Result) []recordOutcome {
	out := make([]recordOutcome, len(items))
	one := func(i int) {
		p := newRecordParser(i, items[i])
		a, err := p.parse(c.resolve)
		out[i] = recordOutcome{artifact: a, dropped: p.dropped, err: err}
	}

	if c.workers <= 1 || len(items) < 2 {
		for i := range items {
			one(i)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i := range items {
		g.Go(func() error {
			one(i)
			return nil
		})
	}
	g.Wait() //nolint:errcheck
	return out
}

func (c *Converter) logRejection(err error) {
	var re *RecordError
	if !errors.As(err, &re) {
		c.log.Warn().Err(err).Msg("[GOOD import] skipping artifact")
		return
	}
	ev := c.log.Warn().Int("index", re.Index).Str("reason", re.Err.Error())
	if re.Field != "" {
		ev = ev.Str("field", re.Field).Str("value", re.Value)
	}
	ev.Msgf("[GOOD import] skipping artifact: %v", re.Err)
}
