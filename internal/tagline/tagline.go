// Package tagline fetches the short welcome sentence shown under the header.
//
// One attempt is made per request. Every failure (no generator, transport error,
// quota, empty or blank text, timeout) turns into the mode's fallback sentence;
// nothing is returned to the caller as an error.
package tagline

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"bemali/internal/metrics"
)

const (
	// DefaultTemperature is the sampling temperature sent with every prompt.
	DefaultTemperature float32 = 0.7
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 10 * time.Second
)

// Outcome labels for metrics and logs.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
)

var (
	// ErrNoAPIKey means no text-generation credentials were configured.
	ErrNoAPIKey = errors.New("no API key configured")
	// ErrEmptyResponse means the service answered with no usable text.
	ErrEmptyResponse = errors.New("empty tagline")
	// ErrNoGenerator means the fetcher has no collaborator to call.
	ErrNoGenerator = errors.New("no tagline generator")
)

// Generator is the text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Request is one tagline attempt for a mode.
type Request struct {
	ID       uint64
	Mode     string
	Prompt   string
	Fallback string

	ctx context.Context
}

// Result is the outcome of a Request. Text is always displayable.
type Result struct {
	Request  Request
	Text     string
	Fallback bool
	Err      error
}

// Options tune a Fetcher. Zero values pick the defaults.
type Options struct {
	Temperature float32
	Timeout     time.Duration
	Tracer      oteltrace.Tracer
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
}

// Fetcher owns the tagline state: the current request, the loading flag and
// the text on display. Begin, Resolve and Cancel are called from the UI loop;
// Fetch may run on any goroutine.
type Fetcher struct {
	gen  Generator
	opts Options

	seq     uint64
	current uint64
	cancel  context.CancelFunc
	loading bool
	text    string
}

// NewFetcher returns a Fetcher calling gen. A nil gen always yields the fallback.
func NewFetcher(gen Generator, opts Options) *Fetcher {
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("tagline")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Fetcher{gen: gen, opts: opts}
}

// Begin starts a new request, superseding and cancelling any request in flight.
// Loading is true until the returned request is resolved.
func (f *Fetcher) Begin(parent context.Context, mode, prompt, fallback string) Request {
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	f.seq++
	f.current = f.seq
	f.cancel = cancel
	f.loading = true
	return Request{ID: f.seq, Mode: mode, Prompt: prompt, Fallback: fallback, ctx: ctx}
}

// Fetch performs the single attempt for req. It never fails: on any error the
// result carries the fallback text.
func (f *Fetcher) Fetch(req Request) Result {
	ctx := req.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	ctx, span := f.opts.Tracer.Start(ctx, "tagline.generate",
		oteltrace.WithAttributes(
			attribute.String("bemali.mode", req.Mode),
			attribute.Float64("bemali.temperature", float64(f.opts.Temperature)),
		),
	)
	defer span.End()

	text, err := f.generate(ctx, req.Prompt)
	res := Result{Request: req, Text: text}
	if err != nil {
		res.Text = req.Fallback
		res.Fallback = true
		res.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	outcome := OutcomeOK
	if res.Fallback {
		outcome = OutcomeFallback
	}
	span.SetAttributes(attribute.String("bemali.outcome", outcome))
	f.opts.Metrics.Tagline(req.Mode, outcome)
	if err != nil {
		f.opts.Logger.Warn("tagline fallback", zap.String("mode", req.Mode), zap.Error(err))
	} else {
		f.opts.Logger.Debug("tagline generated", zap.String("mode", req.Mode), zap.String("text", text))
	}
	return res
}

func (f *Fetcher) generate(ctx context.Context, prompt string) (string, error) {
	if f.gen == nil {
		return "", ErrNoGenerator
	}
	raw, err := f.gen.Generate(ctx, prompt, f.opts.Temperature)
	if err != nil {
		return "", err
	}
	text := Sanitize(raw)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Resolve applies res if it belongs to the current request. Results of
// superseded or cancelled requests are dropped. Loading clears exactly once.
func (f *Fetcher) Resolve(res Result) bool {
	if res.Request.ID == 0 || res.Request.ID != f.current {
		return false
	}
	f.current = 0
	f.loading = false
	f.text = res.Text
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	return true
}

// Cancel abandons the request in flight. Its result will be dropped.
func (f *Fetcher) Cancel() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.current = 0
	f.loading = false
}

// Loading reports whether a request is outstanding.
func (f *Fetcher) Loading() bool { return f.loading }

// Text returns the tagline on display.
func (f *Fetcher) Text() string { return f.text }

// Once runs a complete request synchronously and applies it.
func (f *Fetcher) Once(ctx context.Context, mode, prompt, fallback string) Result {
	res := f.Fetch(f.Begin(ctx, mode, prompt, fallback))
	f.Resolve(res)
	return res
}

const quoteChars = "\"'“”‘’«»`"

// Sanitize trims whitespace and strips surrounding quote characters.
func Sanitize(s string) string {
	for {
		t := strings.TrimSpace(strings.Trim(strings.TrimSpace(s), quoteChars))
		if t == s {
			return t
		}
		s = t
	}
}
