// Package download runs one extraction attempt: metadata first, then the media itself,
// and classifies how it ended.
package download

import (
	"context"
	"errors"

	"github.com/vidl-cli/vidl/extractor"
	"github.com/vidl-cli/vidl/log"
	"github.com/vidl-cli/vidl/request"
)

// Sink receives what the orchestrator learns while it runs.
type Sink interface {
	Metadata(extractor.Metadata)
	Progress(extractor.Event)
}

// Kind tells how a download attempt ended.
type Kind int

const (
	Success Kind = iota
	// ExtractionDownloadError is a failure the extraction library reported itself.
	ExtractionDownloadError
	// UnclassifiedError is anything else.
	UnclassifiedError
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case ExtractionDownloadError:
		return "download error"
	default:
		return "unexpected error"
	}
}

// Outcome is the result of Run. Metadata is nil when extraction never succeeded.
type Outcome struct {
	Kind     Kind
	Metadata *extractor.Metadata
	Err      error
}

// Succeeded reports whether the download completed.
func (o Outcome) Succeeded() bool {
	return o.Kind == Success
}

// Classify maps an error to the outcome kind it produces.
func Classify(err error) Kind {
	if err == nil {
		return Success
	}

	var de *extractor.DownloadError
	if errors.As(err, &de) {
		return ExtractionDownloadError
	}
	return UnclassifiedError
}

// Orchestrator drives a single download.
type Orchestrator struct {
	extractor extractor.Extractor
	sink      Sink
}

type discard struct{}

func (discard) Metadata(extractor.Metadata) {}
func (discard) Progress(extractor.Event)    {}

// New returns an orchestrator reporting to sink. A nil sink discards everything.
func New(ex extractor.Extractor, sink Sink) *Orchestrator {
	if sink == nil {
		sink = discard{}
	}
	return &Orchestrator{extractor: ex, sink: sink}
}

// Run extracts metadata, hands it to the sink, then downloads with progress forwarded to
// the sink. It never panics on extraction failures and always returns an Outcome.
func (o *Orchestrator) Run(ctx context.Context, url string, opts request.Options) Outcome {
	logger := log.WithFields(log.Fields{"url": url, "format": opts.Format})

	logger.Info("extracting metadata")
	meta, err := o.extractor.Extract(ctx, url, opts)
	if err != nil {
		return o.fail(nil, err)
	}

	o.sink.Metadata(meta)

	logger.WithField("title", meta.Title).Info("downloading")
	if err = o.extractor.Download(ctx, url, opts, o.sink.Progress); err != nil {
		return o.fail(&meta, err)
	}

	logger.Info("download finished")
	return Outcome{Kind: Success, Metadata: &meta}
}

func (o *Orchestrator) fail(meta *extractor.Metadata, err error) Outcome {
	out := Outcome{Kind: Classify(err), Metadata: meta, Err: err}
	log.WithFields(log.Fields{
		"kind":         out.Kind.String(),
		"tool_related": extractor.IsToolRelated(err),
	}).Error(err)
	return out
}
