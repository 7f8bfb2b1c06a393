// Package progress provides sinks for metadata and progress events emitted during a download.
package progress

import "github.com/vidl-cli/vidl/extractor"

// Funcs adapts plain callbacks. Nil callbacks are skipped.
type Funcs struct {
	OnMetadata func(extractor.Metadata)
	OnProgress func(extractor.Event)
}

func (f Funcs) Metadata(meta extractor.Metadata) {
	if f.OnMetadata != nil {
		f.OnMetadata(meta)
	}
}

func (f Funcs) Progress(ev extractor.Event) {
	if f.OnProgress != nil {
		f.OnProgress(ev)
	}
}

// Discard drops everything.
var Discard = Funcs{}

// Update carries exactly one of Metadata or Event.
type Update struct {
	Metadata *extractor.Metadata
	Event    *extractor.Event
}

// Chan forwards updates to a channel for embedders that render on their own goroutine; the
// CLI renders directly through Console. Sends block until received, so the consumer must
// drain C until Close is called.
type Chan struct {
	C chan Update
}

// NewChan returns a Chan with the given buffer size.
func NewChan(buffer int) *Chan {
	return &Chan{C: make(chan Update, buffer)}
}

func (c *Chan) Metadata(meta extractor.Metadata) {
	c.C <- Update{Metadata: &meta}
}

func (c *Chan) Progress(ev extractor.Event) {
	c.C <- Update{Event: &ev}
}

// Close ends the stream. No method may be called afterwards.
func (c *Chan) Close() {
	close(c.C)
}
