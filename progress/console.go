package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/vidl-cli/vidl/extractor"
	"github.com/vidl-cli/vidl/style"
)

const barWidth = 20

// Console renders metadata as plain lines and download progress as one line rewritten
// in place with a carriage return.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	width   func() int
	bar     *bar.Model
	lastLen int
}

// ConsoleOption customises a Console.
type ConsoleOption func(*Console)

// WithBar draws a gradient bar in front of the progress text.
func WithBar() ConsoleOption {
	return func(c *Console) {
		m := bar.New(bar.WithDefaultGradient(), bar.WithWidth(barWidth), bar.WithoutPercentage())
		c.bar = &m
	}
}

// WithWidth supplies the terminal width used to truncate the progress line.
func WithWidth(width func() int) ConsoleOption {
	return func(c *Console) { c.width = width }
}

// NewConsole writes to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metadata prints the title, duration and view count.
func (c *Console) Metadata(meta extractor.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "\nDownloading: %s\n", style.Bold(meta.DisplayTitle()))
	fmt.Fprintf(c.w, "Duration: %s seconds\n", meta.DisplayDuration())
	fmt.Fprintf(c.w, "Views: %s\n", meta.DisplayViews())
}

// Progress rewrites the status line while downloading and announces hand-off to the
// media tool once a download phase finishes.
func (c *Console) Progress(ev extractor.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Status {
	case extractor.StatusDownloading:
		c.rewrite(c.line(ev))
	case extractor.StatusFinished:
		c.lastLen = 0
		fmt.Fprint(c.w, "\nProcessing video...\n")
	}
}

// Line formats the textual part of a progress event.
func Line(ev extractor.Event) string {
	total := "N/A"
	if ev.TotalBytesEstimate > 0 {
		total = humanize.Bytes(uint64(ev.TotalBytesEstimate))
	}

	speed := "N/A"
	if ev.Speed > 0 {
		speed = humanize.Bytes(uint64(ev.Speed)) + "/s"
	}

	return fmt.Sprintf("Downloading: %5.1f%% of ~%s at %s", ev.Percent, total, speed)
}

func (c *Console) line(ev extractor.Event) string {
	text := Line(ev)
	if c.bar != nil {
		text = c.bar.ViewAs(ev.Percent/100) + " " + text
	}

	if c.width != nil {
		if width := c.width(); width > 1 {
			text = truncate.String(text, uint(width-1))
		}
	}
	return text
}

func (c *Console) rewrite(text string) {
	n := ansi.PrintableRuneWidth(text)
	pad := ""
	if c.lastLen > n {
		pad = strings.Repeat(" ", c.lastLen-n)
	}
	c.lastLen = n

	fmt.Fprint(c.w, "\r"+text+pad)
}
