// Package request turns user-facing download options into the option set consumed by the
// extraction library.
package request

import (
	"errors"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"github.com/vidl-cli/vidl/constant"
)

// Quality is best, worst or a pixel height. Anything else is carried verbatim.
type Quality string

var heightPattern = regexp.MustCompile(`^(\d+)[pP]?$`)

// ParseQuality normalises raw user input. "720p" becomes "720"; unrecognised values are
// passed through untouched and fail later inside the extraction library.
func ParseQuality(raw string) Quality {
	raw = strings.TrimSpace(raw)

	switch lower := strings.ToLower(raw); lower {
	case "", constant.QualityBest:
		return constant.QualityBest
	case constant.QualityWorst:
		return constant.QualityWorst
	}

	if m := heightPattern.FindStringSubmatch(raw); m != nil {
		return Quality(m[1])
	}
	return Quality(raw)
}

func (q Quality) IsBest() bool  { return q == constant.QualityBest }
func (q Quality) IsWorst() bool { return q == constant.QualityWorst }

// Request describes one download. It is built once from CLI input and not mutated.
type Request struct {
	URL           string
	OutputDir     string
	Quality       Quality
	Format        string
	AudioOnly     bool
	MediaToolPath mo.Option[string]
}

var (
	ErrMissingURL    = errors.New("url is required")
	ErrMissingFormat = errors.New("output format is required")
)

// Validate checks the fields the builder can not default.
func (r Request) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrMissingURL
	}
	if strings.TrimSpace(r.Format) == "" {
		return ErrMissingFormat
	}
	return nil
}
