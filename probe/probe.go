// Package probe locates a runnable media-processing executable.
//
// A tool that can not be found is a normal outcome, represented by a Location without a path,
// never by an error returned to the caller.
package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/filesystem"
	"github.com/vidl-cli/vidl/log"
)

var (
	// ErrPathMissing means the explicit path is neither a file nor a directory.
	ErrPathMissing = errors.New("path is neither a file nor a directory")

	// ErrNotInPath means the system-wide lookup failed.
	ErrNotInPath = errors.New("not found in PATH")

	// ErrNotRunnable means the candidate did not answer a version query.
	ErrNotRunnable = errors.New("does not answer a version query")
)

// Origin records how a location was derived.
type Origin int

const (
	OriginNone Origin = iota
	OriginFile
	OriginDirectory
	OriginSystem
)

func (o Origin) String() string {
	switch o {
	case OriginFile:
		return "explicit-file"
	case OriginDirectory:
		return "explicit-dir"
	case OriginSystem:
		return "system"
	default:
		return "none"
	}
}

// Location is the resolved executable path, or its absence together with the reason.
type Location struct {
	Path   mo.Option[string]
	Origin Origin
	Reason error
}

// Found reports whether an invocable executable was resolved.
func (l Location) Found() bool {
	return l.Path.IsPresent()
}

func notFound(origin Origin, reason error) Location {
	return Location{Path: mo.None[string](), Origin: origin, Reason: reason}
}

// Runner executes name with args, discarding its output.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

// Prober resolves executables. The zero value is not usable, use New.
type Prober struct {
	fs       afero.Afero
	lookPath func(string) (string, error)
	run      Runner
	goos     string
}

// Option customises a Prober.
type Option func(*Prober)

// WithFs replaces the filesystem used to classify explicit paths.
func WithFs(fs afero.Afero) Option {
	return func(p *Prober) { p.fs = fs }
}

// WithLookPath replaces the PATH lookup.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(p *Prober) { p.lookPath = fn }
}

// WithRunner replaces the version query executor.
func WithRunner(run Runner) Option {
	return func(p *Prober) { p.run = run }
}

// WithGOOS overrides the platform used to pick the conventional executable name.
func WithGOOS(goos string) Option {
	return func(p *Prober) { p.goos = goos }
}

// New returns a Prober backed by the active filesystem, exec.LookPath and exec.
func New(opts ...Option) *Prober {
	p := &Prober{
		fs:       filesystem.API(),
		lookPath: exec.LookPath,
		run:      execRunner,
		goos:     runtime.GOOS,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExecutableName returns the platform-conventional file name for a tool.
func ExecutableName(goos, name string) string {
	if goos == constant.Windows {
		return name + ".exe"
	}
	return name
}

// Locate resolves ffmpeg. custom may point at the executable or at its directory;
// an empty custom searches PATH.
func (p *Prober) Locate(ctx context.Context, custom string) Location {
	if custom == "" {
		return p.Executable(ctx, constant.FFmpeg)
	}
	return p.Pinned(ctx, custom, constant.FFmpeg)
}

// Pinned resolves the tool called name at an explicit file or directory path.
func (p *Prober) Pinned(ctx context.Context, custom, name string) Location {
	candidate, origin, err := p.classify(custom, name)
	if err != nil {
		log.Warnf("%s path %q rejected: %s", name, custom, err)
		return notFound(OriginNone, err)
	}

	return p.verify(ctx, candidate, origin, versionFlag(name))
}

// Executable resolves a tool by name through PATH.
func (p *Prober) Executable(ctx context.Context, name string) Location {
	path, err := p.lookPath(ExecutableName(p.goos, name))
	if err != nil {
		log.Debugf("%s lookup failed: %s", name, err)
		return notFound(OriginSystem, fmt.Errorf("%s %w", name, ErrNotInPath))
	}

	return p.verify(ctx, path, OriginSystem, versionFlag(name))
}

// versionFlag is the argument that makes a tool print its version and exit.
func versionFlag(name string) string {
	switch name {
	case constant.FFmpeg, constant.FFprobe:
		return "-version"
	default:
		return "--version"
	}
}

func (p *Prober) classify(custom, name string) (string, Origin, error) {
	info, err := p.fs.Stat(custom)
	if err != nil {
		return "", OriginNone, fmt.Errorf("%s: %w", custom, ErrPathMissing)
	}

	candidate := custom
	origin := OriginFile
	if info.IsDir() {
		candidate = filepath.Join(custom, ExecutableName(p.goos, name))
		origin = OriginDirectory
	}

	// exec treats a bare name as a PATH lookup, so anchor explicit paths.
	if abs, err := filepath.Abs(candidate); err == nil {
		candidate = abs
	}

	return candidate, origin, nil
}

func (p *Prober) verify(ctx context.Context, candidate string, origin Origin, flag string) Location {
	if err := p.run(ctx, candidate, flag); err != nil {
		log.Warnf("%s failed version query: %s", candidate, err)
		return notFound(origin, fmt.Errorf("%s %w: %w", candidate, ErrNotRunnable, err))
	}

	log.Infof("resolved %s (%s)", candidate, origin)
	return Location{Path: mo.Some(candidate), Origin: origin}
}
