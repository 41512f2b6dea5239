// Package app implements the application layer for helmvals.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/helmvals/internal/adapters/render" //nolint:depguard // Wired in app layer
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/helmvals/internal/engine/discovery"
	"go.trai.ch/helmvals/internal/engine/index"
	"go.trai.ch/helmvals/internal/engine/locate"
	"go.trai.ch/helmvals/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	fs      ports.FileSystem
	codec   ports.ValuesCodec
	loader  ports.SettingsLoader
	watcher ports.Watcher
	logger  ports.Logger
	color   func(w io.Writer) bool
}

// New creates a new App instance.
func New(
	fsys ports.FileSystem,
	codec ports.ValuesCodec,
	loader ports.SettingsLoader,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		fs:      fsys,
		codec:   codec,
		loader:  loader,
		watcher: watcher,
		logger:  log,
		color:   colorEnabled,
	}
}

// WithColor overrides terminal detection for plain output.
// This is primarily used for testing.
func (a *App) WithColor(enabled bool) *App {
	a.color = func(io.Writer) bool { return enabled }
	return a
}

// SettingsOverrides are settings given on the command line. Zero fields
// leave the loaded settings untouched.
type SettingsOverrides struct {
	ValueFiles    []string
	ShowFileNames *bool
	RootMarkers   []string
}

// QueryOptions configures a one-shot query.
type QueryOptions struct {
	// Cwd is the directory settings are looked up from.
	Cwd string
	// File is the inspected document. Relative paths are resolved against Cwd.
	File string
	// Line is the 0-based line of the cursor.
	Line int
	// Column is the 0-based character offset of the cursor.
	Column int
	// Text replaces the content of Line when set.
	Text *string
	// Format selects the output format. Empty selects the command default.
	Format   string
	Settings SettingsOverrides
}

// Hover writes the value of the expression under the cursor.
func (a *App) Hover(_ context.Context, w io.Writer, opts QueryOptions) error {
	format, err := render.ParseFormat(opts.Format, render.FormatMarkdown,
		render.FormatMarkdown, render.FormatPlain, render.FormatJSON)
	if err != nil {
		return err
	}

	q, err := a.prepare(w, opts, format)
	if err != nil {
		return err
	}

	result := q.session.engine.Hover(q.document, q.line, opts.Column)
	switch format {
	case render.FormatJSON:
		return writeJSON(w, q.session.hoverJSON(q.document, result))
	case render.FormatPlain:
		return writeText(w, q.session.renderer.HoverPlain(filepath.Dir(q.document), result))
	default:
		return writeText(w, q.session.renderer.HoverMarkdown(filepath.Dir(q.document), result))
	}
}

// Definition writes the locations declaring the expression under the cursor.
func (a *App) Definition(_ context.Context, w io.Writer, opts QueryOptions) error {
	format, err := render.ParseFormat(opts.Format, render.FormatPlain, render.FormatPlain, render.FormatJSON)
	if err != nil {
		return err
	}

	q, err := a.prepare(w, opts, format)
	if err != nil {
		return err
	}

	locations := q.session.engine.Definitions(q.document, q.line, opts.Column)
	if format == render.FormatJSON {
		return writeJSON(w, nonNil(locations))
	}
	return writeText(w, q.session.renderer.Locations(filepath.Dir(q.document), locations))
}

// Complete writes the completion candidates at the cursor.
func (a *App) Complete(_ context.Context, w io.Writer, opts QueryOptions) error {
	format, err := render.ParseFormat(opts.Format, render.FormatPlain, render.FormatPlain, render.FormatJSON)
	if err != nil {
		return err
	}

	q, err := a.prepare(w, opts, format)
	if err != nil {
		return err
	}

	items := q.session.engine.Completions(q.document, q.line, opts.Column)
	if format == render.FormatJSON {
		return writeJSON(w, q.session.completionsJSON(q.document, items))
	}
	return writeText(w, q.session.renderer.Completions(items))
}

// query is a prepared one-shot request.
type query struct {
	session  *session
	document string
	line     string
}

func (a *App) prepare(w io.Writer, opts QueryOptions, format render.Format) (*query, error) {
	if opts.File == "" {
		return nil, domain.ErrMissingDocument
	}

	s, err := a.newSession(opts.Cwd, opts.Settings, nil, format == render.FormatPlain && a.color(w))
	if err != nil {
		return nil, err
	}

	document := absPath(opts.Cwd, opts.File)
	line, err := a.documentLine(document, opts.Line, opts.Text)
	if err != nil {
		return nil, err
	}

	return &query{session: s, document: document, line: line}, nil
}

// session holds the engine built for one set of settings.
type session struct {
	index    *index.Index
	engine   *resolve.Engine
	renderer *render.Renderer
}

// newSession loads the settings in effect for cwd and assembles the engine.
// A nil watcher disables watch requests.
func (a *App) newSession(cwd string, overrides SettingsOverrides, watcher ports.Watcher, color bool) (*session, error) {
	settings, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	settings = overrides.apply(settings)

	finder := discovery.NewFinder(a.fs, a.logger, settings)
	ix := index.New(a.fs, a.codec, finder, watcher, a.logger)
	locator := locate.New(a.fs, a.codec, a.logger)

	a.logger.Debug(fmt.Sprintf("value file patterns: %v", settings.ValueFiles))

	return &session{
		index:    ix,
		engine:   resolve.New(finder, ix, locator),
		renderer: render.New(a.codec, render.Options{
			ShowFileNames: settings.ShowFileNames,
			Color:         color,
		}),
	}, nil
}

func (o SettingsOverrides) apply(settings domain.Settings) domain.Settings {
	if len(o.ValueFiles) > 0 {
		settings.ValueFiles = o.ValueFiles
	}
	if o.ShowFileNames != nil {
		settings.ShowFileNames = *o.ShowFileNames
	}
	if len(o.RootMarkers) > 0 {
		settings.RootMarkers = o.RootMarkers
	}
	return settings
}

func absPath(cwd, path string) string {
	if !filepath.IsAbs(path) && cwd != "" {
		path = filepath.Join(cwd, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// logModes is implemented by loggers whose verbosity and encoding can change at runtime.
type logModes interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// SetLogMode switches the logger to verbose and/or JSON output.
// Loggers without runtime modes are left untouched.
func (a *App) SetLogMode(verbose, jsonMode bool) {
	l, ok := a.logger.(logModes)
	if !ok {
		return
	}
	l.SetVerbose(verbose)
	l.SetJSON(jsonMode)
}
