package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/helmvals/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxRequestSize bounds a single request line.
const maxRequestSize = 1 << 20

const (
	methodHover      = "hover"
	methodDefinition = "definition"
	methodCompletion = "completion"
	methodInvalidate = "invalidate"
)

// ServeOptions configures the serve loop.
type ServeOptions struct {
	// Cwd is the directory settings are looked up from and relative
	// document paths are resolved against.
	Cwd      string
	Settings SettingsOverrides
}

// request is a single line of the serve protocol.
type request struct {
	ID        json.RawMessage `json:"id,omitempty"`
	Method    string          `json:"method"`
	File      string          `json:"file"`
	Line      int             `json:"line"`
	Character int             `json:"character"`
	Text      *string         `json:"text,omitempty"`
}

// response answers a request. Exactly one of Result and Error is set.
type response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// invalidateResult reports the number of files still cached after an invalidation.
type invalidateResult struct {
	Cached int `json:"cached"`
}

// Serve answers newline-delimited JSON requests read from in until in is
// exhausted or ctx is done. The index stays warm between requests and is
// invalidated as watched files change.
func (a *App) Serve(ctx context.Context, in io.Reader, out io.Writer, opts ServeOptions) error {
	if err := a.watcher.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}

	s, err := a.newSession(opts.Cwd, opts.Settings, a.watcher, false)
	if err != nil {
		a.stopWatcher()
		return err
	}

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		s.index.Invalidate(paths...)
		a.logger.Debug(fmt.Sprintf("invalidated %d changed file(s)", len(paths)))
	})

	g, ctx := errgroup.WithContext(ctx)

	// Watch Routine
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Request Routine
	g.Go(func() error {
		defer a.stopWatcher()
		return a.serveRequests(ctx, s, in, out, opts.Cwd)
	})

	err = g.Wait()
	debouncer.Flush()
	return err
}

func (a *App) stopWatcher() {
	if err := a.watcher.Stop(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to stop watcher: %v", err))
	}
}

// serveRequests runs the request loop. Reading happens on its own goroutine
// so that cancellation is not blocked by a pending read.
func (a *App) serveRequests(ctx context.Context, s *session, in io.Reader, out io.Writer, cwd string) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRequestSize)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return zerr.Wrap(err, "failed to read request")
					}
				default:
				}
				return nil
			}
			if len(line) == 0 {
				continue
			}
			if err := enc.Encode(a.handle(s, line, cwd)); err != nil {
				return zerr.Wrap(err, "failed to write response")
			}
		}
	}
}

// handle decodes and answers one request line. Failures become error responses.
func (a *App) handle(s *session, line []byte, cwd string) response {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		a.logger.Debug(fmt.Sprintf("malformed request: %v", err))
		return response{Error: domain.ErrMalformedRequest.Error()}
	}

	result, err := a.dispatch(s, req, cwd)
	if err != nil {
		return response{ID: req.ID, Error: err.Error()}
	}

	data, err := json.Marshal(result)
	if err != nil {
		return response{ID: req.ID, Error: err.Error()}
	}
	return response{ID: req.ID, Result: data}
}

func (a *App) dispatch(s *session, req request, cwd string) (any, error) {
	if req.Method == methodInvalidate {
		if req.File != "" {
			s.index.Invalidate(absPath(cwd, req.File))
		}
		return invalidateResult{Cached: s.index.Len()}, nil
	}

	if req.File == "" {
		return nil, domain.ErrMissingDocument
	}
	document := absPath(cwd, req.File)

	var run func(line string) any
	switch req.Method {
	case methodHover:
		run = func(line string) any {
			return s.hoverJSON(document, s.engine.Hover(document, line, req.Character))
		}
	case methodDefinition:
		run = func(line string) any {
			return nonNil(s.engine.Definitions(document, line, req.Character))
		}
	case methodCompletion:
		run = func(line string) any {
			return s.completionsJSON(document, s.engine.Completions(document, line, req.Character))
		}
	default:
		return nil, zerr.With(domain.ErrUnknownMethod, "method", req.Method)
	}

	line, err := a.documentLine(document, req.Line, req.Text)
	if err != nil {
		return nil, err
	}
	return run(line), nil
}
