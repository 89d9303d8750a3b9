package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rook-computer/appicon/internal/config"
	"github.com/rook-computer/appicon/internal/fonts"
	"github.com/rook-computer/appicon/internal/render"
)

// App runs one render-icon invocation.
type App struct {
	Config config.Config
	Logger Logger
	// Stdout receives the user-facing result line.
	Stdout io.Writer
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}, Stdout: os.Stdout}
}

// Run renders the icon, writes it to the configured output and, when a
// framebuffer device is configured, previews it. A failed preview is
// reported after the file has been written.
func (app *App) Run(ctx context.Context) error {
	cfg := app.Config
	engine, err := fonts.ParseEngine(cfg.FontEngine)
	if err != nil {
		return err
	}
	resolver := fonts.NewResolver(engine, cfg.SearchDirs())
	resolver.Logger = app.Logger

	renderer := render.NewRenderer(resolver)
	renderer.Geometry = render.ScaledGeometry(cfg.Size)
	renderer.Letter = cfg.Letter
	renderer.FontName = cfg.Font
	renderer.Logger = app.Logger

	start := time.Now()
	if cfg.Framebuffer == "" {
		if err := renderer.RenderAndSave(cfg.Output); err != nil {
			app.Logger.Errorf("app", "icon not saved: %v", err)
			return err
		}
		app.reportSaved(start)
		return nil
	}

	canvas, _, err := renderer.Render()
	if err == nil {
		err = render.WriteImage(cfg.Output, canvas)
	}
	if err != nil {
		app.Logger.Errorf("app", "icon not saved: %v", err)
		return err
	}
	app.reportSaved(start)

	opts := render.PreviewOptions{Device: cfg.Framebuffer, Hold: cfg.Hold, Logger: app.Logger}
	if err := render.Preview(ctx, opts, canvas); err != nil {
		app.Logger.Errorf("app", "preview failed: %v", err)
		return fmt.Errorf("preview on %s: %w", cfg.Framebuffer, err)
	}
	return nil
}

func (app *App) reportSaved(start time.Time) {
	app.Logger.Infof("app", "icon saved to %s in %s", app.Config.Output, time.Since(start).Round(time.Millisecond))
	if app.Stdout != nil {
		fmt.Fprintf(app.Stdout, "Icon created at: %s\n", app.Config.Output)
	}
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one timestamped line per entry to w.
type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// OpenLogger returns the logger cfg asks for. The returned close func is
// never nil.
func OpenLogger(cfg config.Config) (Logger, func() error, error) {
	noClose := func() error { return nil }
	if !cfg.Debug {
		return NoopLogger{}, noClose, nil
	}
	if cfg.LogFile == "" {
		return NewFileLogger(os.Stderr), noClose, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return NoopLogger{}, noClose, fmt.Errorf("open log file: %w", err)
	}
	return NewFileLogger(f), f.Close, nil
}
