// Package fonts resolves a named font file into a font.Face, falling back to
// a built-in face when the file is missing or cannot be parsed.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultName is the font requested when none is configured.
const DefaultName = "arial.ttf"

// DPI of 72 makes a point size equal to the em size in pixels.
const dpi = 72

// Engine selects the library that parses and rasterizes font files.
type Engine string

const (
	EngineOpenType Engine = "opentype"
	EngineFreeType Engine = "freetype"
)

func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case EngineOpenType, EngineFreeType:
		return e, nil
	case "":
		return EngineOpenType, nil
	default:
		return "", fmt.Errorf("unknown font engine %q (want %s or %s)", s, EngineOpenType, EngineFreeType)
	}
}

// Source tells where a resolved face came from.
type Source int

const (
	SourceNamed Source = iota
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceNamed:
		return "named"
	case SourceDefault:
		return "default"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

var ErrFontNotFound = errors.New("font not found")

// FormatError reports a font file the engine could not parse.
type FormatError struct {
	Path   string
	Engine Engine
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unsupported font format for %s engine: %v", e.Path, e.Engine, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Resolved is the outcome of a font lookup.
type Resolved struct {
	Face   font.Face
	Source Source
	// Path of the loaded file; empty for the default face.
	Path   string
	// Reason the default face was used; nil for SourceNamed.
	Reason error
}

// Resolver loads fonts by path or by file name from a list of directories.
type Resolver struct {
	Engine     Engine
	SearchDirs []string
	Logger     interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// NewResolver returns a resolver for engine. A nil searchDirs means the
// platform's system font directories.
func NewResolver(engine Engine, searchDirs []string) *Resolver {
	if searchDirs == nil {
		searchDirs = DefaultSearchDirs()
	}
	return &Resolver{Engine: engine, SearchDirs: searchDirs}
}

// Resolve loads name at size points. A missing or unparseable font yields
// the default face with Reason set; other failures are returned as errors.
func (r *Resolver) Resolve(name string, size float64) (Resolved, error) {
	path, err := r.Find(name)
	if err != nil {
		if errors.Is(err, ErrFontNotFound) {
			return r.fallback(size, err), nil
		}
		return Resolved{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r.fallback(size, fmt.Errorf("%w: %s", ErrFontNotFound, path)), nil
		}
		return Resolved{}, fmt.Errorf("read font %s: %w", path, err)
	}

	face, err := r.newFace(data, size)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			formatErr.Path = path
			return r.fallback(size, formatErr), nil
		}
		return Resolved{}, err
	}
	if r.Logger != nil {
		r.Logger.Infof("font", "loaded %s with %s engine at %gpt", path, r.engine(), size)
	}
	return Resolved{Face: face, Source: SourceNamed, Path: path}, nil
}

func (r *Resolver) engine() Engine {
	if r.Engine == "" {
		return EngineOpenType
	}
	return r.Engine
}

func (r *Resolver) newFace(data []byte, size float64) (font.Face, error) {
	switch engine := r.engine(); engine {
	case EngineOpenType:
		fnt, err := opentype.Parse(data)
		if err != nil {
			return nil, &FormatError{Engine: engine, Err: err}
		}
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: dpi, Hinting: font.HintingFull})
		if err != nil {
			return nil, &FormatError{Engine: engine, Err: err}
		}
		return face, nil
	case EngineFreeType:
		// truetype.Parse only reports FormatError and UnsupportedError.
		fnt, err := truetype.Parse(data)
		if err != nil {
			return nil, &FormatError{Engine: engine, Err: err}
		}
		return truetype.NewFace(fnt, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull}), nil
	default:
		return nil, fmt.Errorf("unknown font engine %q", engine)
	}
}

// fallback builds the built-in face. Go Regular ships inside x/image, so the
// bitmap face is only reached if that cannot be built.
func (r *Resolver) fallback(size float64, reason error) Resolved {
	if r.Logger != nil {
		r.Logger.Infof("font", "using default font: %v", reason)
	}
	face, err := r.newFace(goregular.TTF, size)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("font", "default font failed, using basicfont: %v", err)
		}
		face = basicfont.Face7x13
	}
	return Resolved{Face: face, Source: SourceDefault, Reason: reason}
}
