// Package shortcode models the [fen][/fen] shortcode: a FEN string written
// in a page, plus attributes controlling how the board widget is drawn.
package shortcode

import (
	"regexp"
	"sync"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/config"
)

// Attribute names recognized by the shortcode.
const (
	AttrSquareMarkers   = "csl"
	AttrArrowMarkers    = "cal"
	AttrFlip            = "flip"
	AttrSquareSize      = "square_size"
	AttrShowCoordinates = "show_coordinates"
)

// Attributes are the raw key/value pairs of a shortcode.
type Attributes map[string]string

// WidgetArgs are the arguments handed to the chessboard widget.
type WidgetArgs struct {
	Position        string `json:"position"`
	SquareMarkers   string `json:"squareMarkers,omitempty"`
	ArrowMarkers    string `json:"arrowMarkers,omitempty"`
	Flip            *bool  `json:"flip,omitempty"`
	SquareSize      int    `json:"squareSize"`
	ShowCoordinates bool   `json:"showCoordinates"`
}

var (
	leadingNoise  = regexp.MustCompile(`(?i)^(?:\s|<br */>)+`)
	trailingNoise = regexp.MustCompile(`(?i)(?:\s|<br */>)+$`)
)

// FilterContent strips whitespace and <br/> tags that editors tend to leave
// around the FEN string.
func FilterContent(content string) string {
	content = leadingNoise.ReplaceAllString(content, "")
	return trailingNoise.ReplaceAllString(content, "")
}

// FEN is a parsed [fen] shortcode.
type FEN struct {
	attrs   Attributes
	content string
	widget  *config.WidgetConfig
	strict  bool

	once sync.Once
	args WidgetArgs
}

// Option configures a FEN shortcode.
type Option func(*FEN)

// WithWidgetConfig sets the square-size bounds and widget defaults.
func WithWidgetConfig(w *config.WidgetConfig) Option {
	return func(f *FEN) {
		if w != nil {
			f.widget = w
		}
	}
}

// WithStrict makes Position use strict FEN decoding.
func WithStrict(strict bool) Option {
	return func(f *FEN) {
		f.strict = strict
	}
}

// New creates the model for a shortcode with the given attributes and raw
// content. The content is filtered immediately.
func New(attrs Attributes, content string, opts ...Option) *FEN {
	f := &FEN{
		attrs:   attrs,
		content: FilterContent(content),
		widget:  config.NewWidgetConfig(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Content returns the filtered content.
func (f *FEN) Content() string {
	return f.content
}

// Attributes returns the raw attributes.
func (f *FEN) Attributes() Attributes {
	return f.attrs
}

// WidgetArgs returns the widget arguments. They are computed on first use.
func (f *FEN) WidgetArgs() WidgetArgs {
	f.once.Do(f.computeWidgetArgs)
	return f.args
}

func (f *FEN) computeWidgetArgs() {
	args := WidgetArgs{
		Position:        f.content,
		SquareSize:      f.widget.DefaultSquareSize,
		ShowCoordinates: f.widget.DefaultShowCoordinates,
	}

	if v, ok := f.attrs[AttrSquareMarkers]; ok {
		args.SquareMarkers = v
	}
	if v, ok := f.attrs[AttrArrowMarkers]; ok {
		args.ArrowMarkers = v
	}
	if v, ok := f.attrs[AttrFlip]; ok {
		if flip, valid := ValidateBoolean(v); valid {
			args.Flip = &flip
		}
	}
	if v, ok := f.attrs[AttrSquareSize]; ok {
		if size, valid := ValidateSquareSize(v, f.widget.MinSquareSize, f.widget.MaxSquareSize); valid {
			args.SquareSize = size
		}
	}
	if v, ok := f.attrs[AttrShowCoordinates]; ok {
		if show, valid := ValidateBoolean(v); valid {
			args.ShowCoordinates = show
		}
	}

	f.args = args
}

// Position decodes the content.
func (f *FEN) Position() (*chess.Position, chess.Counters, error) {
	if f.strict {
		return chess.NewPositionFromFENStrict(f.content)
	}
	return chess.NewPositionFromFEN(f.content)
}
