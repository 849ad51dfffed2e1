// SPDX-License-Identifier: Unlicense OR MIT

// Package text measures text for layout.
package text

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"gioui.org/outline/f32"
	"gioui.org/outline/font"
)

// Shaper measures text set in the faces of a font collection.
//
// Measurements are cached and re-used if possible. A Shaper is safe
// for concurrent use.
type Shaper struct {
	faces []font.FontFace

	mu    sync.Mutex
	sized map[sizedKey]xfont.Face
	cache measureCache
}

// Parameters describe how a text is measured.
type Parameters struct {
	Font font.Font
	// Size is the font size in pixels per em. If zero, DefaultSize
	// is used.
	Size float32
	// MaxWidth is the width lines are wrapped to. Lines are broken
	// at Unicode line break opportunities only, so a single word may
	// exceed MaxWidth. Zero, negative and infinite widths disable
	// wrapping.
	MaxWidth float32
	// DeviceMetrics measures the ink bounds of the glyphs and the
	// ascent and descent of the lines instead of advances and line
	// heights.
	DeviceMetrics bool
}

type sizedKey struct {
	font font.Font
	size float32
}

// DefaultSize is the font size used when none is specified.
const DefaultSize = 16

// ErrNoFaces is returned when measuring with an empty collection.
var ErrNoFaces = errors.New("text: no font faces")

// NewShaper returns a shaper for the faces of collection. Fonts
// that match no face fall back to the first face.
func NewShaper(collection []font.FontFace) *Shaper {
	return &Shaper{
		faces: collection,
		sized: make(map[sizedKey]xfont.Face),
	}
}

// Measure returns the size of txt laid out with p. Lines are separated
// by '\n'; the empty text has zero size.
func (s *Shaper) Measure(p Parameters, txt string) (f32.Point, error) {
	if txt == "" {
		return f32.Point{}, nil
	}
	p = p.normalize()
	k := measureKey{
		font:          p.Font,
		size:          p.Size,
		maxWidth:      p.MaxWidth,
		deviceMetrics: p.DeviceMetrics,
		str:           txt,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sz, ok := s.cache.Get(k); ok {
		return sz, nil
	}
	face, err := s.face(p.Font, p.Size)
	if err != nil {
		return f32.Point{}, err
	}
	sz := measureLines(face, wrap(face, txt, p.MaxWidth), p.DeviceMetrics)
	s.cache.Put(k, sz)
	return sz, nil
}

// Lines returns txt broken into lines the way Measure breaks them.
func (s *Shaper) Lines(p Parameters, txt string) ([]string, error) {
	if txt == "" {
		return nil, nil
	}
	p = p.normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	face, err := s.face(p.Font, p.Size)
	if err != nil {
		return nil, err
	}
	return wrap(face, txt, p.MaxWidth), nil
}

// Metrics returns the metrics of the face matching f at size.
func (s *Shaper) Metrics(f font.Font, size float32) (xfont.Metrics, error) {
	p := Parameters{Font: f, Size: size}.normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	face, err := s.face(p.Font, p.Size)
	if err != nil {
		return xfont.Metrics{}, err
	}
	return face.Metrics(), nil
}

func (p Parameters) normalize() Parameters {
	if p.Size == 0 {
		p.Size = DefaultSize
	}
	if !(p.MaxWidth > 0) || math.IsInf(float64(p.MaxWidth), 1) {
		p.MaxWidth = 0
	}
	return p
}

// face returns the sized face for f. The caller must hold s.mu.
func (s *Shaper) face(f font.Font, size float32) (xfont.Face, error) {
	k := sizedKey{font: f, size: size}
	if face, ok := s.sized[k]; ok {
		return face, nil
	}
	ff, ok := font.Lookup(s.faces, f)
	if !ok {
		return nil, ErrNoFaces
	}
	face, err := ff.Face.Face(size)
	if err != nil {
		return nil, fmt.Errorf("text: %v at %vpx: %w", ff.Font.Typeface, size, err)
	}
	s.sized[k] = face
	return face, nil
}

// wrap splits txt into paragraphs and, if maxWidth is positive, breaks
// the paragraphs greedily at line break opportunities.
func wrap(face xfont.Face, txt string, maxWidth float32) []string {
	var lines []string
	var seg *segment.Segmenter
	for _, para := range strings.Split(txt, "\n") {
		para = strings.TrimSuffix(para, "\r")
		if maxWidth == 0 || para == "" {
			lines = append(lines, para)
			continue
		}
		if seg == nil {
			seg = segment.NewSegmenter(uax14.NewLineWrap())
		}
		seg.Init(strings.NewReader(para))
		var line string
		for seg.Next() {
			frag := seg.Text()
			if line != "" && advance(face, line+frag) > maxWidth {
				lines = append(lines, strings.TrimRight(line, " "))
				line = frag
				continue
			}
			line += frag
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// advance returns the width of s without trailing spaces.
func advance(face xfont.Face, s string) float32 {
	w := xfont.MeasureString(face, strings.TrimRight(s, " "))
	return float32(w.Ceil())
}

func measureLines(face xfont.Face, lines []string, deviceMetrics bool) f32.Point {
	var width fixed.Int26_6
	for _, l := range lines {
		var w fixed.Int26_6
		if deviceMetrics {
			b, _ := xfont.BoundString(face, l)
			w = b.Max.X - b.Min.X
		} else {
			w = xfont.MeasureString(face, l)
		}
		if w > width {
			width = w
		}
	}
	m := face.Metrics()
	lineHeight := m.Height
	if deviceMetrics {
		lineHeight = m.Ascent + m.Descent
	}
	height := lineHeight * fixed.Int26_6(len(lines))
	return f32.Point{X: float32(width.Ceil()), Y: float32(height.Ceil())}
}
