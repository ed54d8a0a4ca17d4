// fileseq groups file paths into numbered frame sequences & formats them for display.
package fileseq

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/voidshard/cuesubmit/pkg/errors"
)

// FileSequence is a set of paths that are identical except for a numeric frame token.
//
// A FileSequence is never mutated after it is built.
type FileSequence struct {
	dirname   string
	basename  string
	extension string

	// zfill is the number of digits every frame in this sequence is padded to.
	// Zero if the sequence has no frame token.
	zfill int

	// hasFrames is set if the path(s) carry a frame token (or padding pattern)
	hasFrames bool

	// frames & paths are kept in matching numeric order
	frames []int
	paths  []string
}

// Dirname returns the directory of the sequence, including the trailing separator.
func (s *FileSequence) Dirname() string {
	return s.dirname
}

// Basename returns the file name up to the frame token.
func (s *FileSequence) Basename() string {
	return s.basename
}

// Extension returns everything after the frame token, including the leading ".".
func (s *FileSequence) Extension() string {
	return s.extension
}

// Zfill returns the zero padding width of frame numbers in the sequence.
func (s *FileSequence) Zfill() int {
	return s.zfill
}

// HasFrames reports whether the sequence has a frame token at all.
func (s *FileSequence) HasFrames() bool {
	return s.hasFrames
}

// Len returns the number of member paths.
func (s *FileSequence) Len() int {
	return len(s.paths)
}

// Start returns the lowest frame number in the sequence.
func (s *FileSequence) Start() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[0]
}

// End returns the highest frame number in the sequence.
func (s *FileSequence) End() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1]
}

// Frames returns a copy of the frame numbers in numeric order.
func (s *FileSequence) Frames() []int {
	return append([]int{}, s.frames...)
}

// Paths returns a copy of the member paths in numeric order.
func (s *FileSequence) Paths() []string {
	return append([]string{}, s.paths...)
}

// Template returns dirname + basename + frame + extension.
//
// If the sequence has no frame token the path is returned unchanged.
func (s *FileSequence) Template(frame string) string {
	return s.dirname + s.TemplateBase(frame)
}

// TemplateBase is Template without the dirname.
func (s *FileSequence) TemplateBase(frame string) string {
	if !s.hasFrames {
		return s.basename + s.extension
	}
	return s.basename + frame + s.extension
}

// pad zero pads the given frame to this sequence's width.
func (s *FileSequence) pad(frame int) string {
	return fmt.Sprintf("%0*d", s.zfill, frame)
}

type groupKey struct {
	dirname   string
	basename  string
	extension string
	width     int // zero implies there is no frame token
}

type group struct {
	key    groupKey
	frames []int
	paths  []string
}

func (g *group) Len() int           { return len(g.paths) }
func (g *group) Less(i, j int) bool { return g.frames[i] < g.frames[j] }
func (g *group) Swap(i, j int) {
	g.frames[i], g.frames[j] = g.frames[j], g.frames[i]
	g.paths[i], g.paths[j] = g.paths[j], g.paths[i]
}

// GroupIntoSequences partitions paths into FileSequences.
//
// Paths are grouped by directory, basename & extension, then split again by the digit
// width of their frame token; paths whose frame tokens differ in width never share a
// sequence. Paths without a frame token each form a single member sequence.
//
// Groups are returned in the order they were first seen, members in numeric order.
func GroupIntoSequences(paths []string) []*FileSequence {
	order := []groupKey{}
	groups := map[groupKey]*group{}
	seen := map[string]bool{}

	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		dirname, basename, token, extension := split(p)
		frame, ok := parseFrame(token)
		if !ok { // an overflowing digit run is not a frame token
			basename, token = basename+token, ""
		}

		key := groupKey{dirname: dirname, basename: basename, extension: extension, width: len(token)}
		g, ok := groups[key]
		if !ok {
			g = &group{key: key}
			groups[key] = g
			order = append(order, key)
		}
		g.frames = append(g.frames, frame)
		g.paths = append(g.paths, p)
	}

	out := make([]*FileSequence, 0, len(order))
	for _, key := range order {
		g := groups[key]
		sort.Stable(g)
		out = append(out, &FileSequence{
			dirname:   key.dirname,
			basename:  key.basename,
			extension: key.extension,
			zfill:     key.width,
			hasFrames: key.width > 0,
			frames:    g.frames,
			paths:     g.paths,
		})
	}
	return out
}

// FormatAsRangeLabel renders a sequence as a single collapsed path.
//
// A single member sequence is returned verbatim, otherwise the frames are written
// as "[start-end]" in place of the frame token, eg. /tmp/shot.[0001-0100].exr
func FormatAsRangeLabel(seq *FileSequence) (string, error) {
	if seq == nil || len(seq.paths) == 0 {
		return "", errors.ErrEmptySequence
	}
	if len(seq.paths) == 1 {
		return seq.paths[0], nil
	}
	return fmt.Sprintf(
		"%s%s[%s-%s]%s",
		seq.dirname, seq.basename, seq.pad(seq.Start()), seq.pad(seq.End()), seq.extension,
	), nil
}

// FormatAsExpandedPaths returns every member path in numeric order.
func FormatAsExpandedPaths(seq *FileSequence) []string {
	if seq == nil {
		return []string{}
	}
	return seq.Paths()
}

// FormatPaths groups the given paths and renders each group with FormatAsRangeLabel.
// The result is sorted.
func FormatPaths(paths []string) ([]string, error) {
	out := []string{}
	for _, seq := range GroupIntoSequences(paths) {
		label, err := FormatAsRangeLabel(seq)
		if err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}

// split breaks a path into dirname, basename, frame token & extension.
//
// The extension is the run of trailing dot components that each contain a letter
// (so ".tar.gz" but not ".0001"), the frame token the trailing digits before it.
func split(p string) (string, string, string, string) {
	dirname, name := filepath.Split(p)
	extension := trailingExtension(name)
	stem := name[:len(name)-len(extension)]

	i := len(stem)
	for i > 0 && isDigit(stem[i-1]) {
		i--
	}
	return dirname, stem[:i], stem[i:], extension
}

func trailingExtension(name string) string {
	rest := name
	ext := ""
	for {
		idx := strings.LastIndex(rest, ".")
		if idx < 0 {
			return ext
		}
		comp := rest[idx+1:]
		if !hasLetter(comp) {
			return ext
		}
		ext = rest[idx:] + ext
		rest = rest[:idx]
	}
}

func parseFrame(token string) (int, bool) {
	if token == "" {
		return 0, true
	}
	i, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return i, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}
