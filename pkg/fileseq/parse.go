package fileseq

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/voidshard/cuesubmit/pkg/errors"
)

const (
	// maxParsedFrames caps how many frames a "[start-end]" label may expand to
	maxParsedFrames = 1000000
)

var (
	// shot.[0001-0100].exr
	reRange = regexp.MustCompile(`^(.*)\[(\d+)-(\d+)\](.*)$`)

	// shot.####.exr shot.@@@@.exr shot.%04d.exr shot.$F4.exr
	rePadding = regexp.MustCompile(`^(.*?)(#+|@+|%(\d*)d|\$F(\d*))([^#@%$]*)$`)
)

// Parse resolves a single path string to a FileSequence.
//
// Understood forms are
//   - a literal numbered path: shot.0001.exr (one member, zfill 4)
//   - a padding pattern, one digit per character: shot.####.exr or shot.@@@@.exr
//   - printf & houdini style padding: shot.%04d.exr shot.$F4.exr
//   - a collapsed range as written by FormatAsRangeLabel: shot.[0001-0100].exr
//   - a path with no frame token: shot.exr (one member, zfill 0)
//
// Padding patterns carry a width but no concrete frames.
func Parse(path string) (*FileSequence, error) {
	if path == "" {
		return nil, fmt.Errorf("%w empty path", errors.ErrInvalidArg)
	}
	dirname, name := filepath.Split(path)

	if m := reRange.FindStringSubmatch(name); m != nil {
		return parseRange(path, dirname, m[1], m[2], m[3], m[4])
	}

	if m := rePadding.FindStringSubmatch(name); m != nil {
		width, err := paddingWidth(m[2], m[3], m[4])
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", errors.ErrInvalidArg, path, err)
		}
		return &FileSequence{
			dirname:   dirname,
			basename:  m[1],
			extension: m[5],
			zfill:     width,
			hasFrames: true,
			frames:    []int{},
			paths:     []string{},
		}, nil
	}

	seqs := GroupIntoSequences([]string{path})
	return seqs[0], nil
}

func parseRange(path, dirname, basename, start, end, extension string) (*FileSequence, error) {
	first, err := strconv.Atoi(start)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", errors.ErrInvalidArg, path, err)
	}
	last, err := strconv.Atoi(end)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", errors.ErrInvalidArg, path, err)
	}
	if last < first {
		return nil, fmt.Errorf("%w %s: range end %d before start %d", errors.ErrInvalidArg, path, last, first)
	}
	if last-first >= maxParsedFrames {
		return nil, fmt.Errorf("%w %s: range exceeds %d frames", errors.ErrInvalidArg, path, maxParsedFrames)
	}

	seq := &FileSequence{
		dirname:   dirname,
		basename:  basename,
		extension: extension,
		zfill:     len(start),
		hasFrames: true,
		frames:    make([]int, 0, last-first+1),
		paths:     make([]string, 0, last-first+1),
	}
	for f := first; f <= last; f++ {
		seq.frames = append(seq.frames, f)
		seq.paths = append(seq.paths, seq.Template(seq.pad(f)))
	}
	return seq, nil
}

// paddingWidth returns the zfill implied by a padding token. Unsized printf & houdini
// tokens (%d, $F) mean no padding, ie. a width of 1.
func paddingWidth(token, printf, houdini string) (int, error) {
	switch token[0] {
	case '#', '@':
		return len(token), nil
	case '%':
		if printf == "" {
			return 1, nil
		}
		return strconv.Atoi(printf)
	default:
		if houdini == "" {
			return 1, nil
		}
		return strconv.Atoi(houdini)
	}
}
