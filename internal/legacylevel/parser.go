// Package legacylevel reads the original plain-text level description files
// (niveau<N>.txt) and converts them into config.LevelConfig values.
//
// The format is line oriented. Every value block is preceded by a label line
// whose content is ignored:
//
//	<title>
//	<label>
//	x1,y1,x2,y2          bounds rectangle
//	<label>
//	n                    vertical wall count
//	<label>
//	x1,y1,x2,y2          n lines
//	<label>
//	m                    horizontal wall count
//	<label>
//	x1,y1,x2,y2          m lines
//	<label>
//	x,y                  launcher origin
//	<label>
//	x,y                  target lower-left corner
//	<label>
//	size                 target side length
package legacylevel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/decker502/bongallistix/pkg/config"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed legacy level")

// FileName returns the legacy file name for a level index, e.g. "niveau3.txt".
func FileName(index int) string {
	return fmt.Sprintf("niveau%d.txt", index)
}

// Load reads and parses a legacy level file from fsys.
//
// Parameters:
//   - fsys: file system holding the level files (embedded data or os.DirFS)
//   - path: path of the file inside fsys
//   - id: level ID assigned to the result (the file format carries none)
func Load(fsys fs.FS, path, id string) (*config.LevelConfig, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy level %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a legacy level description from r.
//
// The result is validated with the same rules as YAML levels, so a legacy file
// describing a slanted "vertical" wall is rejected.
func Parse(r io.Reader, id string) (*config.LevelConfig, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}

	title, err := lr.next("title")
	if err != nil {
		return nil, err
	}
	if _, err := lr.next("bounds label"); err != nil {
		return nil, err
	}

	bounds, err := lr.ints("bounds", 4)
	if err != nil {
		return nil, err
	}

	vertical, err := lr.segmentBlock("vertical walls")
	if err != nil {
		return nil, err
	}
	horizontal, err := lr.segmentBlock("horizontal walls")
	if err != nil {
		return nil, err
	}

	if _, err := lr.next("launcher label"); err != nil {
		return nil, err
	}
	launcher, err := lr.ints("launcher", 2)
	if err != nil {
		return nil, err
	}

	if _, err := lr.next("target label"); err != nil {
		return nil, err
	}
	target, err := lr.ints("target", 2)
	if err != nil {
		return nil, err
	}

	if _, err := lr.next("target size label"); err != nil {
		return nil, err
	}
	size, err := lr.ints("target size", 1)
	if err != nil {
		return nil, err
	}

	cfg := &config.LevelConfig{
		ID:          id,
		Description: strings.TrimSpace(title),
		Bounds: config.RectConfig{
			X0: float64(bounds[0]), Y0: float64(bounds[1]),
			X1: float64(bounds[2]), Y1: float64(bounds[3]),
		},
		VerticalWalls:   vertical,
		HorizontalWalls: horizontal,
		Launcher:        config.PointConfig{X: float64(launcher[0]), Y: float64(launcher[1])},
		Target: config.TargetConfig{
			X:    float64(target[0]),
			Y:    float64(target[1]),
			Size: float64(size[0]),
		},
	}

	// 与 YAML 关卡走同一套默认值和校验
	if err := config.NormalizeLevelConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return cfg, nil
}

// lineReader tracks the current line number for error messages.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (lr *lineReader) next(what string) (string, error) {
	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrMalformed, what, err)
		}
		return "", fmt.Errorf("%w: unexpected end of file, expected %s at line %d", ErrMalformed, what, lr.line+1)
	}
	lr.line++
	return lr.scanner.Text(), nil
}

func (lr *lineReader) ints(what string, n int) ([]int, error) {
	text, err := lr.next(what)
	if err != nil {
		return nil, err
	}
	values, err := parseInts(text, n)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d (%s): %v", ErrMalformed, lr.line, what, err)
	}
	return values, nil
}

// segmentBlock reads "<label> / count / <label> / count segment lines".
func (lr *lineReader) segmentBlock(what string) ([]config.SegmentConfig, error) {
	if _, err := lr.next(what + " count label"); err != nil {
		return nil, err
	}
	count, err := lr.ints(what+" count", 1)
	if err != nil {
		return nil, err
	}
	if count[0] < 0 {
		return nil, fmt.Errorf("%w: line %d: negative %s count %d", ErrMalformed, lr.line, what, count[0])
	}
	if _, err := lr.next(what + " label"); err != nil {
		return nil, err
	}

	segments := make([]config.SegmentConfig, 0, count[0])
	for i := 0; i < count[0]; i++ {
		v, err := lr.ints(fmt.Sprintf("%s[%d]", what, i), 4)
		if err != nil {
			return nil, err
		}
		segments = append(segments, config.SegmentConfig{
			float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]),
		})
	}
	return segments, nil
}

// parseInts reads n comma separated integers from the start of text.
// Text after the last expected integer is ignored.
func parseInts(text string, n int) ([]int, error) {
	fields := strings.SplitN(text, ",", n)
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d comma separated integers, got %q", n, text)
	}

	values := make([]int, n)
	for i, f := range fields {
		v, err := leadingInt(f)
		if err != nil {
			return nil, fmt.Errorf("field %d of %q: %w", i+1, text, err)
		}
		values[i] = v
	}
	return values, nil
}

// leadingInt parses the optionally signed integer at the start of s,
// skipping leading whitespace.
func leadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return strconv.Atoi(s[:end])
}
