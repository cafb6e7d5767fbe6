package iconset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnknownShape = errors.New("unknown icon shape")
	ErrNoOutputDir  = errors.New("output directory not specified")
)

// Icon is one entry of the icon table.
type Icon struct {
	File  string
	Shape Shape
	Color color.NRGBA
}

// Active reports whether the icon is the selected-tab variant.
func (i Icon) Active() bool {
	return strings.HasSuffix(string(i.Shape), "-active")
}

// icons is the fixed generation order.
var icons = []Icon{
	{File: "home.png", Shape: ShapeHome, Color: Normal},
	{File: "home-active.png", Shape: ShapeHomeActive, Color: Active},
	{File: "member.png", Shape: ShapeMember, Color: Normal},
	{File: "member-active.png", Shape: ShapeMemberActive, Color: Active},
	{File: "activity.png", Shape: ShapeActivity, Color: Normal},
	{File: "activity-active.png", Shape: ShapeActivityActive, Color: Active},
}

// Icons returns a copy of the icon table in generation order.
func Icons() []Icon {
	out := make([]Icon, len(icons))
	copy(out, icons)
	return out
}

// Lookup finds an icon by shape name or file name, case-insensitively.
func Lookup(name string) (Icon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, icon := range icons {
		if string(icon.Shape) == name || icon.File == name {
			return icon, nil
		}
	}
	return Icon{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Render rasterizes a single icon.
func Render(icon Icon, opts Options) (*image.NRGBA, error) {
	paint, ok := recipes[icon.Shape]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, icon.Shape)
	}
	c := NewCanvas(opts)
	paint(c, icon.Color)
	return c.Image(), nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// ProgressCallback is called after each icon is written.
// current: 1-based index of the icon just written
// total: number of icons in the table
// path: file that was written
type ProgressCallback func(current, total int, path string)

// Result describes a finished generation run.
type Result struct {
	// Dir is the absolute output directory
	Dir string

	// Files lists written paths in generation order
	Files []string

	// TotalBytes is the combined size of the written PNGs
	TotalBytes int64
}

// Generate renders every icon into dir, creating it if needed and
// overwriting existing files.
func Generate(ctx context.Context, dir string, opts Options, onProgress ProgressCallback) (*Result, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrNoOutputDir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{Dir: absDir}
	for i, icon := range icons {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		path := filepath.Join(absDir, icon.File)
		size, err := writeIcon(path, icon, opts)
		if err != nil {
			return result, err
		}

		result.Files = append(result.Files, path)
		result.TotalBytes += size

		if onProgress != nil {
			onProgress(i+1, len(icons), path)
		}
	}

	return result, nil
}

// writeIcon renders icon and writes it to path, returning the file size.
func writeIcon(path string, icon Icon, opts Options) (int64, error) {
	img, err := Render(icon, opts)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", icon.File, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return int64(buf.Len()), nil
}
