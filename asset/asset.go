// Package asset loads the visual resources the loop cannot start without
package asset

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"

	"github.com/lixenwraith/blocksgame/parameter"
)

const (
	BackgroundFile = "background.png"
	TileFile       = "tile.png"
)

// ErrMissingAsset is wrapped by every load failure
var ErrMissingAsset = errors.New("missing asset")

//go:embed data/*.png
var embedded embed.FS

// Set holds the decoded resources
type Set struct {
	Background image.Image
	Tile       image.Image
}

// Embedded decodes the built-in resources
func Embedded() (*Set, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded assets: %w", err)
	}
	return Load(sub)
}

// Load decodes the background and tile from fsys
func Load(fsys fs.FS) (*Set, error) {
	bg, err := decode(fsys, BackgroundFile)
	if err != nil {
		return nil, err
	}
	tile, err := decode(fsys, TileFile)
	if err != nil {
		return nil, err
	}
	return &Set{Background: bg, Tile: tile}, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, name, err)
	}
	return img, nil
}

// Sprites derives one tinted tile per palette color
// Index 0 is nil (empty cell); index i carries palette[i-1] composited over the tile
// with alpha parameter.SpriteTintAlpha
func (s *Set) Sprites(palette []color.RGBA) []image.Image {
	sprites := make([]image.Image, len(palette)+1)
	b := s.Tile.Bounds()

	for i, c := range palette {
		dst := image.NewNRGBA(b)
		draw.Draw(dst, b, s.Tile, b.Min, draw.Src)

		tint := color.NRGBA{R: c.R, G: c.G, B: c.B, A: parameter.SpriteTintAlpha}
		draw.Draw(dst, b, image.NewUniform(tint), image.Point{}, draw.Over)

		sprites[i+1] = dst
	}
	return sprites
}
