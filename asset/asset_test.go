package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEmbeddedAssetsDecode(t *testing.T) {
	set, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded failed: %v", err)
	}
	if set.Background == nil || set.Background.Bounds().Empty() {
		t.Error("Expected non-empty background")
	}
	if set.Tile == nil || set.Tile.Bounds().Dx() != 16 {
		t.Errorf("Expected 16px tile, got %v", set.Tile.Bounds())
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		BackgroundFile: {Data: encodePNG(t, solid(2, 2, color.White))},
	}
	_, err := Load(fsys)
	if !errors.Is(err, ErrMissingAsset) {
		t.Errorf("Expected ErrMissingAsset for absent tile, got %v", err)
	}
}

func TestLoadUndecodable(t *testing.T) {
	fsys := fstest.MapFS{
		BackgroundFile: {Data: []byte("not a png")},
		TileFile:       {Data: encodePNG(t, solid(2, 2, color.White))},
	}
	_, err := Load(fsys)
	if !errors.Is(err, ErrMissingAsset) {
		t.Errorf("Expected ErrMissingAsset for corrupt background, got %v", err)
	}
}

func TestSpritesTint(t *testing.T) {
	set := &Set{
		Background: solid(1, 1, color.Black),
		Tile:       solid(4, 4, color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
	}
	palette := []color.RGBA{
		{R: 255, A: 255},
		{B: 255, A: 255},
	}

	sprites := set.Sprites(palette)
	if len(sprites) != 3 {
		t.Fatalf("Expected 3 sprites, got %d", len(sprites))
	}
	if sprites[0] != nil {
		t.Error("Expected index 0 to be nil")
	}

	// 100 + (255-100)*63/255 ≈ 138
	r, g, b, a := sprites[1].At(1, 1).RGBA()
	if r>>8 < 135 || r>>8 > 141 {
		t.Errorf("Expected red ≈138, got %d", r>>8)
	}
	// 100*(255-63)/255 ≈ 75
	if g>>8 < 72 || g>>8 > 78 || b>>8 < 72 || b>>8 > 78 {
		t.Errorf("Expected green/blue ≈75, got %d/%d", g>>8, b>>8)
	}
	if a>>8 != 255 {
		t.Errorf("Expected opaque sprite, got alpha %d", a>>8)
	}

	_, _, b2, _ := sprites[2].At(0, 0).RGBA()
	if b2>>8 < 135 {
		t.Errorf("Expected blue tint on second sprite, got %d", b2>>8)
	}

	// Source tile untouched
	if r0, _, _, _ := set.Tile.At(1, 1).RGBA(); r0>>8 != 100 {
		t.Errorf("Expected source tile unchanged, got %d", r0>>8)
	}
}
