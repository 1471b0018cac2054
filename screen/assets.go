package screen

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"skyraid/game"
	"skyraid/observability"
)

//go:embed assets/*.svg
var assetFS embed.FS

// spriteSize is the pixel size each sprite is rasterised at
var spriteSize = map[string][2]int{
	"player1":      {50, 60},
	"player2":      {50, 60},
	"enemy_small":  {32, 32},
	"enemy_medium": {40, 40},
	"enemy_large":  {52, 52},
	"boss":         {120, 80},
}

// Assets caches the rasterised sprites. A sprite that failed to load is
// absent and the renderer draws a flat rectangle instead.
type Assets struct {
	sprites map[string]*ebiten.Image
	log     observability.Logger
}

// LoadAssets rasterises every embedded SVG. Set DEBUG_SPRITES=1 to also write them out as PNG.
func LoadAssets(log observability.Logger) *Assets {
	a := &Assets{sprites: make(map[string]*ebiten.Image, len(spriteSize)), log: log}
	debug := os.Getenv("DEBUG_SPRITES") == "1"
	for name, size := range spriteSize {
		img, err := loadSVG(name, size[0], size[1])
		if err != nil {
			log.Warnf("sprite %s unavailable, using fallback: %v", name, err)
			continue
		}
		a.sprites[name] = ebiten.NewImageFromImage(img)
		if debug {
			if err := saveDebugPNG(img, "debug_"+name+".png"); err != nil {
				log.Warnf("debug sprite %s: %v", name, err)
			}
		}
	}
	return a
}

func loadSVG(name string, w, h int) (image.Image, error) {
	data, err := assetFS.ReadFile("assets/" + name + ".svg")
	if err != nil {
		return nil, err
	}
	return svgToImage(data, w, h)
}

// svgToImage rasterises SVG data into a w x h RGBA image
func svgToImage(data []byte, w, h int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

func saveDebugPNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// Sprite returns the named sprite, or nil when it is unavailable
func (a *Assets) Sprite(name string) *ebiten.Image {
	if a == nil {
		return nil
	}
	return a.sprites[name]
}

// PlayerSprite returns the sprite for player id (1 or 2)
func (a *Assets) PlayerSprite(id int) *ebiten.Image {
	return a.Sprite(fmt.Sprintf("player%d", id))
}

// EnemySprite returns the sprite for an enemy kind
func (a *Assets) EnemySprite(kind game.EnemyKind) *ebiten.Image {
	return a.Sprite("enemy_" + string(kind))
}

// Close releases the GPU images
func (a *Assets) Close() {
	if a == nil {
		return
	}
	for name, img := range a.sprites {
		img.Deallocate()
		delete(a.sprites, name)
	}
}
