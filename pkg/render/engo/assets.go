// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"
)

// AssetManager handles loading and managing sprites. All textures are
// generated in memory; there are no asset files to ship.
type AssetManager struct {
	// Lander sprites keyed by engine state
	landerIdle    common.Drawable
	landerThrust  common.Drawable
	landerCrashed common.Drawable

	// UI textures
	backgroundTexture common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// LoadAssets builds all generated textures.
func (am *AssetManager) LoadAssets() error {
	if err := am.loadLanderSprites(); err != nil {
		return err
	}
	return am.loadUIAssets()
}

// loadLanderSprites creates the vehicle sprites. The pattern is a
// capsule with legs at a 10x15 grid, scaled up by the space component.
func (am *AssetManager) loadLanderSprites() error {
	body := [][]int{
		{0, 0, 0, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 0, 1, 1, 1, 1, 0, 1, 0},
		{0, 1, 0, 1, 1, 1, 1, 0, 1, 0},
		{1, 1, 0, 0, 1, 1, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	thrust := make([][]int, len(body))
	for i, row := range body {
		thrust[i] = append([]int(nil), row...)
	}
	// Exhaust plume under the engine bell.
	thrust[11] = []int{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}
	thrust[12] = []int{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}
	thrust[13] = []int{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}
	thrust[14] = []int{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}

	am.landerIdle = am.createSprite(10, 15, body, color.RGBA{220, 220, 220, 255})
	am.landerThrust = am.createSprite(10, 15, thrust, color.RGBA{255, 200, 80, 255})
	am.landerCrashed = am.createSprite(10, 15, body, color.RGBA{180, 60, 60, 255})

	return nil
}

// loadUIAssets builds the starfield background texture.
func (am *AssetManager) loadUIAssets() error {
	backgroundPattern := make([][]int, 64)
	for i := range backgroundPattern {
		backgroundPattern[i] = make([]int, 64)
		if i%8 == 0 && (i/8)%3 == 0 {
			backgroundPattern[i][i%64] = 1
		}
	}

	am.backgroundTexture = am.createSprite(64, 64, backgroundPattern,
		color.RGBA{255, 255, 255, 255})

	return nil
}

// createSprite creates a texture from a 2D pixel pattern.
func (am *AssetManager) createSprite(width, height int, pattern [][]int, fill color.RGBA) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height, fill)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int, fill color.RGBA) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, fill)
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgbaImg.Set(x, y, img.At(x, y))
		}
	}

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}

// GetLanderSprite returns the vehicle sprite for the current flight state.
func (am *AssetManager) GetLanderSprite(thrusting, crashed bool) common.Drawable {
	switch {
	case crashed:
		return am.landerCrashed
	case thrusting:
		return am.landerThrust
	default:
		return am.landerIdle
	}
}

// GetBackgroundTexture returns the background texture
func (am *AssetManager) GetBackgroundTexture() common.Drawable {
	return am.backgroundTexture
}
