package render

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/terrain"
)

// TerminalRenderer provides a simple ASCII rendering of the descent for
// terminals. The view maps the full terrain width onto the buffer, with
// the ground at the bottom and Y increasing upward in world space.
type TerminalRenderer struct {
	width  int
	height int
	buffer [][]rune

	// World extents in meters, captured from the terrain each frame.
	worldWidth  float64
	worldHeight float64

	hudLine string
}

// NewTerminalRenderer creates a terminal renderer with the specified
// buffer dimensions and the visible world height in meters.
func NewTerminalRenderer(width, height int, worldHeight float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:       width,
		height:      height,
		buffer:      buffer,
		worldHeight: worldHeight,
	}
}

// worldToScreen converts world coordinates in meters to buffer cells.
// Screen rows grow downward, so Y is flipped.
func (r *TerminalRenderer) worldToScreen(x, y float64) (int, int) {
	if r.worldWidth == 0 || r.worldHeight == 0 {
		return -1, -1
	}
	screenX := int(x / r.worldWidth * float64(r.width))
	screenY := r.height - 1 - int(y/r.worldHeight*float64(r.height))
	return screenX, screenY
}

func (r *TerminalRenderer) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
	r.hudLine = ""
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Print("\033[H\033[2J")

	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	for y := range r.buffer {
		fmt.Print("|")
		for x := range r.buffer[y] {
			fmt.Print(string(r.buffer[y][x]))
		}
		fmt.Println("|")
	}
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")

	if r.hudLine != "" {
		fmt.Println(r.hudLine)
	}
}

// RenderTerrain implements entity.Renderer. The 3D mesh is drawn as its
// profile along the camera's X axis.
func (r *TerminalRenderer) RenderTerrain(t *terrain.Terrain) {
	if t == nil {
		return
	}
	r.worldWidth = t.Width()
	if r.worldWidth == 0 {
		return
	}

	_, z := t.Center()
	for sx := 0; sx < r.width; sx++ {
		worldX := (float64(sx) + 0.5) / float64(r.width) * r.worldWidth
		height, ok := t.HeightAt(worldX, z)
		if !ok {
			continue
		}
		symbol := '#'
		if t.PadAt(worldX, z) {
			symbol = '='
		}
		_, sy := r.worldToScreen(worldX, height)
		if r.inBounds(sx, sy) {
			r.buffer[sy][sx] = symbol
		}
		// Fill below the surface so slopes read as solid ground.
		for y := sy + 1; y < r.height; y++ {
			if r.inBounds(sx, y) {
				r.buffer[y][sx] = '#'
			}
		}
	}
}

// RenderLander implements entity.Renderer
func (r *TerminalRenderer) RenderLander(l *entity.Lander) {
	if l == nil {
		return
	}
	pos := l.GetPosition()
	x, y := r.worldToScreen(pos.X, pos.Y)
	if r.inBounds(x, y) {
		symbol := 'V'
		if l.Body.ThrustActive {
			symbol = 'W'
		}
		r.buffer[y][x] = symbol
	}
}

// RenderHUD implements entity.Renderer
func (r *TerminalRenderer) RenderHUD(hud entity.HUD) {
	r.hudLine = fmt.Sprintf("%s  fuel %.0f/%.0f  alt %.1fm  v %.1fm/s  h %.1fm/s  score %d  t %.1fs",
		hud.StateLabel, hud.Fuel, hud.MaxFuel, hud.Altitude,
		hud.VSpeed, hud.HSpeed, hud.Score, hud.Elapsed)
}
