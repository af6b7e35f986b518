package scenes

import "math"

// CameraViewport is the part of the street currently on screen.
type CameraViewport struct {
	X int
	Y int
}

// Follow centers the viewport on x, keeping it inside a world of worldWidth pixels.
func (c *CameraViewport) Follow(x float64, viewWidth, worldWidth int) {
	left := x - float64(viewWidth)/2
	maxLeft := float64(worldWidth - viewWidth)
	if maxLeft < 0 {
		maxLeft = 0
	}
	c.X = int(math.Round(math.Max(0, math.Min(maxLeft, left))))
}
