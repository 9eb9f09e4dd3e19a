package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperchase/common"
)

// Camera tracks a world-space center point for a view of fixed size.
type Camera struct {
	PosX float64
	PosY float64

	screenW float64
	screenH float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds (zero value means unbounded)
	bounds cp.BB
}

// NewCamera creates a camera for a view of the given size, centered on it.
func NewCamera(screenW, screenH float64) *Camera {
	return &Camera{
		PosX:    screenW / 2,
		PosY:    screenH / 2,
		screenW: screenW,
		screenH: screenH,
		smooth:  0.15,
	}
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// SetBounds limits the view to bb.
func (c *Camera) SetBounds(bb cp.BB) {
	c.bounds = bb
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - c.screenW/2, c.PosY - c.screenH/2
}

// Update moves the camera toward the target. Call from the fixed-rate update
// so smoothing is consistent.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX, c.PosY = targetX, targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}
	c.constrain()
}

// SnapTo centers the camera on the target immediately.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX, c.PosY = x, y
	c.constrain()
}

func (c *Camera) constrain() {
	c.PosX = math.Round(c.PosX)
	c.PosY = math.Round(c.PosY)

	if c.bounds == (cp.BB{}) {
		return
	}
	c.PosX = constrainAxis(c.PosX, c.bounds.L, c.bounds.R, c.screenW/2)
	c.PosY = constrainAxis(c.PosY, c.bounds.B, c.bounds.T, c.screenH/2)
}

func constrainAxis(pos, lo, hi, half float64) float64 {
	if hi-lo < 2*half {
		// world smaller than view: center on world
		return (lo + hi) / 2
	}
	return common.Clamp(pos, lo+half, hi-half)
}
