package parameter

import "time"

// World dimensions in pixels
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Level grid, constant for the whole game
const (
	GridWidth  = 32
	GridHeight = 18

	CellWidth  = ScreenWidth / GridWidth
	CellHeight = ScreenHeight / GridHeight
)

// Game loop timing
const (
	// FrameUpdateInterval is the simulation and rendering interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after a stall so projectiles cannot tunnel through walls
	MaxFrameDelta = 100 * time.Millisecond

	// EventChannelSize is the buffer between the input poller and the frame loop
	EventChannelSize = 256
)
