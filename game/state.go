package game

import (
	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// StateType identifies a top-level screen
type StateType uint8

const (
	TypeWorldSelect StateType = iota
	TypeWorld
	TypeVictory
)

func (t StateType) String() string {
	switch t {
	case TypeWorldSelect:
		return "world_select"
	case TypeWorld:
		return "world"
	case TypeVictory:
		return "victory"
	}
	return "unknown"
}

// ResultType is the outcome of one state update
type ResultType uint8

const (
	ResultRunning ResultType = iota
	ResultSuccess
	ResultFail
)

func (t ResultType) String() string {
	switch t {
	case ResultRunning:
		return "running"
	case ResultSuccess:
		return "success"
	case ResultFail:
		return "fail"
	}
	return "unknown"
}

// UpdateResult carries the outcome and, for Success, a state-specific code
// The menu reports the chosen level index as the code
type UpdateResult struct {
	Type ResultType
	Code int
}

func Running() UpdateResult {
	return UpdateResult{Type: ResultRunning}
}

func Success(code int) UpdateResult {
	return UpdateResult{Type: ResultSuccess, Code: code}
}

func Fail() UpdateResult {
	return UpdateResult{Type: ResultFail}
}

// State is one screen of the game
type State interface {
	Render(c Canvas)
	Update(snap *input.Snapshot, dt float64) UpdateResult
	Type() StateType
}

// DrawCommand is one sprite to draw at a world pose
type DrawCommand struct {
	Texture  *asset.Texture
	Position vmath.Vector2
	Rotation float64
	Scale    float64
}

// TextStyle selects how overlay text is drawn
type TextStyle uint8

const (
	TextNormal TextStyle = iota
	TextHighlight
	TextTitle
)

// Align anchors overlay text relative to its position
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Canvas is the draw surface states render into, in world coordinates
type Canvas interface {
	DrawSprite(cmd DrawCommand)
	DrawText(pos vmath.Vector2, text string, style TextStyle, align Align)
	Size() (w, h float64)
}
