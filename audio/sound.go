package audio

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . Sound

// Sound is an opaque handle to a playable effect
// Play is fire-and-forget and never blocks the frame loop
type Sound interface {
	Play()
}

// Silent is a Sound that does nothing
type Silent struct{}

func (Silent) Play() {}

// Sound names
const (
	SoundBoom = "boom" // Gun thrown
	SoundBoop = "boop" // Bullet fired
)
