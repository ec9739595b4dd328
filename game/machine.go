package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/logger"
)

// WorldLoader builds a fresh world for a level index
type WorldLoader func(index int) (State, error)

// Machine drives menu -> world -> victory
type Machine struct {
	State      State
	LevelIndex int

	levels []string
	load   WorldLoader
}

// NewMachine starts at the level menu
func NewMachine(levels []string, load WorldLoader) *Machine {
	return &Machine{
		State:  NewMenuScreen(levels),
		levels: levels,
		load:   load,
	}
}

// Update steps the current state and applies its transition
// Loader errors are returned; the caller treats them as fatal
func (m *Machine) Update(snap *input.Snapshot, dt float64) error {
	res := m.State.Update(snap, dt)
	if res.Type == ResultRunning {
		return nil
	}

	from := m.State.Type()
	switch from {
	case TypeWorldSelect:
		if res.Type != ResultSuccess {
			return nil
		}
		if res.Code < 0 || res.Code >= len(m.levels) {
			return fmt.Errorf("menu selected level %d of %d", res.Code, len(m.levels))
		}
		m.LevelIndex = res.Code
		if err := m.loadLevel(); err != nil {
			return err
		}

	case TypeWorld:
		if res.Type == ResultSuccess {
			m.LevelIndex++
			if m.LevelIndex >= len(m.levels) {
				m.State = &VictoryScreen{}
				break
			}
		}
		// Fail retries the same level from scratch
		if err := m.loadLevel(); err != nil {
			return err
		}

	case TypeVictory:
		// Terminal
		return nil
	}

	logger.Log.WithFields(logrus.Fields{
		"from":   from,
		"to":     m.State.Type(),
		"result": res.Type,
		"level":  m.LevelIndex,
	}).Info("State transition")
	return nil
}

// Render draws the current state
func (m *Machine) Render(c Canvas) {
	m.State.Render(c)
}

func (m *Machine) loadLevel() error {
	s, err := m.load(m.LevelIndex)
	if err != nil {
		return fmt.Errorf("load level %d: %w", m.LevelIndex, err)
	}
	m.State = s
	return nil
}
