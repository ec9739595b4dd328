package level

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

var (
	// ErrGridSize is returned in strict mode when a grid is not GridWidth x GridHeight
	ErrGridSize = errors.New("level grid has wrong size")
	// ErrUnknownLevel is returned for a name missing from the catalogue
	ErrUnknownLevel = errors.New("unknown level")
)

// Cell markers
const (
	CellWall   = "W"
	CellPlayer = "P"
	CellEnemy  = "E"
	CellGround = "_"
)

// Registrar receives the entities a grid describes
type Registrar interface {
	RegisterStatic(kind core.ObjectType, center vmath.Vector2)
	RegisterPlayerSpawn(pos vmath.Vector2)
	RegisterEnemy(pos vmath.Vector2)
}

// CellCenter returns the world position of a grid cell's center
func CellCenter(col, row int) vmath.Vector2 {
	return vmath.V2(
		float64(col*parameter.CellWidth+parameter.CellWidth/2),
		float64(row*parameter.CellHeight+parameter.CellHeight/2),
	)
}

// Parse reads a headerless CSV grid and registers every cell
// Unknown markers are ignored; lines starting with # are comments
func Parse(r io.Reader, reg Registrar, strict bool) error {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1
	rdr.Comment = '#'
	rdr.TrimLeadingSpace = true

	rows, err := rdr.ReadAll()
	if err != nil {
		return fmt.Errorf("parse grid: %w", err)
	}

	if strict {
		if len(rows) != parameter.GridHeight {
			return fmt.Errorf("%d rows, want %d: %w", len(rows), parameter.GridHeight, ErrGridSize)
		}
		for i, row := range rows {
			if len(row) != parameter.GridWidth {
				return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), parameter.GridWidth, ErrGridSize)
			}
		}
	}

	for row, cells := range rows {
		for col, cell := range cells {
			center := CellCenter(col, row)
			switch strings.TrimSpace(cell) {
			case CellWall:
				reg.RegisterStatic(core.ObjectWall, center)
			case CellPlayer:
				reg.RegisterPlayerSpawn(center)
			case CellEnemy:
				reg.RegisterEnemy(center)
			case CellGround:
				reg.RegisterStatic(core.ObjectGround, center)
			}
		}
	}
	return nil
}
