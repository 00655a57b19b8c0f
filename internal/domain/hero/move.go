package hero

import (
	"time"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
	"github.com/GriffinCanCode/skullgate/internal/providers/input"
	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

const axisDeadZone = 0.001

// Move walks the hero along the input axis and records where it stands
type Move struct {
	input    input.Service
	speed    float64
	level    string
	position types.Vector3
	forward  types.Vector3
}

var _ progress.Writer = (*Move)(nil)

// NewMove places the hero at start on level
func NewMove(in input.Service, speed float64, level string, start types.Vector3) *Move {
	return &Move{
		input:    in,
		speed:    speed,
		level:    level,
		position: start,
		forward:  types.Vector3{Z: 1},
	}
}

func (m *Move) Position() types.Vector3 { return m.position }

// Forward is the unit direction of the last movement
func (m *Move) Forward() types.Vector3 { return m.forward }

// Warp moves the hero without walking
func (m *Move) Warp(to types.Vector3) { m.position = to }

func (m *Move) Tick(dt time.Duration) {
	axis := m.input.Axis()
	if axis.Length() < axisDeadZone {
		return
	}
	dir := axis.ToWorld()
	m.forward = dir.Normalized()
	m.position = m.position.Add(dir.Scale(m.speed * dt.Seconds()))
}

// LoadProgress restores the saved position when it belongs to this level
func (m *Move) LoadProgress(p *progress.PlayerProgress) {
	saved := p.WorldData.PositionOnLevel
	if saved.Level == m.level && saved.Position != nil {
		m.Warp(*saved.Position)
	}
}

func (m *Move) UpdateProgress(p *progress.PlayerProgress) {
	pos := m.position
	p.WorldData.PositionOnLevel = progress.PositionOnLevel{
		Level:    m.level,
		Position: &pos,
	}
}
