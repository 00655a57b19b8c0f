package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GriffinCanCode/skullgate/internal/shared/types"
)

func TestHeadlessAttackIsReportedOnce(t *testing.T) {
	h := NewHeadless()
	assert.False(t, h.IsAttackButtonUp())

	h.PressAttack()
	assert.True(t, h.IsAttackButtonUp())
	assert.False(t, h.IsAttackButtonUp())
}

func TestHeadlessAxisIsClamped(t *testing.T) {
	h := NewHeadless()
	h.SetAxis(types.Vector2{X: 3, Y: 4})

	assert.InDelta(t, 1.0, h.Axis().Length(), 1e-9)
	assert.InDelta(t, 0.6, h.Axis().X, 1e-9)

	h.SetAxis(types.Vector2{X: 0.5})
	assert.Equal(t, types.Vector2{X: 0.5}, h.Axis())
}
