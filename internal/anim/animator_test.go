package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-timber/internal/entity"
	"go-timber/internal/types"
)

func newTestAnimator() (*Animator, *entity.ECS, types.EntityID) {
	ecs := entity.NewECS()
	subject := ecs.NewEntity()
	return NewAnimator(ecs, 1.0, 0.5), ecs, subject
}

func TestEnterCallbackFiresOnceAfterDuration(t *testing.T) {
	a, ecs, subject := newTestAnimator()
	calls := 0
	from := types.Vec3{X: 5, Y: -50, Z: 15}
	to := types.Vec3{X: 5, Y: 0, Z: 15}

	a.PlayEnterAnimation(subject, from, to, func() { calls++ })
	assert.Equal(t, from, ecs.Position(subject))

	a.Update(0.5)
	assert.Equal(t, 0, calls, "callback must wait for the animation")
	assert.True(t, a.Busy(subject))

	a.Update(0.5)
	require.Equal(t, 1, calls)
	assert.Equal(t, to, ecs.Position(subject))
	assert.False(t, a.Busy(subject))

	a.Update(0.5)
	assert.Equal(t, 1, calls)
}

func TestCollapseAnimationHasNoCallback(t *testing.T) {
	a, ecs, subject := newTestAnimator()
	a.PlayCollapseAnimation(subject, types.Vec3{Y: 0}, types.Vec3{Y: -5})

	assert.Equal(t, 1, a.Running())
	a.Update(0.25)
	a.Update(0.25)
	assert.Equal(t, 0, a.Running())
	assert.Equal(t, types.Vec3{Y: -5}, ecs.Position(subject))
}

func TestNewAnimationFinishesRunningOne(t *testing.T) {
	a, ecs, subject := newTestAnimator()
	calls := 0
	a.PlayEnterAnimation(subject, types.Vec3{Y: -40}, types.Vec3{}, func() { calls++ })
	a.Update(0.1)

	a.PlayCollapseAnimation(subject, types.Vec3{}, types.Vec3{Y: -5})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, a.Running())
	assert.Equal(t, types.Vec3{}, ecs.Position(subject))
}

func TestCallbackMayStartAnotherAnimation(t *testing.T) {
	a, _, subject := newTestAnimator()
	other := types.EntityID(99)
	a.PlayEnterAnimation(subject, types.Vec3{Y: -10}, types.Vec3{}, func() {
		a.PlayCollapseAnimation(other, types.Vec3{}, types.Vec3{Y: -5})
	})

	a.Update(1.0)

	assert.False(t, a.Busy(subject))
	assert.True(t, a.Busy(other))
}

func TestIndependentSubjectsRunTogether(t *testing.T) {
	a, ecs, first := newTestAnimator()
	second := ecs.NewEntity()
	a.PlayCollapseAnimation(first, types.Vec3{}, types.Vec3{Y: -5})
	a.PlayCollapseAnimation(second, types.Vec3{X: 1}, types.Vec3{X: 1, Y: -5})

	assert.Equal(t, 2, a.Running())
	a.Update(0.5)
	assert.Equal(t, 0, a.Running())
	assert.Equal(t, types.Vec3{X: 1, Y: -5}, ecs.Position(second))
}
