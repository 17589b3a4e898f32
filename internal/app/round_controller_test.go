package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-timber/internal/component"
	"go-timber/internal/event"
	"go-timber/internal/types"
)

const testRoot = types.EntityID(7)

type harness struct {
	ctrl    *RoundController
	pool    *fakePool
	anim    *fakeAnimator
	display *textLog
	rng     *scriptedRand
	events  *event.Dispatcher
}

func newHarness(values ...int) *harness {
	h := &harness{
		pool:    newFakePool(),
		anim:    &fakeAnimator{},
		display: &textLog{},
		rng:     &scriptedRand{values: values},
		events:  event.NewDispatcher(),
	}
	h.ctrl = NewRoundController(Deps{
		Pool:     h.pool,
		Animator: h.anim,
		Display:  h.display,
		Rand:     h.rng,
		Events:   h.events,
		TreeRoot: testRoot,
	})
	return h
}

// fell ждет появления дерева и рубит его до конца.
func (h *harness) fell(t *testing.T) {
	t.Helper()
	h.anim.completeEnter()
	require.True(t, h.ctrl.Enterable())
	for n := h.ctrl.SegmentCount(); n > 0; n-- {
		h.ctrl.CollapseTree()
	}
}

func TestStartRollsRoundAndBuildsTree(t *testing.T) {
	h := newHarness(3, 10)
	h.ctrl.Start()

	assert.Equal(t, 1, h.ctrl.Round())
	assert.Equal(t, 3, h.ctrl.TreesRemaining())
	assert.Equal(t, 10, h.ctrl.SegmentCount())
	assert.Equal(t, 0, h.ctrl.CollapsedSegments())
	assert.False(t, h.ctrl.Enterable())
	assert.Equal(t, component.Entering, h.ctrl.Phase())
	assert.Equal(t, [][2]int{{2, 5}, {8, 16}}, h.rng.ranges)
	assert.Equal(t, []string{"Round 1"}, h.display.texts)

	require.Len(t, h.pool.acquired, 10)
	for i, call := range h.pool.acquired {
		assert.Equal(t, types.Vec3{Y: float64(i+1) * 5}, call.Position)
		assert.Equal(t, testRoot, call.Parent)
	}

	require.Len(t, h.anim.enters, 1)
	assert.Equal(t, move{
		Subject: testRoot,
		From:    types.Vec3{X: 5, Y: -50, Z: 15},
		To:      types.Vec3{X: 5, Y: 0, Z: 15},
	}, h.anim.enters[0])
}

func TestCollapseBeforeEnterCompletesIsNoop(t *testing.T) {
	h := newHarness(3, 10)
	h.ctrl.Start()

	for i := 0; i < 5; i++ {
		h.ctrl.CollapseTree()
	}

	assert.Equal(t, 0, h.ctrl.CollapsedSegments())
	assert.Empty(t, h.pool.released)
	assert.Empty(t, h.anim.collapses)
	assert.Len(t, h.ctrl.Segments(), 10)
}

func TestEnterCompletionMakesTreeReady(t *testing.T) {
	h := newHarness(3, 10)
	ready := 0
	h.events.Subscribe(event.TreeReady, event.ListenerFunc(func(event.Event) { ready++ }))
	h.ctrl.Start()

	h.anim.completeEnter()

	assert.True(t, h.ctrl.Enterable())
	assert.Equal(t, component.Ready, h.ctrl.Phase())
	assert.Equal(t, 1, ready)
}

func TestEnterCallbackTwiceCountsOnce(t *testing.T) {
	h := newHarness(3, 10)
	ready := 0
	h.events.Subscribe(event.TreeReady, event.ListenerFunc(func(event.Event) { ready++ }))
	h.ctrl.Start()
	cb := h.anim.pending

	cb()
	h.ctrl.CollapseTree()
	cb()

	assert.Equal(t, 1, ready)
	assert.Equal(t, 1, h.ctrl.CollapsedSegments())
}

func TestSegmentsAreReclaimedBottomUp(t *testing.T) {
	h := newHarness(3, 10)
	h.ctrl.Start()
	h.anim.completeEnter()

	for i := 1; i <= 4; i++ {
		h.ctrl.CollapseTree()
		require.Len(t, h.pool.released, i)
		assert.Equal(t, h.pool.acquired[i-1].ID, h.pool.released[i-1], "collapse %d", i)
		assert.True(t, h.pool.BelongsToPool(h.pool.acquired[i-1].ID))
	}
	assert.Equal(t, 4, h.ctrl.CollapsedSegments())
	assert.Equal(t, component.Collapsing, h.ctrl.Phase())

	segs := h.ctrl.Segments()
	require.Len(t, segs, 6)
	assert.Equal(t, h.pool.acquired[4].ID, segs[0])
}

func TestCollapseAnimationDropsTreeOneSegment(t *testing.T) {
	h := newHarness(3, 10)
	h.ctrl.Start()
	h.anim.completeEnter()

	h.ctrl.CollapseTree()
	h.ctrl.CollapseTree()

	require.Len(t, h.anim.collapses, 2)
	assert.Equal(t, move{Subject: testRoot, From: types.Vec3{X: 5, Z: 15}, To: types.Vec3{X: 5, Y: -5, Z: 15}}, h.anim.collapses[0])
	assert.Equal(t, move{Subject: testRoot, From: types.Vec3{X: 5, Y: -5, Z: 15}, To: types.Vec3{X: 5, Y: -10, Z: 15}}, h.anim.collapses[1])
}

func TestTreeCompletionResetsAndGeneratesNext(t *testing.T) {
	h := newHarness(3, 10, 12)
	h.ctrl.Start()
	h.anim.completeEnter()

	for i := 0; i < 9; i++ {
		h.ctrl.CollapseTree()
	}
	assert.Equal(t, 9, h.ctrl.CollapsedSegments())
	assert.Equal(t, 3, h.ctrl.TreesRemaining())

	h.ctrl.CollapseTree()

	assert.Equal(t, 0, h.ctrl.CollapsedSegments())
	assert.Equal(t, 2, h.ctrl.TreesRemaining())
	assert.Equal(t, 12, h.ctrl.SegmentCount())
	assert.False(t, h.ctrl.Enterable())
	assert.Equal(t, component.Entering, h.ctrl.Phase())
	assert.Len(t, h.anim.enters, 2)
	assert.Len(t, h.pool.acquired, 22)
	assert.Equal(t, []string{"Round 1"}, h.display.texts)

	// новое дерево не рубится до конца анимации
	h.ctrl.CollapseTree()
	assert.Equal(t, 0, h.ctrl.CollapsedSegments())
}

func TestRoundTextChangesOnlyOnRollover(t *testing.T) {
	display := &mockDisplay{}
	display.On("SetText", "Round 1").Once()

	rng := &scriptedRand{values: []int{3, 8, 8, 8, 2, 8}}
	anim := &fakeAnimator{}
	ctrl := NewRoundController(Deps{Pool: newFakePool(), Animator: anim, Display: display, Rand: rng})
	h := &harness{ctrl: ctrl, anim: anim}
	ctrl.Start()

	h.fell(t)
	h.fell(t)
	display.AssertNumberOfCalls(t, "SetText", 1)
	assert.Equal(t, 1, ctrl.Round())
	assert.Equal(t, 1, ctrl.TreesRemaining())

	display.On("SetText", "Round 2").Once()
	h.fell(t)

	display.AssertExpectations(t)
	assert.Equal(t, 2, ctrl.Round())
	assert.Equal(t, 2, ctrl.TreesRemaining())
	assert.Equal(t, 8, ctrl.SegmentCount())
}

func TestRoundEventsCarryCounters(t *testing.T) {
	h := newHarness(2, 8, 8, 4, 9)
	var rounds []event.RoundData
	var felled []event.TreeData
	h.events.Subscribe(event.RoundStarted, event.ListenerFunc(func(e event.Event) {
		rounds = append(rounds, e.Data.(event.RoundData))
	}))
	h.events.Subscribe(event.TreeFelled, event.ListenerFunc(func(e event.Event) {
		felled = append(felled, e.Data.(event.TreeData))
	}))
	h.ctrl.Start()

	h.fell(t)
	h.fell(t)

	assert.Equal(t, []event.RoundData{{Round: 1, TreesRemaining: 2}, {Round: 2, TreesRemaining: 4}}, rounds)
	require.Len(t, felled, 2)
	assert.Equal(t, event.TreeData{Round: 1, SegmentCount: 8, CollapsedSegments: 8}, felled[0])
	assert.Equal(t, 9, h.ctrl.SegmentCount())
}

func TestStaleEnterCallbackIsIgnored(t *testing.T) {
	h := newHarness(3, 10, 9)
	h.ctrl.Start()
	stale := h.anim.pending

	h.ctrl.GenerateTree()
	stale()

	assert.False(t, h.ctrl.Enterable())
	assert.Len(t, h.pool.released, 10, "leftover segments go back to the pool")
	assert.Len(t, h.ctrl.Segments(), 9)

	h.anim.completeEnter()
	assert.True(t, h.ctrl.Enterable())
}

func TestNewRoundControllerRequiresDeps(t *testing.T) {
	assert.Panics(t, func() {
		NewRoundController(Deps{Pool: newFakePool(), Display: &textLog{}, Rand: &scriptedRand{}})
	})
}

func TestRoundText(t *testing.T) {
	assert.Equal(t, "Round 12", RoundText(12))
}
