// Package anim moves tree entities with gween tweens.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"go-timber/internal/entity"
	"go-timber/internal/types"
)

// Kind различает анимации появления и срубания.
type Kind int

const (
	Enter Kind = iota
	Collapse
)

// tweenGroup animates the three position axes of one entity together.
type tweenGroup struct {
	subject    types.EntityID
	kind       Kind
	axes       [3]*gween.Tween
	to         types.Vec3
	onComplete func()
	done       bool
}

func newTweenGroup(subject types.EntityID, kind Kind, from, to types.Vec3, duration float32, fn ease.TweenFunc) *tweenGroup {
	return &tweenGroup{
		subject: subject,
		kind:    kind,
		to:      to,
		axes: [3]*gween.Tween{
			gween.New(float32(from.X), float32(to.X), duration, fn),
			gween.New(float32(from.Y), float32(to.Y), duration, fn),
			gween.New(float32(from.Z), float32(to.Z), duration, fn),
		},
	}
}

// update advances the tweens and returns the current position.
func (g *tweenGroup) update(dt float32) types.Vec3 {
	var v [3]float32
	allDone := true
	for i, tw := range g.axes {
		val, finished := tw.Update(dt)
		v[i] = val
		if !finished {
			allDone = false
		}
	}
	g.done = allDone
	if allDone {
		return g.to
	}
	return types.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// Animator is the gween-backed TreeAnimator. There is no background clock:
// the owner calls Update(dt) once per tick and completion callbacks run
// synchronously inside that call.
//
// One subject runs at most one animation. Starting a new one on a busy
// subject first finishes the running one, so an enter callback is never lost.
type Animator struct {
	ecs              *entity.ECS
	active           []*tweenGroup
	enterDuration    float32
	collapseDuration float32
}

// NewAnimator creates an animator writing positions into ecs.
func NewAnimator(ecs *entity.ECS, enterDuration, collapseDuration float64) *Animator {
	return &Animator{
		ecs:              ecs,
		enterDuration:    float32(enterDuration),
		collapseDuration: float32(collapseDuration),
	}
}

// PlayEnterAnimation moves subject from below ground to its place and calls
// onComplete exactly once when it arrives.
func (a *Animator) PlayEnterAnimation(subject types.EntityID, from, to types.Vec3, onComplete func()) {
	g := newTweenGroup(subject, Enter, from, to, a.enterDuration, ease.OutCubic)
	g.onComplete = onComplete
	a.start(g, from)
}

// PlayCollapseAnimation drops subject by one segment. Nobody waits for it.
func (a *Animator) PlayCollapseAnimation(subject types.EntityID, from, to types.Vec3) {
	a.start(newTweenGroup(subject, Collapse, from, to, a.collapseDuration, ease.OutBounce), from)
}

func (a *Animator) start(g *tweenGroup, from types.Vec3) {
	a.finish(g.subject)
	a.ecs.SetPosition(g.subject, from)
	a.active = append(a.active, g)
}

// Update advances every running animation by dt seconds.
func (a *Animator) Update(dt float64) {
	if len(a.active) == 0 {
		return
	}

	var finished []*tweenGroup
	running := a.active[:0]
	for _, g := range a.active {
		a.ecs.SetPosition(g.subject, g.update(float32(dt)))
		if g.done {
			finished = append(finished, g)
			continue
		}
		running = append(running, g)
	}
	for i := len(running); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = running

	// колбэки после чистки: они могут запустить новую анимацию
	for _, g := range finished {
		g.complete()
	}
}

// finish snaps a running animation on subject to its end and completes it.
func (a *Animator) finish(subject types.EntityID) {
	for i, g := range a.active {
		if g.subject != subject {
			continue
		}
		a.active = append(a.active[:i], a.active[i+1:]...)
		a.ecs.SetPosition(subject, g.to)
		g.complete()
		return
	}
}

func (g *tweenGroup) complete() {
	if cb := g.onComplete; cb != nil {
		g.onComplete = nil
		cb()
	}
}

// Busy reports whether subject has a running animation.
func (a *Animator) Busy(subject types.EntityID) bool {
	for _, g := range a.active {
		if g.subject == subject {
			return true
		}
	}
	return false
}

// Running returns the number of animations in flight.
func (a *Animator) Running() int {
	return len(a.active)
}

// EnterDuration returns the enter animation length in seconds.
func (a *Animator) EnterDuration() float64 {
	return float64(a.enterDuration)
}
