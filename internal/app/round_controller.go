// internal/app/round_controller.go
package app

import (
	"fmt"
	"log"

	"go-timber/internal/component"
	"go-timber/internal/config"
	"go-timber/internal/event"
	"go-timber/internal/interfaces"
	"go-timber/internal/types"
)

// Deps — зависимости RoundController, передаются явно при создании.
type Deps struct {
	Pool     interfaces.TrunkPool
	Animator interfaces.TreeAnimator
	Display  interfaces.RoundDisplay
	Rand     interfaces.RandomSource
	Events   *event.Dispatcher // может быть nil
	Settings *config.Settings  // nil — настройки по умолчанию
	TreeRoot types.EntityID    // сущность, к которой крепятся сегменты
}

// RoundController drives the round loop: it builds a tree from pooled trunk
// segments, waits for the enter animation, removes one segment per tap and
// rolls over to the next tree or round.
type RoundController struct {
	pool     interfaces.TrunkPool
	animator interfaces.TreeAnimator
	display  interfaces.RoundDisplay
	rng      interfaces.RandomSource
	events   *event.Dispatcher
	settings *config.Settings
	treeRoot types.EntityID

	round    component.Round
	tree     component.Tree
	segments []types.EntityID // активные сегменты снизу вверх
	treeGen  int              // номер дерева, отсекает колбэки от прошлых деревьев
}

// NewRoundController initializes a controller. Pool, Animator, Display and
// Rand are required.
func NewRoundController(deps Deps) *RoundController {
	if deps.Pool == nil || deps.Animator == nil || deps.Display == nil || deps.Rand == nil {
		panic("round controller: pool, animator, display and rand are required")
	}
	settings := deps.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &RoundController{
		pool:     deps.Pool,
		animator: deps.Animator,
		display:  deps.Display,
		rng:      deps.Rand,
		events:   deps.Events,
		settings: settings,
		treeRoot: deps.TreeRoot,
	}
}

// RoundText форматирует подпись раунда.
func RoundText(round int) string {
	return fmt.Sprintf("Round %d", round)
}

// Start sets up round 1 and generates the first tree.
func (c *RoundController) Start() {
	c.round = component.Round{
		Number:         1,
		TreesRemaining: c.rollTreesPerRound(),
	}
	c.display.SetText(RoundText(c.round.Number))
	log.Printf("[RoundController] round %d started, %d trees", c.round.Number, c.round.TreesRemaining)
	c.events.Dispatch(event.Event{Type: event.RoundStarted, Data: c.roundData()})
	c.GenerateTree()
}

// GenerateTree builds a tree of random size and starts the enter animation.
// The tree accepts taps only after the animation reports completion.
func (c *RoundController) GenerateTree() {
	c.releaseSegments()
	c.treeGen++
	gen := c.treeGen

	size := c.rng.Range(c.settings.TreeSize.Min, c.settings.TreeSize.Max)
	c.tree = component.Tree{SegmentCount: size, Phase: component.Generating}
	c.createTree(size)

	c.tree.Phase = component.Entering
	c.events.Dispatch(event.Event{Type: event.TreeGenerated, Data: c.treeData()})

	origin := c.settings.Origin()
	belowGround := types.Vec3{X: origin.X, Y: -c.settings.TrunkSize * float64(size), Z: origin.Z}
	c.animator.PlayEnterAnimation(c.treeRoot, belowGround, origin, func() {
		c.onTreeEntered(gen)
	})
}

// createTree берет из пула size сегментов и ставит их друг на друга.
func (c *RoundController) createTree(size int) {
	for i := 1; i <= size; i++ {
		pos := types.Up.Scale(float64(i) * c.settings.TrunkSize)
		c.segments = append(c.segments, c.pool.Acquire(pos, c.treeRoot))
	}
}

func (c *RoundController) onTreeEntered(gen int) {
	if gen != c.treeGen || c.tree.Enterable {
		return
	}
	c.tree.Enterable = true
	c.tree.Phase = component.Ready
	c.events.Dispatch(event.Event{Type: event.TreeReady, Data: c.treeData()})
}

// CollapseTree removes the lowest segment. Called once per tap; ignored
// until the current tree has finished entering.
func (c *RoundController) CollapseTree() {
	if !c.tree.Enterable {
		return
	}

	step := types.Up.Scale(c.settings.TrunkSize)
	from := c.settings.Origin().Sub(step.Scale(float64(c.tree.CollapsedSegments)))
	c.animator.PlayCollapseAnimation(c.treeRoot, from, from.Sub(step))

	c.removeTrunk()
	c.checkTreeSize()
}

// removeTrunk возвращает в пул самый нижний сегмент.
func (c *RoundController) removeTrunk() {
	c.tree.CollapsedSegments++
	c.tree.Phase = component.Collapsing

	bottom := c.segments[0]
	c.segments[0] = 0
	c.segments = c.segments[1:]
	c.pool.Release(bottom)

	c.events.Dispatch(event.Event{Type: event.TrunkCollapsed, Data: c.treeData()})
}

func (c *RoundController) checkTreeSize() {
	if c.tree.CollapsedSegments != c.tree.SegmentCount {
		return
	}
	c.tree.Phase = component.Complete
	c.events.Dispatch(event.Event{Type: event.TreeFelled, Data: c.treeData()})

	c.tree.CollapsedSegments = 0
	c.round.TreesRemaining--
	c.checkRoundOver()
}

func (c *RoundController) checkRoundOver() {
	if c.round.TreesRemaining <= 0 {
		c.round.Number++
		c.round.TreesRemaining = c.rollTreesPerRound()
		c.display.SetText(RoundText(c.round.Number))
		log.Printf("[RoundController] round %d started, %d trees", c.round.Number, c.round.TreesRemaining)
		c.events.Dispatch(event.Event{Type: event.RoundStarted, Data: c.roundData()})
	}
	c.GenerateTree()
}

// releaseSegments отдает пулу сегменты, оставшиеся от прерванного дерева.
func (c *RoundController) releaseSegments() {
	for _, id := range c.segments {
		c.pool.Release(id)
	}
	c.segments = c.segments[:0]
}

func (c *RoundController) rollTreesPerRound() int {
	return c.rng.Range(c.settings.TreesPerRound.Min, c.settings.TreesPerRound.Max)
}

func (c *RoundController) roundData() event.RoundData {
	return event.RoundData{Round: c.round.Number, TreesRemaining: c.round.TreesRemaining}
}

func (c *RoundController) treeData() event.TreeData {
	return event.TreeData{
		Round:             c.round.Number,
		SegmentCount:      c.tree.SegmentCount,
		CollapsedSegments: c.tree.CollapsedSegments,
	}
}

func (c *RoundController) Round() int                 { return c.round.Number }
func (c *RoundController) TreesRemaining() int        { return c.round.TreesRemaining }
func (c *RoundController) SegmentCount() int          { return c.tree.SegmentCount }
func (c *RoundController) CollapsedSegments() int     { return c.tree.CollapsedSegments }
func (c *RoundController) Enterable() bool            { return c.tree.Enterable }
func (c *RoundController) Phase() component.TreePhase { return c.tree.Phase }
func (c *RoundController) TreeRoot() types.EntityID   { return c.treeRoot }

// Segments returns the active segments of the current tree, bottom first.
func (c *RoundController) Segments() []types.EntityID {
	out := make([]types.EntityID, len(c.segments))
	copy(out, c.segments)
	return out
}
