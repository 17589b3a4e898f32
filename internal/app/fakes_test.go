package app

import (
	"github.com/stretchr/testify/mock"

	"go-timber/internal/types"
)

type acquireCall struct {
	ID       types.EntityID
	Position types.Vec3
	Parent   types.EntityID
}

// fakePool выдает новые ID и запоминает все вызовы.
type fakePool struct {
	next     types.EntityID
	acquired []acquireCall
	released []types.EntityID
	pooled   map[types.EntityID]bool
}

func newFakePool() *fakePool {
	return &fakePool{next: 100, pooled: map[types.EntityID]bool{}}
}

func (p *fakePool) Acquire(position types.Vec3, parent types.EntityID) types.EntityID {
	p.next++
	p.acquired = append(p.acquired, acquireCall{ID: p.next, Position: position, Parent: parent})
	p.pooled[p.next] = false
	return p.next
}

func (p *fakePool) Release(id types.EntityID) {
	p.released = append(p.released, id)
	p.pooled[id] = true
}

func (p *fakePool) BelongsToPool(id types.EntityID) bool {
	return p.pooled[id]
}

type move struct {
	Subject  types.EntityID
	From, To types.Vec3
}

// fakeAnimator хранит колбэк появления, пока тест сам его не вызовет.
type fakeAnimator struct {
	enters    []move
	collapses []move
	pending   func()
}

func (a *fakeAnimator) PlayEnterAnimation(subject types.EntityID, from, to types.Vec3, onComplete func()) {
	a.enters = append(a.enters, move{Subject: subject, From: from, To: to})
	a.pending = onComplete
}

func (a *fakeAnimator) PlayCollapseAnimation(subject types.EntityID, from, to types.Vec3) {
	a.collapses = append(a.collapses, move{Subject: subject, From: from, To: to})
}

func (a *fakeAnimator) completeEnter() {
	cb := a.pending
	a.pending = nil
	if cb != nil {
		cb()
	}
}

type mockDisplay struct {
	mock.Mock
}

func (m *mockDisplay) SetText(text string) {
	m.Called(text)
}

// textLog запоминает все подписи.
type textLog struct {
	texts []string
}

func (l *textLog) SetText(text string) { l.texts = append(l.texts, text) }

func (l *textLog) last() string {
	if len(l.texts) == 0 {
		return ""
	}
	return l.texts[len(l.texts)-1]
}

// scriptedRand returns queued values, then the low bound.
type scriptedRand struct {
	values []int
	ranges [][2]int
}

func (r *scriptedRand) Range(min, max int) int {
	r.ranges = append(r.ranges, [2]int{min, max})
	if len(r.values) == 0 {
		return min
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// memBackend — хранилище прогресса в памяти вместо gdata.
type memBackend struct {
	data map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string][]byte{}}
}

func (m *memBackend) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := m.data[objectKey+"/"+propKey]
	return ok
}

func (m *memBackend) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	return m.data[objectKey+"/"+propKey], nil
}

func (m *memBackend) SaveObjectProp(objectKey, propKey string, data []byte) error {
	m.data[objectKey+"/"+propKey] = data
	return nil
}
