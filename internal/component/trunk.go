// internal/component/trunk.go
package component

// Owner — кто сейчас владеет сегментом ствола.
type Owner int

const (
	OwnerPool Owner = iota
	OwnerTree
)

func (o Owner) String() string {
	if o == OwnerTree {
		return "tree"
	}
	return "pool"
}

// Trunk — один сегмент ствола. Вертикальное смещение хранится в Transform.
type Trunk struct {
	Active bool
	Owner  Owner
}
