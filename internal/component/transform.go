// internal/component/transform.go
package component

import "go-timber/internal/types"

// Transform — позиция сущности относительно родителя.
// Parent == 0 означает, что позиция задана в мировых координатах.
type Transform struct {
	Local  types.Vec3
	Parent types.EntityID
}
