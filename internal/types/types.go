// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS. Ноль означает "нет сущности".
type EntityID int

// Vec3 — точка или смещение в мировых координатах сцены.
// Y направлена вверх, Z — от камеры вглубь сцены.
type Vec3 struct {
	X, Y, Z float64
}

// Add возвращает сумму векторов.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub возвращает разность векторов.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale умножает вектор на скаляр.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Up is the world up axis.
var Up = Vec3{Y: 1}
