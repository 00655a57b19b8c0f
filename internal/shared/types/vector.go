package types

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a world-space position or direction
type Vector3 struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
	Z float64 `json:"z" yaml:"z" toml:"z"`
}

// Vector2 is a planar input axis
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vector3) vec() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func fromVec(v r3.Vec) Vector3 { return Vector3{X: v.X, Y: v.Y, Z: v.Z} }

// Add returns v + o
func (v Vector3) Add(o Vector3) Vector3 {
	return fromVec(r3.Add(v.vec(), o.vec()))
}

// Sub returns v - o
func (v Vector3) Sub(o Vector3) Vector3 {
	return fromVec(r3.Sub(v.vec(), o.vec()))
}

// Scale returns v * k
func (v Vector3) Scale(k float64) Vector3 {
	return fromVec(r3.Scale(k, v.vec()))
}

// Length returns the euclidean norm
func (v Vector3) Length() float64 {
	return r3.Norm(v.vec())
}

// Normalized returns v scaled to unit length, or the zero vector
func (v Vector3) Normalized() Vector3 {
	if v == (Vector3{}) {
		return Vector3{}
	}
	return fromVec(r3.Unit(v.vec()))
}

// Distance returns |a - b|
func Distance(a, b Vector3) float64 {
	return r3.Norm(r3.Sub(a.vec(), b.vec()))
}

// Length returns the euclidean norm
func (v Vector2) Length() float64 {
	return r2.Norm(r2.Vec{X: v.X, Y: v.Y})
}

// ToWorld maps a planar axis onto the XZ plane
func (v Vector2) ToWorld() Vector3 {
	return Vector3{X: v.X, Z: v.Y}
}
