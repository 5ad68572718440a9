package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRectangleTransform_ClampsToMinimum(t *testing.T) {
	box := Box{X: 10, Y: 20, Width: 120, Height: 80}
	scales := []float64{0, -1, -3.5, 0.01, 0.2, 0.5, 1, 2.5, math.NaN(), math.Inf(1), math.Inf(-1)}

	for _, sx := range scales {
		for _, sy := range scales {
			got := ApplyRectangleTransform(box, sx, sy)
			assert.GreaterOrEqual(t, got.Box.Width, MinZoneSize, "sx=%v sy=%v", sx, sy)
			assert.GreaterOrEqual(t, got.Box.Height, MinZoneSize, "sx=%v sy=%v", sx, sy)
			assert.False(t, math.IsInf(got.Box.Width, 0) || math.IsNaN(got.Box.Width))
			assert.Equal(t, 10.0, got.Box.X)
			assert.Equal(t, 20.0, got.Box.Y)
			assert.True(t, got.ResetHandle)
		}
	}
}

func TestApplyRectangleTransform_Scales(t *testing.T) {
	got := ApplyRectangleTransform(Box{X: 5, Y: 5, Width: 100, Height: 60}, 1.5, 2)
	assert.Equal(t, Box{X: 5, Y: 5, Width: 150, Height: 120}, got.Box)
}

func TestApplyCircleTransform(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		want  Box
	}{
		{name: "grow", scale: 2, want: Box{X: -50, Y: -50, Width: 200, Height: 200}},
		{name: "identity", scale: 1, want: Box{X: 0, Y: 0, Width: 100, Height: 100}},
		{name: "shrink below minimum stays centered", scale: 0.1, want: Box{X: 25, Y: 25, Width: 50, Height: 50}},
		{name: "zero", scale: 0, want: Box{X: 25, Y: 25, Width: 50, Height: 50}},
		{name: "negative", scale: -2, want: Box{X: 25, Y: 25, Width: 50, Height: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyCircleTransform(Point{X: 50, Y: 50}, 50, tt.scale)
			assert.Equal(t, tt.want, got.Box)
			assert.True(t, got.ResetHandle)
		})
	}
}

func TestTransformBox_CircleStaysSquare(t *testing.T) {
	box := Box{X: 100, Y: 100, Width: 80, Height: 80}
	pairs := [][2]float64{{2, 1}, {1, 3}, {0.5, 0.9}, {0, 4}, {-1, 0.2}, {1.7, 1.7}}

	for _, p := range pairs {
		got := TransformBox(ShapeCircle, box, p[0], p[1])
		assert.Equal(t, got.Box.Width, got.Box.Height, "scale %v", p)
		assert.GreaterOrEqual(t, got.Box.Width, MinZoneSize)
	}

	got := TransformBox(ShapeCircle, box, 2, 1)
	assert.Equal(t, 160.0, got.Box.Width)
	assert.Equal(t, box.Center(), got.Box.Center())
}

func TestMoveBox(t *testing.T) {
	got := MoveBox(Box{X: 10, Y: 10, Width: 60, Height: 70}, -5, 15)
	assert.Equal(t, Box{X: 5, Y: 25, Width: 60, Height: 70}, got)
}

func TestNormalizeBox(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		in    Box
		want  Box
	}{
		{name: "rectangle untouched", shape: ShapeRectangle, in: Box{Width: 80, Height: 60}, want: Box{Width: 80, Height: 60}},
		{name: "rectangle clamped", shape: ShapeRectangle, in: Box{Width: 10, Height: -4}, want: Box{Width: 50, Height: 50}},
		{name: "circle squared on larger side", shape: ShapeCircle, in: Box{Width: 60, Height: 90}, want: Box{Width: 90, Height: 90}},
		{name: "circle clamped", shape: ShapeCircle, in: Box{Width: 20, Height: 30}, want: Box{Width: 50, Height: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBox(tt.shape, tt.in))
		})
	}
}

func TestMoveBox_SaturatesInsteadOfOverflowing(t *testing.T) {
	tests := []struct {
		name   string
		box    Box
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{name: "positive overflow", box: Box{X: 1e308, Y: 0}, dx: 1e308, wantX: math.MaxFloat64},
		{name: "negative overflow", box: Box{X: 0, Y: -1e308}, dy: -1e308, wantY: -math.MaxFloat64},
		{name: "back from saturation", box: Box{X: math.MaxFloat64, Y: 5}, dx: -math.MaxFloat64, wantX: 0, wantY: 5},
		{name: "infinite delta", box: Box{X: 10, Y: 10}, dx: math.Inf(1), dy: math.Inf(-1), wantX: math.MaxFloat64, wantY: -math.MaxFloat64},
		{name: "NaN delta keeps position", box: Box{X: 10, Y: 20}, dx: math.NaN(), dy: math.NaN(), wantX: 10, wantY: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveBox(tt.box, tt.dx, tt.dy)
			assert.Equal(t, tt.wantX, got.X)
			assert.Equal(t, tt.wantY, got.Y)
		})
	}
}

func TestTransform_HugeGrowSaturates(t *testing.T) {
	got := ApplyRectangleTransform(Box{Width: 120, Height: 80}, 1e308, math.Inf(1))
	assert.Equal(t, math.MaxFloat64, got.Box.Width)
	assert.Equal(t, math.MaxFloat64, got.Box.Height)

	circle := ApplyCircleTransform(Point{X: 50, Y: 50}, 50, math.Inf(1))
	assert.Equal(t, math.MaxFloat64, circle.Box.Width)
	assert.False(t, math.IsInf(circle.Box.X, 0) || math.IsNaN(circle.Box.X))
	assert.False(t, math.IsInf(circle.Box.Y, 0) || math.IsNaN(circle.Box.Y))
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: math.NaN(), want: MinZoneSize},
		{in: math.Inf(-1), want: MinZoneSize},
		{in: -10, want: MinZoneSize},
		{in: 49.9, want: MinZoneSize},
		{in: 75, want: 75},
		{in: math.Inf(1), want: math.MaxFloat64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, clampSize(tt.in), "in=%v", tt.in)
	}
}
