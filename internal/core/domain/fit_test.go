package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLogo_HeightConstrained(t *testing.T) {
	p, err := FitLogo(Box{X: 50, Y: 50, Width: 120, Height: 120}, Dimensions{Width: 200, Height: 100})
	require.NoError(t, err)

	assert.InDelta(t, 96, p.Width, 1e-9)
	assert.InDelta(t, 48, p.Height, 1e-9)
	assert.InDelta(t, 62, p.X, 1e-9)
	assert.InDelta(t, 86, p.Y, 1e-9)
	assert.Zero(t, p.Rotation)
}

func TestFitLogo_TallLogoInWideZone(t *testing.T) {
	p, err := FitLogo(Box{X: 0, Y: 0, Width: 300, Height: 100}, Dimensions{Width: 50, Height: 200})
	require.NoError(t, err)

	assert.InDelta(t, 80, p.Height, 1e-9)
	assert.InDelta(t, 20, p.Width, 1e-9)
	assert.InDelta(t, 140, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)
}

func TestFitLogo_NeverExceedsFillRatio(t *testing.T) {
	zones := []Box{
		{Width: 50, Height: 50},
		{Width: 120, Height: 120},
		{Width: 400, Height: 60},
		{Width: 55, Height: 700},
	}
	logos := []Dimensions{
		{Width: 1, Height: 1},
		{Width: 200, Height: 100},
		{Width: 100, Height: 200},
		{Width: 4000, Height: 3},
		{Width: 3, Height: 4000},
	}

	for _, z := range zones {
		for _, l := range logos {
			p, err := FitLogo(z, l)
			require.NoError(t, err)
			assert.LessOrEqual(t, p.Width, z.Width*LogoFillRatio+1e-9)
			assert.LessOrEqual(t, p.Height, z.Height*LogoFillRatio+1e-9)
			assert.InEpsilon(t, l.Width/l.Height, p.Width/p.Height, 1e-9)
		}
	}
}

func TestFitLogo_InvalidDimensions(t *testing.T) {
	zone := Box{Width: 100, Height: 100}
	bad := []Dimensions{
		{Width: 0, Height: 10},
		{Width: 10, Height: 0},
		{Width: -5, Height: 10},
		{Width: math.NaN(), Height: 10},
		{Width: math.Inf(1), Height: 10},
	}

	for _, d := range bad {
		_, err := FitLogo(zone, d)
		assert.ErrorIs(t, err, ErrInvalidImage, "dims %v", d)
	}
}
