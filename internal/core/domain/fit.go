package domain

import "math"

// LogoFillRatio is the largest share of a zone's width or height a freshly
// fitted logo may occupy.
const LogoFillRatio = 0.8

// Dimensions is the natural pixel size of a loaded bitmap.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AspectRatio returns width / height, or ErrInvalidImage when either side is
// not a positive finite number.
func (d Dimensions) AspectRatio() (float64, error) {
	if !positiveFinite(d.Width) || !positiveFinite(d.Height) {
		return 0, ErrInvalidImage
	}
	return d.Width / d.Height, nil
}

// FitLogo places a logo of the given intrinsic size inside zone, centered on
// both axes, preserving its aspect ratio and using at most LogoFillRatio of
// the zone's width and height.
func FitLogo(zone Box, logo Dimensions) (Placement, error) {
	ratio, err := logo.AspectRatio()
	if err != nil {
		return Placement{}, err
	}

	width := zone.Width * LogoFillRatio
	height := width / ratio
	if height > zone.Height*LogoFillRatio {
		height = zone.Height * LogoFillRatio
		width = height * ratio
	}

	return Placement{
		X:      clampPosition(zone.X+(zone.Width-width)/2, zone.X),
		Y:      clampPosition(zone.Y+(zone.Height-height)/2, zone.Y),
		Width:  width,
		Height: height,
	}, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
