package kinematic

// This package holds the movement math for walking along the street.

import (
	"math"

	"github.com/cbodonnell/kvartal/pkg/game/constants"
)

// Direction is the horizontal direction a character faces.
type Direction int8

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// StepLeft moves x one step to the left without leaving the street.
func StepLeft(x float64) float64 {
	return math.Max(constants.StreetMinX, x-constants.PlayerStep)
}

// StepRight moves x one step to the right without leaving the street.
func StepRight(x float64) float64 {
	return math.Min(constants.StreetMaxX, x+constants.PlayerStep)
}

// Bob returns the vertical offset of the walking animation for a walk cycle.
func Bob(walkCycle float64, walking bool) float64 {
	if !walking {
		return 0
	}
	return math.Sin(walkCycle*math.Pi) * constants.WalkBobAmplitude
}
