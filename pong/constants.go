package pong

import "math"

// Field dimensions used by the hosts
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// Paddle geometry and speeds in pixels and pixels/second
const (
	PaddleWidth   = 10
	PaddleHeight  = 100
	PaddleInset   = 10
	PlayerSpeed   = 420.0
	AISpeed       = 320.0
	TrackDeadzone = 6.0
)

// Ball physics
const (
	BallSize         = 10
	BaseBallSpeed    = 360.0
	MaxBallSpeed     = 840.0
	SpeedIncrease    = 1.06
	MaxServeAngle    = 0.35 // ~20°
	MaxDeflection    = math.Pi / 4
	MinVerticalSpeed = 60.0
	SubstepPixels    = 4.0
	FlushEpsilon     = 1.0
)

// Match rules
const (
	PointsToWin        = 5
	DefaultBestOf      = 3
	IntermissionMillis = 1100
	MaxFrameDT         = 0.25
)

// Opponent tuning
const (
	AIDeadzone       = 14.0
	AIReactionMillis = 110
	AIHumanError     = 0.03
	AICenterBias     = 0.22
	AICenterBand     = 8.0
)
