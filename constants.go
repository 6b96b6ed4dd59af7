package main

import "image/color"

const windowTitle = "Star fighter"

// HUD constants
const (
	hudMarginX = 12
	hudMarginY = 10
	lineHeight = 16
)

// Modal constants
const (
	modalWidth      = 440.0
	modalPadding    = 24.0
	modalTitleScale = 2.0
	modalTitleGap   = 14.0
)

// Barrel geometry
const (
	barrelWidth      = 8.0
	barrelBaseRadius = 18.0
)

// Enemy geometry, relative to the enemy bounds
const (
	enemyHullRatio    = 0.4  // hull width
	enemyCockpitRatio = 0.15 // cockpit radius
)

// Background dust
const (
	dustCount     = 70
	dustBaseSpeed = 0.02 // screen heights per second
)

// Aim guide drawn in the debug overlay
const (
	aimTrailSegmentCount = 20
	aimTrailStep         = 0.05 // seconds of shot flight per segment
)

// Color constants
var (
	colorDust     = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colorCockpit  = color.NRGBA{R: 20, G: 24, B: 40, A: 255}
	colorDebug    = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorAimTrail = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
)
