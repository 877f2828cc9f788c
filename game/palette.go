package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color constants
var (
	colorBackground  color.Color = colornames.Black
	colorPlayer      color.Color = colornames.Yellow
	colorHazardAlive color.Color = colornames.Red
	colorHazardDying color.Color = colornames.Green
)
