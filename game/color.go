package game

import (
	"errors"
	"fmt"
	"strings"

	"morris/utils"

	"golang.org/x/exp/rand"
)

var ErrUnknownColor = errors.New("unknown color")

// Color identifies the pieces of one player.
type Color int

const (
	NoColor Color = iota // 0
	Orange               // 1
	Red                  // 2
	Blue                 // 3
	Green                // 4
	Yellow               // 5
	Purple               // 6
)

// Palette lists every colour a player can be assigned.
var Palette = []Color{Orange, Red, Blue, Green, Yellow, Purple}

var colorNames = []string{"orange", "red", "blue", "green", "yellow", "purple"}

func (c Color) String() string {
	i := utils.FindIndex(Palette, c)
	if i < 0 {
		return "none"
	}
	return colorNames[i]
}

// ParseColor returns the palette colour with the given (case-insensitive) name.
func ParseColor(name string) (Color, error) {
	i := utils.FindIndex(colorNames, strings.ToLower(strings.TrimSpace(name)))
	if i < 0 {
		return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return Palette[i], nil
}

// RandomColors draws two distinct colours from the palette.
func RandomColors(r *rand.Rand) (Color, Color) {
	i := r.Intn(len(Palette))
	j := r.Intn(len(Palette) - 1)
	if j >= i {
		j++
	}
	return Palette[i], Palette[j]
}
