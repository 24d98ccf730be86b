package charts

import "strings"

// Palettes are ANSI 256-colour ramps named after the seaborn palettes the
// report uses. The "_d" ramps run dark to light.
var palettes = map[string][]int{
	"blues_d":   {17, 18, 19, 25, 31, 32, 38, 39, 74, 110},
	"greens_d":  {22, 28, 29, 34, 35, 71, 72, 77, 114, 151},
	"oranges_d": {130, 166, 172, 202, 208, 209, 214, 215, 216, 223},
	"set2":      {73, 209, 110, 176, 149, 221, 180, 145},
	"purple":    {91},
}

const fallbackColor = 250

// Palette returns the colour ramp for name, matching case-insensitively.
// Unknown names yield a single neutral grey.
func Palette(name string) []int {
	if p, ok := palettes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return []int{fallbackColor}
}

func colorAt(p []int, i int) int {
	return p[i%len(p)]
}
