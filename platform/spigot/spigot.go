// Package spigot registers converters for Spigot API types. Spigot servers
// always expose the Bukkit API, so linking this package links the bukkit
// package too.
package spigot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/redstoneore/rson"
	_ "github.com/redstoneore/rson/platform/bukkit"
)

type ChatColor int

const (
	Black ChatColor = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

var colorNames = map[ChatColor]string{
	Black:       "BLACK",
	DarkBlue:    "DARK_BLUE",
	DarkGreen:   "DARK_GREEN",
	DarkAqua:    "DARK_AQUA",
	DarkRed:     "DARK_RED",
	DarkPurple:  "DARK_PURPLE",
	Gold:        "GOLD",
	Gray:        "GRAY",
	DarkGray:    "DARK_GRAY",
	Blue:        "BLUE",
	Green:       "GREEN",
	Aqua:        "AQUA",
	Red:         "RED",
	LightPurple: "LIGHT_PURPLE",
	Yellow:      "YELLOW",
	White:       "WHITE",
}

var colorsByName = lo.Invert(colorNames)

func (c ChatColor) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "ChatColor(" + strconv.Itoa(int(c)) + ")"
}

// ParseChatColor accepts color names in any case.
func ParseChatColor(name string) (ChatColor, error) {
	c, ok := colorsByName[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("spigot: unknown chat color %q", name)
	}
	return c, nil
}

type BlockVector struct {
	X, Y, Z int
}

func (v BlockVector) String() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}

// ParseBlockVector parses the "x,y,z" form produced by String.
func ParseBlockVector(s string) (BlockVector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return BlockVector{}, fmt.Errorf("spigot: block vector %q: want x,y,z", s)
	}
	var coords [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return BlockVector{}, fmt.Errorf("spigot: block vector %q: %w", s, err)
		}
		coords[i] = n
	}
	return BlockVector{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func init() {
	rson.Provide(rson.SentinelSpigot, rson.BundleFunc(addConverters))
}

func addConverters(r *rson.Registry) {
	r.Register(rson.NewConverter(
		func(c ChatColor) (string, error) {
			name, ok := colorNames[c]
			if !ok {
				return "", fmt.Errorf("spigot: unknown chat color %d", int(c))
			}
			return name, nil
		},
		ParseChatColor,
	))
	r.Register(rson.NewConverter(
		func(v BlockVector) (string, error) { return v.String(), nil },
		ParseBlockVector,
	))
}
