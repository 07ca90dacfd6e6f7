package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/tilerunner/tilemap"
)

var (
	//go:embed levels/*.tmx
	assetFS embed.FS
)

// LevelDir is the directory inside Levels() holding the maps.
const LevelDir = "levels"

// Levels returns the embedded level files.
func Levels() fs.FS {
	return assetFS
}

// FallbackLayouts is played when no TMX levels can be found.
var FallbackLayouts = []tilemap.Layout{
	{
		Name: "fallback",
		Rows: []string{
			"                    ",
			"                    ",
			"                    ",
			"          o o o     ",
			"         #####      ",
			"    m               ",
			" P      1       2  *",
			"####################",
			"####################",
		},
	},
}
