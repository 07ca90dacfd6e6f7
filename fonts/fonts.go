package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Body  FontName = "body"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the Go Regular faces used by the HUD and game over screen.
func LoadDefaults(hudSize float64) error {
	if err := LoadFontWithSize(HUD, goregular.TTF, hudSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, goregular.TTF, 48); err != nil {
		return err
	}
	return LoadFontWithSize(Body, goregular.TTF, 20)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
