package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

var (
	TTFSmallFont  font.Face
	TTFNormalFont font.Face
	TTFLargeFont  font.Face
	// TitleFont is used for headings and the menu title.
	TitleFont font.Face
)

const dpi = 72

func loadFonts() error {
	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	TTFSmallFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	TTFNormalFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    16,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	TTFLargeFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    24,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse bold font: %v", err)
	}
	TitleFont, err = opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    40,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %v", err)
	}

	return nil
}
