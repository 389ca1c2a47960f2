package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go Regular face
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	e.fontSource = src
	return nil
}

// getUIFontSize returns the font size for panel text, scaled to the cell size
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * e.settings.Raycast.CellSize / 22.0
	if size < 12 {
		size = 12
	}
	if size > 28 {
		size = 28
	}
	return size
}

// getUIFontFace returns a cached face for panel text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}

// getTitleFontFace returns a cached face for button labels, 4pt larger than UI text
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	size := e.getUIFontSize() + 4
	if e.cachedTitleFace == nil || e.cachedTitleFontSize != size {
		e.cachedTitleFontSize = size
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedTitleFace
}
