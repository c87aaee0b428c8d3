package gbase

import (
	"errors"
	"image/color"

	"cellboard/src/cell"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1000
	WindowH int = 760
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	LabelText    color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	if p == "dark" {
		return DarkPalette
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf0, 0xec, 0xe3, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	LabelText:    color.RGBA{0x33, 0x33, 0x33, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x15, 0x15, 0x18, 0xff},
	ButtonFill:   color.RGBA{0x24, 0x24, 0x28, 0xff},
	ButtonStroke: color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	LabelText:    color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}

// ---- Board cell themes ----

// CellTheme builds the cell style layers matching an app theme. The
// premove variants fully replace the base fill; drop hover is an inset
// ring so the fill underneath stays readable.
func CellTheme(theme string, cornerRadius float64) cell.Theme {
	if theme == "dark" {
		return cell.Theme{
			Light:        cell.Fill(color.RGBA{0x8c, 0x95, 0xa5, 0xff}),
			Dark:         cell.Fill(color.RGBA{0x3e, 0x46, 0x54, 0xff}),
			PremoveLight: cell.Fill(color.RGBA{0xc0, 0x6e, 0x6e, 0xff}),
			PremoveDark:  cell.Fill(color.RGBA{0x96, 0x46, 0x46, 0xff}),
			DropHover:    cell.Style{Ring: &cell.Ring{Color: color.RGBA{0xf2, 0xf2, 0xf2, 0xff}, Width: 3}},
			CornerRadius: cornerRadius,
		}
	}
	return cell.Theme{
		Light:        cell.Fill(color.RGBA{0xf0, 0xd9, 0xb5, 0xff}),
		Dark:         cell.Fill(color.RGBA{0xb5, 0x88, 0x63, 0xff}),
		PremoveLight: cell.Fill(color.RGBA{0xf4, 0x7c, 0x7c, 0xff}),
		PremoveDark:  cell.Fill(color.RGBA{0xd9, 0x54, 0x54, 0xff}),
		DropHover:    cell.Style{Ring: &cell.Ring{Color: color.RGBA{0x2a, 0xa1, 0xd1, 0xff}, Width: 3}},
		CornerRadius: cornerRadius,
	}
}
