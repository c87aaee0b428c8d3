package ghelper

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"cellboard/src/base"
	"cellboard/ui/gui/ghelper/gimages"
)

// GUIAssetsWorker caches piece sprites and the UI font face. Sprites are
// rebuilt when the square size changes.
type GUIAssetsWorker struct {
	pieceImages map[base.Piece]*ebiten.Image
	pieceSide   int
	face        font.Face
}

func NewGUIAssetsWorker() *GUIAssetsWorker {
	return &GUIAssetsWorker{face: basicfont.Face7x13}
}

func (aw *GUIAssetsWorker) Piece(p base.Piece, side int) *ebiten.Image {
	if side < 8 {
		side = 8
	}
	if aw.pieceImages == nil || aw.pieceSide != side {
		aw.pieceImages = gimages.BuildPieceImages(side)
		aw.pieceSide = side
	}
	return aw.pieceImages[p]
}

func (aw *GUIAssetsWorker) Face() font.Face {
	return aw.face
}
