package gctx

import (
	"cellboard/src"
	"cellboard/src/logx"
	"cellboard/ui/gui/gbase"
	"cellboard/ui/gui/gbase/gconf"
	"cellboard/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIBoardContext struct {
	Board        *src.BoardController
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	ConfigFile   string
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIBoardContext(bc *src.BoardController, a *ghelper.GUIAssetsWorker, c *gconf.Config, file string, l logx.Logger) *GUIBoardContext {
	return &GUIBoardContext{
		Board:        bc,
		AssetsWorker: a,
		Config:       c,
		ConfigFile:   file,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}

// ApplyTheme re-derives palette and cell theme after a config change.
func (ctx *GUIBoardContext) ApplyTheme() {
	ctx.Theme = gbase.PaletteFromString(ctx.Config.Theme)
	ctx.Board.SetTheme(gbase.CellTheme(ctx.Config.Theme, ctx.Config.CornerRadius))
}
