package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cellboard/src"
	"cellboard/src/logx"
	"cellboard/ui/gui/gbase"
	"cellboard/ui/gui/gbase/gconf"
	"cellboard/ui/gui/gboard"
	"cellboard/ui/gui/gctx"
	"cellboard/ui/gui/ghelper"
)

type GUIProcessing struct {
	ctx   *gctx.GUIBoardContext
	board *gboard.Board
}

func NewGUI(bc *src.BoardController, conf *gconf.Config, confFile string, l logx.Logger) (*GUIProcessing, error) {
	if bc == nil || conf == nil {
		return nil, errors.New("nil board or config")
	}
	ctx := gctx.NewGUIBoardContext(bc, ghelper.NewGUIAssetsWorker(), conf, confFile, l)
	return &GUIProcessing{
		ctx:   ctx,
		board: gboard.NewBoard(ctx),
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("CellBoard")
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gp.ctx.ConfigFile != "" {
			if err := gp.ctx.Config.Save(gp.ctx.ConfigFile); err != nil {
				gp.ctx.Logx.Warnf("save config: %v", err)
			}
		}
		return gbase.ErrExit
	}
	return gp.board.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.board.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
