package gui

import (
	"image"

	"blockpuzzle/src"
	"blockpuzzle/src/feedback"
	"blockpuzzle/src/logx"
	"blockpuzzle/ui/gui/gbase/gconf"
	"blockpuzzle/ui/gui/gdraw"
	"blockpuzzle/ui/gui/ghelper"
	"blockpuzzle/ui/gui/ghelper/gaudio"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

// NewGUI loads blockpuzzle.json; audio is the env/flag baseline the saved
// volume and mute switch are applied to
func NewGUI(b *src.GameBuilder, audio feedback.AudioConfig, logger logx.Logger) (*GUIProcessing, error) {
	cfg, err := gconf.NewGUIConfig()
	if err != nil {
		return nil, err
	}
	as, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}
	player := gaudio.NewPlayer(cfg.Audio(audio))
	ctx := ghelper.NewGUIGameContext(b, as, cfg, player, logger.Named("gui"))
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowIcon([]image.Image{
		gp.ctx.AssetsWorker.IconNative(16),
		gp.ctx.AssetsWorker.IconNative(32),
		gp.ctx.AssetsWorker.IconNative(48),
		gp.ctx.AssetsWorker.IconNative(64),
	})
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Block Puzzle")
	gp.ctx.Logx.Infof("start GUI %dx%d, theme %s, lang %s", gp.ctx.Config.WindowW, gp.ctx.Config.WindowH, gp.ctx.Config.Theme, gp.ctx.Config.Lang)
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

// fixed logical size, ebiten scales it to the window
func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
