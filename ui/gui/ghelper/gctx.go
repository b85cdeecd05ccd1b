package ghelper

import (
	"blockpuzzle/src"
	"blockpuzzle/src/logx"
	"blockpuzzle/ui/gui/gbase"
	"blockpuzzle/ui/gui/gbase/gconf"
	"blockpuzzle/ui/gui/ghelper/gaudio"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.GameBuilder
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Audio        *gaudio.Player
	Logx         logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, a *GUIAssetsWorker, c *gconf.Config, p *gaudio.Player, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Audio:        p,
		Logx:         l,
	}
}

func (ctx *GUIGameContext) T(key string) string {
	return ctx.AssetsWorker.Lang().T(key)
}

func (ctx *GUIGameContext) Tf(key string, args ...any) string {
	return ctx.AssetsWorker.Lang().Tf(key, args...)
}
