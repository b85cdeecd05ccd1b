package main

import (
	"fmt"
	"math/rand"
	"time"

	"blockpuzzle/src"
	"blockpuzzle/src/engine/myengine"
	"blockpuzzle/src/feedback"
	"blockpuzzle/src/logx"
	"blockpuzzle/ui/gui"
)

func GetLogger() *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString("debug"),
		false,
		true,
	)
	l.InitLogger(nil)
	return l
}

func RunGUI() error {
	logger := GetLogger()
	gb := src.NewBuilderBoard(logger, rand.New(rand.NewSource(time.Now().UnixNano())))
	gb.SetEngineWorker(myengine.NewGreedyEngine())
	gb.NewGame()
	g, err := gui.NewGUI(gb, feedback.DefaultAudioConfig(), logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func main() {
	RunGUI()
}
