package main

import (
	"flag"
	"log"

	"github.com/decker502/cubesandbox/pkg/app"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "从磁盘加载玩法配置（默认使用内嵌的 data/gameplay.yaml）")
	logFile := flag.String("logfile", "", "把日志写入指定文件（按大小轮转）")
	flag.Parse()

	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose: *verbose,
		LogFile: *logFile,
	}
	if *configPath != "" {
		gameplay, err := config.LoadGameplayConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Gameplay = gameplay
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	window := a.Gameplay().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
