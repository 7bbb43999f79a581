// validate_config 检查玩法配置文件能否被游戏加载
//
// 用法:
//
//	go run ./cmd/validate_config [path]
//
// path 默认为 data/gameplay.yaml。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/cubesandbox/pkg/config"
)

func main() {
	path := config.DefaultGameplayConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameplayConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", path)

	keys := cfg.Controller.Keys
	fmt.Printf("✅ 窗口: %dx%d %q\n", cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	fmt.Printf("✅ 移动: 前 %s 后 %s 左 %s 右 %s 上 %s 下 %s\n",
		keys.Forward, keys.Back, keys.Left, keys.Right, keys.Up, keys.Down)
	fmt.Printf("✅ 光标锁定: %s / %s，生成: %s，发射: %s\n",
		keys.LockCursor, keys.ReleaseCursor, keys.Spawn, keys.Shoot)
	fmt.Printf("✅ 方块: %.2f → %.2f，用时 %v\n", cfg.Spawner.StartSize, cfg.Spawner.EndSize, cfg.Spawner.Duration)
	fmt.Printf("✅ 小球: 速度 %.1f，质量 %.2f，重力倍率 %.2f\n",
		cfg.Projectile.Speed, cfg.Projectile.Mass, cfg.Projectile.GravityScale)
}
