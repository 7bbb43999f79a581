// Package app 提供沙盒应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：日志输出、配置加载、输入采样和场景管理。
// 调用方通过 NewApp() 创建实例后交给 ebiten.RunGame 运行。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/scenes"
	"github.com/decker502/cubesandbox/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LogFile 日志文件路径，非空时日志写入按大小轮转的文件
	LogFile string
	// Gameplay 玩法配置，为 nil 时加载内嵌的默认配置
	Gameplay *config.GameplayConfig
}

// App 是沙盒应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameplay     *config.GameplayConfig
	input        *utils.InputState
	sampler      *utils.EbitenInputSampler
	cursor       utils.CursorLocker
	verbose      bool

	// Layout 记录的窗口逻辑尺寸
	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化沙盒应用
//
// Gameplay 为 nil 时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	configureLogging(cfg)

	gameplay := cfg.Gameplay
	if gameplay == nil {
		var err error
		gameplay, err = config.LoadEmbeddedGameplayConfig()
		if err != nil {
			return nil, fmt.Errorf("玩法配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载内嵌玩法配置: %s", config.DefaultGameplayConfigPath)
	}

	keys, err := gameplay.Controller.Keys.Resolve()
	if err != nil {
		return nil, fmt.Errorf("按键配置无效: %w", err)
	}

	a := &App{
		gameplay: gameplay,
		input:    utils.NewInputState(),
		sampler:  utils.NewEbitenInputSampler(keys.Keys(), keys.MouseButtons()),
		cursor:   utils.EbitenCursor{},
		verbose:  cfg.Verbose,
		width:    gameplay.Window.Width,
		height:   gameplay.Window.Height,
	}

	a.sceneManager = game.NewSceneManager()
	a.sceneManager.SetSceneFactory(a.createScene)
	if !a.sceneManager.LoadScene(scenes.SandboxSceneName) {
		return nil, fmt.Errorf("无法创建场景: %s", scenes.SandboxSceneName)
	}

	return a, nil
}

// configureLogging 配置日志输出
// LogFile 优先于 Verbose；两者都未设置时丢弃日志
func configureLogging(cfg Config) {
	switch {
	case cfg.LogFile != "":
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	case !cfg.Verbose:
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// createScene 场景工厂
func (a *App) createScene(name string) game.Scene {
	switch name {
	case scenes.SandboxSceneName:
		return scenes.NewSandboxScene(a.gameplay, a.input, a.cursor, utils.PerspectiveRayCaster{})
	}
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameplay.Window.Width, a.gameplay.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameplay.Window.Width, a.gameplay.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// F5 重置场景，同时释放光标
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.cursor.SetCursorLocked(false)
		a.sceneManager.ReloadScene()
	}

	a.sampler.Sample(a.input, a.width, a.height)
	a.sceneManager.Update(a.FrameDelta())
	return nil
}

// FrameDelta 返回每个 tick 的固定模拟步长
func (a *App) FrameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 使用窗口的实际尺寸作为逻辑屏幕尺寸，并记录下来供射线投射使用
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.width, a.height = outsideWidth, outsideHeight
	}
	return a.width, a.height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Gameplay 返回生效的玩法配置
func (a *App) Gameplay() *config.GameplayConfig {
	return a.gameplay
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
