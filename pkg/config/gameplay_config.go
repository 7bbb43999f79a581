package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/decker502/cubesandbox/pkg/embedded"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultGameplayConfigPath 内嵌默认配置的路径
const DefaultGameplayConfigPath = "data/gameplay.yaml"

// GameplayConfig 沙盒玩法配置
//
// 配置文件位置: data/gameplay.yaml（内嵌），可用 -config 参数从磁盘覆盖。
// 未出现在 YAML 中的字段保持 DefaultGameplayConfig 的值。
type GameplayConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Controller ControllerConfig `yaml:"controller"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Scene      SceneConfig      `yaml:"scene"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig 相机投影与初始位姿
type CameraConfig struct {
	// FovYDegrees 垂直视场角（度）
	FovYDegrees float32 `yaml:"fovYDegrees"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	// StartPosition 初始位置
	StartPosition mgl32.Vec3 `yaml:"startPosition"`
	// LookAt 初始注视点，用于推导初始 yaw/pitch
	LookAt mgl32.Vec3 `yaml:"lookAt"`
}

// ControllerConfig 第一人称控制器配置
type ControllerConfig struct {
	// MouseSensitivity 指针移动（像素）到角度（弧度）的系数
	MouseSensitivity float32 `yaml:"mouseSensitivity"`
	// MoveSpeed 移动速度（单位/秒）
	MoveSpeed float32 `yaml:"moveSpeed"`
	// AngleEpsilon 俯仰角离开 ±π/2 的最小距离
	AngleEpsilon float32     `yaml:"angleEpsilon"`
	Keys         KeyBindings `yaml:"keys"`
}

// SpawnerConfig 方块生成配置
type SpawnerConfig struct {
	// Distance 生成位置在相机前方的距离
	Distance float32 `yaml:"distance"`
	// StartSize 初始边长
	StartSize float32 `yaml:"startSize"`
	// EndSize 最终边长
	EndSize float32 `yaml:"endSize"`
	// Duration 生长时长
	Duration time.Duration `yaml:"duration"`
	// LaunchVelocity 父刚体的初速度
	LaunchVelocity mgl32.Vec3 `yaml:"launchVelocity"`
}

// ProjectileConfig 小球发射配置
type ProjectileConfig struct {
	MeshRadius     float32 `yaml:"meshRadius"`
	ColliderRadius float32 `yaml:"colliderRadius"`
	Speed          float32 `yaml:"speed"`
	Mass           float32 `yaml:"mass"`
	GravityScale   float32 `yaml:"gravityScale"`
	// Lifetime 小球存在时长，0 表示永不清理
	Lifetime time.Duration `yaml:"lifetime"`
}

// PhysicsConfig 物理模拟配置
type PhysicsConfig struct {
	Gravity mgl32.Vec3 `yaml:"gravity"`
	// Friction 接触时的水平阻尼系数（1/秒）
	Friction float32 `yaml:"friction"`
	// KillPlaneY 低于此高度的动态刚体被移除
	KillPlaneY float32 `yaml:"killPlaneY"`
}

// SceneConfig 初始场景配置
type SceneConfig struct {
	GroundY    float32    `yaml:"groundY"`
	GroundSize mgl32.Vec3 `yaml:"groundSize"`
	// SpawnDemoCube 是否在原点附近放置一个初始方块
	SpawnDemoCube bool `yaml:"spawnDemoCube"`
}

// DefaultGameplayConfig 返回默认配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Cube Sandbox"},
		Camera: CameraConfig{
			FovYDegrees:   45,
			Near:          0.1,
			Far:           1000,
			StartPosition: mgl32.Vec3{-2.5, 1.5, 9},
			LookAt:        mgl32.Vec3{0, 0, 0},
		},
		Controller: ControllerConfig{
			MouseSensitivity: 0.003,
			MoveSpeed:        10,
			AngleEpsilon:     0.001953125,
			Keys:             DefaultKeyBindings(),
		},
		Spawner: SpawnerConfig{
			Distance:       2,
			StartSize:      0.1,
			EndSize:        1,
			Duration:       500 * time.Millisecond,
			LaunchVelocity: mgl32.Vec3{0, 1, 0},
		},
		Projectile: ProjectileConfig{
			MeshRadius:     0.1,
			ColliderRadius: 0.05,
			Speed:          100,
			Mass:           0.1,
			GravityScale:   0.1,
			Lifetime:       10 * time.Second,
		},
		Physics: PhysicsConfig{
			Gravity:    mgl32.Vec3{0, -9.81, 0},
			Friction:   4,
			KillPlaneY: -50,
		},
		Scene: SceneConfig{
			GroundY:       -2,
			GroundSize:    mgl32.Vec3{100, 1, 100},
			SpawnDemoCube: true,
		},
	}
}

// ParseGameplayConfig 解析 YAML 配置，缺省字段使用默认值
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return cfg, nil
}

// LoadGameplayConfig 从磁盘加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// LoadEmbeddedGameplayConfig 加载内嵌的默认配置文件
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedGameplayConfig() (*GameplayConfig, error) {
	data, err := embedded.ReadFile(DefaultGameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// Validate 验证配置有效性，返回第一个无效字段的错误
func (c *GameplayConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Camera.FovYDegrees <= 0 || c.Camera.FovYDegrees >= 180 {
		return fmt.Errorf("camera fovYDegrees must be in (0, 180), got %.2f", c.Camera.FovYDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near(%.3f) far(%.3f)", c.Camera.Near, c.Camera.Far)
	}

	if c.Controller.MouseSensitivity <= 0 {
		return fmt.Errorf("controller mouseSensitivity must be positive, got %f", c.Controller.MouseSensitivity)
	}
	if c.Controller.MoveSpeed < 0 {
		return fmt.Errorf("controller moveSpeed must not be negative, got %f", c.Controller.MoveSpeed)
	}
	if c.Controller.AngleEpsilon <= 0 || c.Controller.AngleEpsilon >= math.Pi/4 {
		return fmt.Errorf("controller angleEpsilon must be in (0, π/4), got %f", c.Controller.AngleEpsilon)
	}
	if _, err := c.Controller.Keys.Resolve(); err != nil {
		return fmt.Errorf("controller keys: %w", err)
	}

	if c.Spawner.StartSize <= 0 || c.Spawner.EndSize <= 0 {
		return fmt.Errorf("spawner sizes must be positive: start(%.3f) end(%.3f)", c.Spawner.StartSize, c.Spawner.EndSize)
	}
	if c.Spawner.Duration < 0 {
		return fmt.Errorf("spawner duration must not be negative, got %v", c.Spawner.Duration)
	}

	if c.Projectile.MeshRadius <= 0 || c.Projectile.ColliderRadius <= 0 {
		return fmt.Errorf("projectile radii must be positive: mesh(%.3f) collider(%.3f)",
			c.Projectile.MeshRadius, c.Projectile.ColliderRadius)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile speed must be positive, got %f", c.Projectile.Speed)
	}
	if c.Projectile.Mass <= 0 {
		return fmt.Errorf("projectile mass must be positive, got %f", c.Projectile.Mass)
	}
	if c.Projectile.Lifetime < 0 {
		return fmt.Errorf("projectile lifetime must not be negative, got %v", c.Projectile.Lifetime)
	}

	if c.Physics.Friction < 0 {
		return fmt.Errorf("physics friction must not be negative, got %f", c.Physics.Friction)
	}
	for i := 0; i < 3; i++ {
		if c.Scene.GroundSize[i] <= 0 {
			return fmt.Errorf("scene groundSize must be positive, got %v", c.Scene.GroundSize)
		}
	}
	return nil
}

// FovY 返回垂直视场角（弧度）
func (c CameraConfig) FovY() float32 {
	return mgl32.DegToRad(c.FovYDegrees)
}

// StartSizeVec 返回三个轴相同的初始尺寸
func (c SpawnerConfig) StartSizeVec() mgl32.Vec3 {
	return mgl32.Vec3{c.StartSize, c.StartSize, c.StartSize}
}

// EndSizeVec 返回三个轴相同的最终尺寸
func (c SpawnerConfig) EndSizeVec() mgl32.Vec3 {
	return mgl32.Vec3{c.EndSize, c.EndSize, c.EndSize}
}
