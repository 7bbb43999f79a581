package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings 按键名称配置（YAML 中使用按键名，如 "W"、"Escape"）
type KeyBindings struct {
	Forward       string `yaml:"forward"`
	Back          string `yaml:"back"`
	Left          string `yaml:"left"`
	Right         string `yaml:"right"`
	Up            string `yaml:"up"`
	Down          string `yaml:"down"`
	LockCursor    string `yaml:"lockCursor"`
	ReleaseCursor string `yaml:"releaseCursor"`
	// Spawn 生成方块的鼠标按键："left" / "right" / "middle"
	Spawn string `yaml:"spawn"`
	// Shoot 发射小球的鼠标按键
	Shoot string `yaml:"shoot"`
}

// ControlKeys 解析后的按键绑定
type ControlKeys struct {
	Forward       ebiten.Key
	Back          ebiten.Key
	Left          ebiten.Key
	Right         ebiten.Key
	Up            ebiten.Key
	Down          ebiten.Key
	LockCursor    ebiten.Key
	ReleaseCursor ebiten.Key
	Spawn         ebiten.MouseButton
	Shoot         ebiten.MouseButton
}

// Keys 返回所有需要采样的键盘按键
func (k ControlKeys) Keys() []ebiten.Key {
	return []ebiten.Key{k.Forward, k.Back, k.Left, k.Right, k.Up, k.Down, k.LockCursor, k.ReleaseCursor}
}

// MouseButtons 返回所有需要采样的鼠标按键
func (k ControlKeys) MouseButtons() []ebiten.MouseButton {
	return []ebiten.MouseButton{k.Spawn, k.Shoot}
}

// DefaultKeyBindings 返回默认按键：WASD 平移，E/Q 升降，L 或 Escape 切换光标锁定
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:       "W",
		Back:          "S",
		Left:          "A",
		Right:         "D",
		Up:            "E",
		Down:          "Q",
		LockCursor:    "L",
		ReleaseCursor: "Escape",
		Spawn:         "left",
		Shoot:         "right",
	}
}

var keyNames = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD, "E": ebiten.KeyE,
	"F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH, "I": ebiten.KeyI, "J": ebiten.KeyJ,
	"K": ebiten.KeyK, "L": ebiten.KeyL, "M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO,
	"P": ebiten.KeyP, "Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX, "Y": ebiten.KeyY,
	"Z": ebiten.KeyZ,
	"ESCAPE":     ebiten.KeyEscape,
	"SPACE":      ebiten.KeySpace,
	"TAB":        ebiten.KeyTab,
	"SHIFT":      ebiten.KeyShiftLeft,
	"CONTROL":    ebiten.KeyControlLeft,
	"ARROWUP":    ebiten.KeyArrowUp,
	"ARROWDOWN":  ebiten.KeyArrowDown,
	"ARROWLEFT":  ebiten.KeyArrowLeft,
	"ARROWRIGHT": ebiten.KeyArrowRight,
}

var mouseButtonNames = map[string]ebiten.MouseButton{
	"LEFT":   ebiten.MouseButtonLeft,
	"RIGHT":  ebiten.MouseButtonRight,
	"MIDDLE": ebiten.MouseButtonMiddle,
}

// ParseKey 按名称查找键盘按键（大小写不敏感）
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// ParseMouseButton 按名称查找鼠标按键（大小写不敏感）
func ParseMouseButton(name string) (ebiten.MouseButton, error) {
	b, ok := mouseButtonNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
	return b, nil
}

// Resolve 把按键名称解析为 ebiten 按键
func (b KeyBindings) Resolve() (ControlKeys, error) {
	var out ControlKeys
	keys := []struct {
		name   string
		target *ebiten.Key
	}{
		{b.Forward, &out.Forward},
		{b.Back, &out.Back},
		{b.Left, &out.Left},
		{b.Right, &out.Right},
		{b.Up, &out.Up},
		{b.Down, &out.Down},
		{b.LockCursor, &out.LockCursor},
		{b.ReleaseCursor, &out.ReleaseCursor},
	}
	for _, k := range keys {
		key, err := ParseKey(k.name)
		if err != nil {
			return ControlKeys{}, err
		}
		*k.target = key
	}

	var err error
	if out.Spawn, err = ParseMouseButton(b.Spawn); err != nil {
		return ControlKeys{}, err
	}
	if out.Shoot, err = ParseMouseButton(b.Shoot); err != nil {
		return ControlKeys{}, err
	}
	return out, nil
}

// MustResolve 解析按键绑定，失败时 panic
// 仅用于已通过 Validate 的配置
func (b KeyBindings) MustResolve() ControlKeys {
	keys, err := b.Resolve()
	if err != nil {
		panic(err)
	}
	return keys
}
