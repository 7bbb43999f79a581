package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one fixed simulation step.
	// dt is the frame delta shared by every system in this step.
	Update(dt time.Duration)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
