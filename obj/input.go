package obj

import (
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls the devices once per frame and exposes the state the ships
// and the game shell read.
type Input struct {
	// TargetWorld is the point the player ship flies toward, in world
	// coordinates.
	TargetWorld mgl64.Vec2
	// Boost is true while the boost button is held.
	Boost bool

	// DebugPressed is true on the frame the debug overlay key was hit.
	DebugPressed bool
	// PausePressed is true on the frame the pause key was hit.
	PausePressed bool
	// ZoomIn/ZoomOut are true while the zoom keys are held.
	ZoomIn  bool
	ZoomOut bool

	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Update polls the keyboard, mouse, and gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	mx, my := ebiten.CursorPosition()
	wx, wy := i.camera.ScreenToWorld(float64(mx), float64(my))
	i.TargetWorld = mgl64.Vec2{wx, wy}

	i.Boost = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.ZoomIn = ebiten.IsKeyPressed(ebiten.KeyEqual)
	i.ZoomOut = ebiten.IsKeyPressed(ebiten.KeyMinus)

	// Gamepad: the left stick displaces the target from the cursor point
	// and the primary button boosts.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		sx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if sx*sx+sy*sy > 0.01 {
			i.TargetWorld = i.TargetWorld.Add(mgl64.Vec2{sx, sy}.Mul(200))
		}
		i.Boost = i.Boost || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}
}
