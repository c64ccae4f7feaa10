package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/starwreck/geom"
	"github.com/milk9111/starwreck/levels"
	"github.com/milk9111/starwreck/obj"
	"github.com/milk9111/starwreck/prefabs"
	"github.com/milk9111/starwreck/world"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// dt is the fixed step fed to the world; ebiten ticks at 60 TPS.
	dt = 1.0 / 60

	zoomStep = 1.02
	minZoom  = 0.1
	maxZoom  = 8.0

	// pollFrames spaces out the modification-time fallback when the
	// fsnotify watcher is unavailable: one scan per second at 60 TPS.
	pollFrames = 60
)

type Game struct {
	frames int
	paused bool

	scenario *levels.Scenario
	seed     int64

	world  *world.World
	camera *obj.Camera
	input  *obj.Input
	debug  *obj.Debug

	player  *obj.Player
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	poll    *prefabPoll
}

func NewGame(scenario *levels.Scenario, seed int64, debugOn, watch bool) (*Game, error) {
	camera := obj.NewCamera(baseWidth, baseHeight, 1)
	camera.SetWorldBounds(scenario.World.Width, scenario.World.Height)

	g := &Game{
		scenario: scenario,
		seed:     seed,
		camera:   camera,
		input:    obj.NewInput(camera),
		debug:    &obj.Debug{Enabled: debugOn},
	}

	if err := g.buildWorld(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watch unavailable, polling instead: %v", err)
			g.poll = newPrefabPoll(scenario)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// buildWorld spawns the scenario into a fresh world. On success it swaps
// the new world in and snaps the camera to the player, so a failed prefab
// reload leaves the running world untouched.
func (g *Game) buildWorld() error {
	opts := []world.Option{
		world.WithDeepestContact(g.scenario.Resolve.Deepest),
		world.WithSymmetricResync(!g.scenario.Resolve.LegacyResync),
	}
	if g.scenario.World.CellSize > 0 {
		opts = append(opts, world.WithCellSize(g.scenario.World.CellSize))
	}
	w := world.NewWorld(g.scenario.World.Width, g.scenario.World.Height, opts...)

	var player *obj.Player
	for i, sp := range g.scenario.Spawns {
		o, err := g.makeObject(i, sp, w.Bounds())
		if err != nil {
			return fmt.Errorf("spawn %d (%s): %w", i, sp.Prefab, err)
		}
		w.Spawn(o)
		if p, ok := o.(*obj.Player); ok {
			player = p
		}
	}
	if player == nil {
		return fmt.Errorf("scenario %s has no player spawn", g.scenario.Name)
	}

	g.world = w
	g.player = player
	g.camera.SnapTo(player.Position().X(), player.Position().Y())
	return nil
}

// makeObject builds one spawn: load the prefab, fold in the spawn's
// behavior override, then pick the object type from the behavior kind.
func (g *Game) makeObject(i int, sp levels.Spawn, bounds geom.Rect) (obj.Object, error) {
	spec, err := prefabs.LoadShip(sp.Prefab)
	if err != nil {
		return nil, err
	}
	spec.Behavior, err = prefabs.ApplyBehaviorOverride(spec.Behavior, sp.Behavior)
	if err != nil {
		return nil, err
	}

	pos := mgl64.Vec2{sp.X, sp.Y}
	seed := g.seed + int64(i)

	switch {
	case sp.Player:
		return obj.NewPlayer(spec, pos, sp.Rotation, g.input), nil
	case spec.Behavior.Kind == "script":
		return obj.NewScout(spec, pos, sp.Rotation, seed)
	case spec.Behavior.Kind == "wander":
		return obj.NewDreadnought(spec, pos, sp.Rotation, bounds, seed), nil
	default:
		return obj.NewAsteroid(spec, pos, sp.Rotation), nil
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.input.Update()

	if g.input.DebugPressed {
		g.debug.Enabled = !g.debug.Enabled
	}
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.input.ZoomIn {
		g.camera.SetZoom(mgl64.Clamp(g.camera.Zoom()*zoomStep, minZoom, maxZoom))
	}
	if g.input.ZoomOut {
		g.camera.SetZoom(mgl64.Clamp(g.camera.Zoom()/zoomStep, minZoom, maxZoom))
	}

	if g.paused {
		g.pauseUI.Update()
	} else {
		g.world.Update(dt)
	}

	p := g.player.Position()
	g.camera.Update(p.X(), p.Y())
	return nil
}

// pollWatcher drains pending prefab-edit events and rebuilds the scenario
// once per batch.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		g.pollDisk()
		return
	}
	reload := false
	for {
		select {
		case path := <-g.watcher.Events:
			log.Printf("prefab changed: %s", path)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("prefab watch: %v", err)
		default:
			if reload {
				if err := g.buildWorld(); err != nil {
					log.Printf("reload failed: %v", err)
				}
			}
			return
		}
	}
}

// pollDisk is the watch fallback: compare the scenario's prefab
// modification times once a second and rebuild on the first edit seen.
func (g *Game) pollDisk() {
	if g.poll == nil || g.frames%pollFrames != 0 {
		return
	}
	if !g.poll.changed() {
		return
	}
	log.Printf("prefab changed on disk")
	if err := g.buildWorld(); err != nil {
		log.Printf("reload failed: %v", err)
	}
}

// prefabPoll tracks the on-disk modification times of a scenario's
// prefabs. Scripts are outside its reach; only the fsnotify watcher
// sees those.
type prefabPoll struct {
	seen map[string]time.Time
}

func newPrefabPoll(sc *levels.Scenario) *prefabPoll {
	p := &prefabPoll{seen: make(map[string]time.Time)}
	for _, sp := range sc.Spawns {
		t, _ := prefabs.ModTime(sp.Prefab)
		p.seen[sp.Prefab] = t
	}
	return p
}

// changed reports whether any tracked prefab gained a newer disk
// override since the last call. A prefab with no override yet counts as
// edited the moment one appears.
func (p *prefabPoll) changed() bool {
	dirty := false
	for name, last := range p.seen {
		t, ok := prefabs.ModTime(name)
		if !ok {
			continue
		}
		if t.After(last) {
			p.seen[name] = t
			dirty = true
		}
	}
	return dirty
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Render(screen, func(view *ebiten.Image) {
		g.world.Each(func(id int, b world.Body) {
			if !b.Alive() {
				return
			}
			if o, ok := b.(obj.Object); ok {
				obj.DrawObject(view, g.camera, o)
			}
		})
		g.debug.Draw(view, g.world, g.camera)
	})

	status := fmt.Sprintf("FPS: %.0f  bodies: %d  contacts: %d  zoom: %.2f",
		ebiten.ActualFPS(), g.world.Len(), len(g.world.Contacts()), g.camera.Zoom())
	ebitenutil.DebugPrint(screen, status)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Close releases the prefab watcher, if one is running.
func (g *Game) Close() {
	if g.watcher != nil {
		g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
