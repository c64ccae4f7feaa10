package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/starwreck/levels"
)

func main() {
	scenarioName := flag.String("scenario", "skirmish", "scenario name in levels/ (basename, .yaml optional) or a path to a file")
	debug := flag.Bool("debug", false, "start with the debug overlay enabled")
	watch := flag.Bool("watch", false, "watch prefabs/ for edits and reload the scenario")
	seed := flag.Int64("seed", 0, "behavior random seed (0 seeds from the clock)")
	flag.Parse()

	scenario, err := loadScenario(*scenarioName)
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	game, err := NewGame(scenario, s, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("starwreck")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadScenario resolves the -scenario flag: a path (or anything that
// exists on disk) loads from the filesystem, otherwise the name loads
// from the embedded set.
func loadScenario(name string) (*levels.Scenario, error) {
	if strings.ContainsAny(name, `/\`) {
		return levels.LoadScenarioFromFile(name)
	}
	if _, err := os.Stat(name); err == nil {
		return levels.LoadScenarioFromFile(name)
	}
	if !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	return levels.LoadScenarioFromFS(name)
}
