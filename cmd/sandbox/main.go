// Command sandbox runs a physics scene, either headless or in the terminal.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	physics "github.com/Emilinya/physics-engine"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
)

var (
	configPath = flag.String("config", "", "TOML config file, defaults are used if empty")
	sceneName  = flag.String("scene", "spring-pendulum", "built-in scene name or path to a YAML scene")
	steps      = flag.Int("steps", 600, "number of steps of a headless run")
	view       = flag.Bool("view", false, "show the scene in the terminal")
	plot       = flag.Bool("plot", false, "plot the smoothed energy after a headless run")
	energyLog  = flag.String("energy-log", "", "write \"time energy\" lines to this file")
	dump       = flag.String("dump", "", "write the final state as JSON to this file, - for stdout")
)

func loadScene(name string) (*physics.Scene, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return physics.LoadScene(name)
	}
	return physics.BuiltinScene(name)
}

func setup() (*physics.Space, *physics.Scene, error) {
	conf := physics.DefaultConfig()
	if *configPath != "" {
		var err error
		if conf, err = physics.ParseConfig(*configPath); err != nil {
			return nil, nil, err
		}
	}

	scene, err := loadScene(*sceneName)
	if err != nil {
		return nil, nil, err
	}

	space := physics.NewSpace(conf)
	if _, err := scene.Build(space); err != nil {
		return nil, nil, errors.Wrapf(err, "building scene %s", scene.Name)
	}
	return space, scene, nil
}

//energyWriter logs the raw energy of every step, one "time energy" pair per line.
type energyWriter struct {
	file *os.File
	w    *bufio.Writer
}

func newEnergyWriter(path string) (*energyWriter, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating energy log")
	}
	return &energyWriter{file: file, w: bufio.NewWriter(file)}, nil
}

func (ew *energyWriter) write(space *physics.Space) {
	if ew == nil {
		return
	}
	fmt.Fprintf(ew.w, "%.15f %.15f\n", space.Time(), space.Energy().Raw)
}

func (ew *energyWriter) Close() error {
	if ew == nil {
		return nil
	}
	if err := ew.w.Flush(); err != nil {
		ew.file.Close()
		return err
	}
	return ew.file.Close()
}

func writeDump(path string, space *physics.Space) error {
	data, err := json.MarshalIndent(space.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func runHeadless(space *physics.Space, ew *energyWriter) {
	dt := space.Config.Timestep

	history := make([]float64, 0, *steps)
	skipped := 0
	for i := 0; i < *steps; i++ {
		if !space.Step(dt) {
			skipped++
		}
		ew.write(space)
		history = append(history, space.Energy().Current)
	}

	energy := space.Energy()
	fmt.Printf("time %.3fs, energy %.6f (initial %.6f, drift %.3g%%)\n",
		space.Time(), energy.Current, energy.Initial, 100*energy.Drift())
	if skipped > 0 {
		fmt.Printf("%d steps skipped\n", skipped)
	}

	if *plot && len(history) > 1 {
		fmt.Println(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("Energy"),
		))
	}
}

func main() {
	flag.Parse()

	space, scene, err := setup()
	if err != nil {
		log.Fatal(err)
	}

	ew, err := newEnergyWriter(*energyLog)
	if err != nil {
		log.Fatal(err)
	}

	if *view {
		err = runViewer(space, scene, ew)
	} else {
		runHeadless(space, ew)
	}
	if closeErr := ew.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Fatal(err)
	}

	if *dump != "" {
		if err := writeDump(*dump, space); err != nil {
			log.Fatal(err)
		}
	}
}
