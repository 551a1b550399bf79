package main

import (
	"fmt"
	"time"

	physics "github.com/Emilinya/physics-engine"
	"github.com/Emilinya/physics-engine/vect"
	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"
)

const (
	// World units visible across the screen.
	viewWidth = 8.0
	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 2.0
)

var (
	styleBody     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTangible = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatic   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleSpring   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAnchor   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

//viewer draws a space into a terminal and lets the mouse drag bodies
//around on a stiff spring.
type viewer struct {
	screen tcell.Screen
	space  *physics.Space
	scene  *physics.Scene
	ew     *energyWriter

	width, height int
	paused        bool

	// anchor of the mouse spring while dragging
	mouse    ecs.Entity
	dragging bool
}

func runViewer(space *physics.Space, scene *physics.Scene, ew *energyWriter) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &viewer{screen: screen, space: space, scene: scene, ew: ew}
	v.width, v.height = screen.Size()
	v.run()
	return nil
}

func (v *viewer) scale() float64 {
	return float64(v.width) / viewWidth
}

//world point at the center of a cell.
func (v *viewer) toWorld(x, y int) vect.Vect {
	scale := v.scale()
	return vect.Vect{
		X: (float64(x) - 0.5*float64(v.width) + 0.5) / scale,
		Y: -(float64(y) - 0.5*float64(v.height) + 0.5) * cellAspect / scale,
	}
}

func styleOf(state physics.ShapeState) (rune, tcell.Style) {
	switch {
	case state.Spring:
		return '~', styleSpring
	case state.Mass == 0 && !state.Tangible:
		return 'o', styleAnchor
	case state.Mass == 0:
		return '#', styleStatic
	case state.Tangible:
		return '@', styleTangible
	}
	return '█', styleBody
}

func (v *viewer) draw() {
	v.screen.Clear()

	states := v.space.Snapshot()
	for y := 0; y < v.height-1; y++ {
		for x := 0; x < v.width; x++ {
			p := v.toWorld(x, y)
			// later entities are drawn on top
			for i := len(states) - 1; i >= 0; i-- {
				if states[i].Shape.CollidesWithPoint(states[i].Data, p) {
					r, style := styleOf(states[i])
					v.screen.SetContent(x, y, r, nil, style)
					break
				}
			}
		}
	}

	energy := v.space.Energy()
	status := fmt.Sprintf(" %s  t=%.2fs  E=%.4f  drift=%.3g%%  step=%v ",
		v.scene.Name, v.space.Time(), energy.Current, 100*energy.Drift(), v.space.StepTime)
	if v.paused {
		status += " PAUSED "
	}
	for i, r := range []rune(status) {
		if i >= v.width {
			break
		}
		v.screen.SetContent(i, v.height-1, r, nil, styleStatus)
	}

	v.screen.Show()
}

func (v *viewer) startDrag(p vect.Vect) {
	e, ok := v.space.BodyAt(p)
	if !ok || v.space.PhysicsObject(e) == nil {
		return
	}

	conf := v.space.Config.Spring
	v.mouse = v.space.AddAnchor(p)
	_, err := v.space.AddSpring(v.mouse, e, physics.SpringForce{
		SpringConstant: 10 * conf.SpringConstant,
		Damping:        1,
	}, conf.Height)
	if err != nil {
		v.space.RemoveEntity(v.mouse)
		return
	}
	v.dragging = true
}

func (v *viewer) stopDrag() {
	if !v.dragging {
		return
	}
	// the spring goes with its anchor on the next step
	v.space.RemoveEntity(v.mouse)
	v.dragging = false
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			}
		}
	case *tcell.EventMouse:
		p := v.toWorld(ev.Position())
		switch {
		case ev.Buttons()&tcell.Button1 != 0 && !v.dragging:
			v.startDrag(p)
		case ev.Buttons()&tcell.Button1 != 0:
			v.space.MoveAnchor(v.mouse, p)
		default:
			v.stopDrag()
		}
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

func (v *viewer) run() {
	dt := v.space.Config.Timestep
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !v.paused {
				v.space.Step(dt)
				v.ew.write(v.space)
			}
			v.draw()
		}
	}
}
