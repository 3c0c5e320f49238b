package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/stickfighter/arena"
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
	"github.com/milk9111/stickfighter/ecs/entity"
	"github.com/milk9111/stickfighter/ecs/render"
	"github.com/milk9111/stickfighter/ecs/system"
	"github.com/milk9111/stickfighter/pose"
	"github.com/milk9111/stickfighter/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type Options struct {
	Debug      bool
	ShowLabels bool
	CPU        bool
	Width      int
	Height     int
}

type Game struct {
	frames int
	debug  bool
	paused bool
	labels bool

	arena     *arena.World
	world     *ecs.World
	scheduler *ecs.Scheduler
	scripts   *system.ScriptSystem
	renderer  *render.RenderSystem
	input     *Input
	player    ecs.Entity

	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
	clipboard bool
}

func NewGame(opts Options) (*Game, error) {
	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:   opts.Debug,
		labels:  opts.ShowLabels,
		arena:   arena.NewWorld(arenaSpec.WorldConfig(float64(opts.Width), float64(opts.Height))),
		world:   ecs.NewWorld(),
		scripts: system.NewScriptSystem(),
		input:   NewInput(),
	}
	g.renderer = render.NewRenderSystem(g.arena, arenaSpec.GroundColor)

	g.player, err = entity.NewPlayer(g.world, g.arena, g.newFigure)
	if err != nil {
		return nil, err
	}
	if opts.CPU {
		if _, err := entity.NewCPU(g.world, g.arena, g.newFigure); err != nil {
			return nil, err
		}
	}

	g.scheduler = ecs.NewScheduler(
		g.scripts,
		system.NewIntentSystem(),
		system.NewPlayerControllerSystem(),
		system.NewPoseAnimationSystem(),
	)

	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: init: %v", err)
	} else {
		g.clipboard = true
	}

	if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) newFigure(sk prefabs.Skeleton) pose.Renderer {
	style := render.StyleFor(sk)
	style.ShowLabels = style.ShowLabels || g.labels
	return render.NewStickFigure(style)
}

func (g *Game) WindowSize() (int, int) {
	return int(g.arena.ViewWidth()), int(g.arena.ViewHeight())
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.applyReloads()

	if g.input.LabelsPressed {
		g.toggleLabels()
	}
	if g.input.ResetPressed {
		g.resetRound()
	}
	if g.input.DumpPressed {
		g.dumpPoses()
	}

	if in, ok := ecs.Get(g.world, g.player, component.InputComponent.Kind()); ok {
		in.Held = g.input.Buttons
	}

	g.scheduler.Update(g.world)
	g.drainEvents()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Whitesmoke)

	g.renderer.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Layout follows the window; the arena and skeletons are resized with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.WindowSize()
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.arena.ViewWidth() || h != g.arena.ViewHeight() {
		g.arena.UpdateViewSize(w, h)
		if err := entity.ResizeFighters(g.world, g.arena); err != nil {
			log.Printf("prefabs: resize: %v", err)
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Drain() {
		switch {
		case prefabs.IsScript(name):
			g.scripts.Invalidate()
			log.Printf("prefabs: reloaded %s", name)
		case name == prefabs.ArenaSpecFile:
			spec, err := prefabs.LoadArenaSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			if spec.GroundY != nil {
				g.arena.SetGroundY(*spec.GroundY)
			} else {
				g.arena.SetGroundRatio(spec.GroundRatio)
			}
			g.renderer.GroundColor = spec.GroundColor
			log.Printf("prefabs: reloaded %s", name)
		default:
			n, err := entity.ReloadFighters(g.world, g.arena, name)
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			if n > 0 {
				g.scripts.Invalidate()
				log.Printf("prefabs: reloaded %s (%d fighters)", name, n)
			}
		}
	}
}

func (g *Game) drainEvents() {
	for _, ev := range g.world.Events().Drain() {
		if !g.debug || ev.Type != system.EventPoseChanged {
			continue
		}
		if pc, ok := ev.Data.(system.PoseChangedEvent); ok {
			log.Printf("pose: entity=%v %s -> %s", pc.Entity, pc.From, pc.To)
		}
	}
}

func (g *Game) toggleLabels() {
	g.labels = !g.labels
	ecs.ForEach(g.world, component.PoseComponent.Kind(), func(e ecs.Entity, pc *component.Pose) {
		if fig, ok := pc.Renderer.(*render.StickFigure); ok {
			fig.SetShowLabels(g.labels)
		}
	})
}

func (g *Game) resetRound() {
	entity.ResetRound(g.world)
}

func (g *Game) dumpPoses() {
	data, err := prefabs.EncodePoses(entity.PoseDump(g.world))
	if err != nil {
		log.Printf("debug: %v", err)
		return
	}
	if !g.clipboard {
		log.Printf("debug: pose dump\n%s", data)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("debug: copied pose dump to clipboard (%d bytes)", len(data))
}
