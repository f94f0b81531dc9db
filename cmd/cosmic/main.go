package main

import (
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/cosmic-explorer/cosmic_explorer/internal/audio"
	"github.com/cosmic-explorer/cosmic_explorer/internal/audio/speaker"
	"github.com/cosmic-explorer/cosmic_explorer/internal/config"
	"github.com/cosmic-explorer/cosmic_explorer/internal/game"
	"github.com/cosmic-explorer/cosmic_explorer/internal/logging"
	"github.com/cosmic-explorer/cosmic_explorer/internal/render"
	"github.com/cosmic-explorer/cosmic_explorer/internal/world"
)

const (
	tps      = 60
	tickSecs = 1.0 / tps
	tickDur  = time.Second / tps
)

// Game is the Ebitengine game struct. It owns the preroll, the mounted
// flight scene and the audio engine; all flight state lives in the scene's sim.
type Game struct {
	cfg      *config.Config
	cat      *world.Catalog
	log      zerolog.Logger
	labels   *render.Text
	renderer *render.Renderer
	audio    *audio.Engine
	preroll  *game.Preroll
	ready    bool
	scene    *scene
	closed   bool
	w, h     int
}

// scene is one mount of the flight scene.
type scene struct {
	sim     *game.Sim
	joy     *game.Joystick
	ctrl    *game.Controller
	frames  *game.Frames
	input   *pollInput
	regions []game.Region
}

func NewGame(cfg *config.Config, cat *world.Catalog, labels *render.Text, log zerolog.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		cat:    cat,
		log:    log,
		labels: labels,
		w:      cfg.Window.Width,
		h:      cfg.Window.Height,
	}
	g.audio = audio.NewEngine(audio.Config{
		SampleRate:  cfg.Audio.SampleRate,
		Muted:       cfg.Audio.Muted,
		MusicPath:   cfg.Audio.MusicPath,
		MusicVolume: cfg.Audio.MusicVolume,
	}, speaker.Open, logging.Component(log, "audio"))

	g.preroll = game.NewPreroll(func() { g.ready = true })
	if cfg.Intro.Skip {
		g.preroll.Skip()
	}
	return g
}

// mount builds the flight scene for the current surface size.
func (g *Game) mount() {
	var rng *rand.Rand
	if seed := g.cfg.World.Seed; seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	field := world.NewField(float64(g.w), float64(g.h), world.StarCount, world.NebulaCount, rng)
	sim := game.NewSim(g.cat, field, g.audio, logging.Component(g.log, "sim"))
	sim.SetMuted(g.cfg.Audio.Muted)

	joy := game.NewJoystick(sim)
	ctrl := game.NewController(sim, joy)
	ctrl.OnGesture(func() {
		if err := g.audio.Wake(); err != nil {
			g.log.Debug().Err(err).Msg("audio wake")
		}
	})

	frames := game.NewFrames()
	if _, err := frames.Schedule("sim", func() { sim.Tick(tickSecs) }); err != nil {
		g.log.Error().Err(err).Msg("schedule sim")
	}
	if _, err := frames.Schedule("joystick", joy.Pump); err != nil {
		g.log.Error().Err(err).Msg("schedule joystick")
	}
	// Input must stop before the audio it wakes is closed.
	frames.OnTeardown(ctrl.Detach)
	frames.OnTeardown(g.audio.Close)

	g.scene = &scene{
		sim:    sim,
		joy:    joy,
		ctrl:   ctrl,
		frames: frames,
		input:  newPollInput(g.cfg.Controls.Touch),
	}
	g.log.Info().
		Int("stars", field.Stars()).
		Int("nebulas", field.Nebulas()).
		Int("crew", g.cat.Len()).
		Msg("flight scene mounted")
}

// teardown stops the scene. It is safe to call more than once.
func (g *Game) teardown() {
	if g.closed {
		return
	}
	g.closed = true
	if g.scene != nil {
		g.scene.frames.Teardown()
	} else {
		g.audio.Close()
	}
	g.log.Info().Msg("flight scene torn down")
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.teardown()
		return ebiten.Termination
	}

	if g.scene == nil {
		if !g.ready {
			if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
				inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
				g.preroll.Skip()
			} else {
				g.preroll.Advance(tickDur)
			}
		}
		if g.ready {
			g.mount()
		}
		return nil
	}

	sc := g.scene
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		sc.sim.ToggleMute()
	}
	sc.regions = game.LayoutControls(float64(g.w), float64(g.h), sc.sim.Snapshot(), sc.input.touchUI())
	sc.ctrl.SetRegions(sc.regions)
	sc.input.poll(sc.ctrl, g.w, g.h)
	sc.frames.Run()

	ebiten.SetCursorShape(cursorShape(sc.sim.Cursor()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		g.renderer = render.NewRenderer(g.labels)
	}
	if g.scene == nil {
		g.renderer.Preroll(screen, g.preroll)
		return
	}
	g.renderer.Scene(screen, g.scene.sim)
	g.renderer.HUD(screen, g.scene.sim, g.scene.regions, g.scene.joy)
}

// Layout tracks the window size; the surface always matches it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	if g.scene != nil {
		g.scene.sim.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func cursorShape(c game.Cursor) ebiten.CursorShapeType {
	switch c {
	case game.CursorPointer:
		return ebiten.CursorShapePointer
	case game.CursorGrab:
		return ebiten.CursorShapeMove
	case game.CursorGrabbing:
		return ebiten.CursorShapeCrosshair
	default:
		return ebiten.CursorShapeDefault
	}
}

// configDir is the directory holding the executable, or the working
// directory when that cannot be resolved.
func configDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// setupLogging builds the root logger. A log file that cannot be opened
// is reported on the console and skipped.
func setupLogging(cfg *config.Config, console io.Writer) (zerolog.Logger, func()) {
	if cfg.LogFile == "" {
		return logging.New(cfg.LogLevel, console, nil), func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log := logging.New(cfg.LogLevel, console, nil)
		log.Warn().Err(err).Str("path", cfg.LogFile).Msg("log file unavailable, logging to console only")
		return log, func() {}
	}
	return logging.New(cfg.LogLevel, console, f), func() { f.Close() }
}

func main() {
	cfg, err := config.Load(configDir())
	if err != nil {
		boot := logging.New("info", os.Stderr, nil)
		boot.Fatal().Err(err).Msg("load config")
	}

	log, closeLog := setupLogging(cfg, os.Stderr)
	defer closeLog()

	catalog, err := world.LoadEmbeddedCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("load crew catalog")
	}
	labels, err := render.NewText()
	if err != nil {
		log.Fatal().Err(err).Msg("load label font")
	}
	for _, e := range append(slices.Clone(catalog.Crew), catalog.Secret) {
		if r, missing := render.MissingGlyph(e.Name + e.Role); missing {
			log.Warn().Str("id", e.ID).Str("rune", string(r)).Msg("label face has no glyph")
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(tps)

	g := NewGame(cfg, catalog, labels, log)
	err = ebiten.RunGame(g)
	g.teardown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("run game")
	}
}
