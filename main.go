// tilerunner is a tile-based side-scrolling platformer.
//
// Usage:
//
//	tilerunner               - Play the built-in levels
//	tilerunner levels        - List the levels in play order
//	tilerunner version       - Print the version
//
// Global flags:
//
//	--config <path>   - YAML config overriding the defaults
//	--levels <dir>    - Directory of .tmx levels (default: built-in)
//	--debug           - Debug logging and collision overlay
package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/automoto/tilerunner/assets"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/automoto/tilerunner/display"
	"github.com/automoto/tilerunner/fonts"
	"github.com/automoto/tilerunner/scenes"
	"github.com/automoto/tilerunner/sim"
	"github.com/automoto/tilerunner/systems"
	"github.com/automoto/tilerunner/tilemap"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagLevels     string
	flagFullscreen bool
	flagDebug      bool
	flagLogScreen  bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	screen display.Screen
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(screen display.Screen, loader sim.MapLoader, logger *log.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		screen: screen,
	}
	g.scene = scenes.NewPlatformerScene(g, loader, logger)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	w, h := g.screen.Size()
	g.bounds = image.Rect(0, 0, w, h)
	return w, h
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tilerunner",
	Short:         "A tile-based side-scrolling platformer",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (default: ~/.tilerunner/config.yaml or ./configs/tilerunner.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of .tmx levels (default: built-in levels)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision overlay")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().BoolVar(&flagLogScreen, "log-screen", false, "Log every display mode change")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := setup()
	if err != nil {
		return err
	}

	loader, err := newLevelLoader(logger)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(cfg.HUD.FontSize); err != nil {
		return err
	}

	var screen display.Screen = display.NewEbiten(cfg.C.Width, cfg.C.Height)
	if flagLogScreen || cfg.Debug.LogScreen {
		screen = display.WithLogging(screen, logger)
	}
	screen.SetTitle("tilerunner")
	screen.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(cfg.C.TPS)
	systems.UseScreen(screen)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved, screen)
		}
	}
	if flagFullscreen {
		screen.SetFullscreen(true)
	}

	err = ebiten.RunGame(NewGame(screen, loader, logger))
	screen.Restore()
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye")
	return nil
}

// setup loads the config, applies the flags and builds the logger.
func setup() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilerunner",
	})

	path, err := cfg.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLevels != "" {
		cfg.Level.Dir = flagLevels
	}
	if flagDebug {
		cfg.Debug.Enabled = true
	}
	if cfg.Debug.Enabled {
		logger.SetLevel(log.DebugLevel)
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}

	systems.SetLogger(logger)
	systems.LoadAudioDefaults()
	return logger, nil
}

// newLevelLoader reads levels from the configured directory, or the built-in
// levels when none is set.
func newLevelLoader(logger *log.Logger) (*tilemap.Loader, error) {
	if dir := cfg.Level.Dir; dir != "" {
		return tilemap.NewLoader(os.DirFS(dir), ".", logger)
	}

	loader, err := tilemap.NewLoader(assets.Levels(), assets.LevelDir, logger)
	if errors.Is(err, tilemap.ErrNoLevels) {
		logger.Warn("no built-in levels, using the fallback layout")
		return tilemap.NewLayoutLoader(cfg.Level.TileSize, assets.FallbackLayouts, logger)
	}
	return loader, err
}
