package systems

import (
	"math"

	"github.com/automoto/tilerunner/archetypes"
	"github.com/automoto/tilerunner/components"
	cfg "github.com/automoto/tilerunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Screen shake on player death
const (
	deathShakeIntensity = 8.0
	deathShakeFrames    = 20
)

func UpdateCamera(e *ecs.ECS) {
	game, ok := getGame(e)
	if !ok {
		return
	}
	cameraEntry := getOrCreateCamera(e.World)
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	m := game.Engine.Map()
	player := m.Player()
	if player == nil {
		return
	}
	camera.Offset = cameraOffset(player.X, m.PixelWidth(), m.PixelHeight(), m.TileSize(), cfg.C.Width, cfg.C.Height)
}

// cameraOffset follows the player horizontally, never showing past either
// map edge, and pins the bottom of the map to the bottom of the screen.
func cameraOffset(playerX float64, mapW, mapH, tileSize, screenW, screenH int) dmath.Vec2 {
	x := screenW/2 - int(math.Floor(playerX+0.5)) - tileSize
	x = min(x, 0)
	x = max(x, screenW-mapW)
	y := screenH - mapH
	return dmath.NewVec2(float64(x), float64(y))
}

// updateScreenShake sets the shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		camera.Shake = dmath.Vec2{}
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Shake = dmath.NewVec2(
		math.Sin(float64(shake.Elapsed)*1.1)*currentIntensity,
		math.Cos(float64(shake.Elapsed)*1.3)*currentIntensity,
	)

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry := getOrCreateCamera(w)

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// OnPlayerDied shakes the camera.
func OnPlayerDied(w donburi.World, ev components.PlayerDied) {
	logger.Debug("player died", "lives", ev.LivesLeft)
	TriggerScreenShake(w, deathShakeIntensity, deathShakeFrames)
}

// CameraOffset returns the draw offset including any active shake.
func CameraOffset(w donburi.World) dmath.Vec2 {
	entry, ok := components.Camera.First(w)
	if !ok {
		return dmath.Vec2{}
	}
	camera := components.Camera.Get(entry)
	return camera.Offset.Add(camera.Shake)
}

func getOrCreateCamera(w donburi.World) *donburi.Entry {
	entry, ok := components.Camera.First(w)
	if !ok {
		entry = archetypes.Camera.SpawnInWorld(w)
	}
	return entry
}
