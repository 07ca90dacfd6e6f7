package sim

import (
	"github.com/automoto/tilerunner/entity"
)

// checkPlayerCollision resolves the player touching another entity. kill is
// true only after a vertical pass in which the player moved down; landing on
// a creature then kills it, any other contact kills the player. It reports
// whether the active map was replaced.
func (g *Engine) checkPlayerCollision(player *entity.Entity, kill bool) bool {
	if !player.IsAlive() {
		return false
	}

	other := FindCollision(g.m, player)
	if other == nil {
		return false
	}

	switch other.Kind {
	case entity.KindPowerUp:
		return g.acquirePowerUp(other)
	case entity.KindCreature:
		if kill {
			other.SetState(entity.StateDying)
			player.SetY(other.Y - float64(player.Height))
			player.Jump(true)
			g.logger.Debug("creature killed", "creature", other.Creature.Type, "id", other.ID)
			return false
		}
		g.killPlayer(player, other.Creature.Type)
	}
	return false
}

// killPlayer starts the player's death and takes a life. Losing the last life
// ends the session.
func (g *Engine) killPlayer(player *entity.Entity, cause string) {
	player.SetState(entity.StateDying)
	remaining := g.session.LoseLife()
	g.logger.Info("player died", "cause", cause, "lives", remaining)
	if remaining <= 0 {
		g.logger.Info("out of lives")
		g.Stop()
	}
}

// acquirePowerUp removes p from the map and applies it. It reports whether
// the active map was replaced.
func (g *Engine) acquirePowerUp(p *entity.Entity) bool {
	g.m.Remove(p)

	switch p.PowerUp.Type {
	case entity.PowerUpStar:
		if g.session.AddStar() {
			g.logger.Info("extra life", "lives", g.session.Lives())
		}
	case entity.PowerUpMusic:
		if g.music != nil {
			g.music.ChangeMusic()
		}
	case entity.PowerUpGoal:
		next, err := g.loader.NextMap()
		if err != nil {
			g.logger.Warn("could not load next map, staying on current", "map", g.m.Name(), "error", err)
			return false
		}
		g.setMap(next)
		return true
	}
	return false
}
