package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/tower-siege/parameter"
)

// Tick advances the simulation by one host frame
func (e *Engine) Tick() int {
	return e.Advance(1)
}

// Advance advances the simulation by a number of host frames and returns logic steps executed
// Visual timers decay once per call; whole accumulated steps run up to the per-call cap, the rest is dropped
func (e *Engine) Advance(frames float64) int {
	if e.paused || frames <= 0 {
		return 0
	}

	if e.hitFlash > 0 {
		e.hitFlash--
	}
	if e.notification.Ticks > 0 {
		e.notification.Ticks--
	}

	e.accumulator += e.speed * frames
	steps := int(e.accumulator)
	e.accumulator -= float64(steps)
	if steps > e.cfg.MaxStepsPerCall {
		steps = e.cfg.MaxStepsPerCall
	}

	executed := 0
	for range steps {
		if e.paused {
			break
		}
		if e.step() {
			executed++
		}
	}
	e.publish(executed)
	return executed
}

// step runs one fixed logic update, false when gated by a pending action
func (e *Engine) step() bool {
	if e.pending != nil {
		return false
	}
	e.tick++

	e.updateWave()
	e.updateEnemies()
	if e.gameOver {
		return true
	}
	e.updateTowers()
	e.updateProjectiles()
	e.updateParticles()
	return true
}

// updateWave drives the idle countdown and the spawn schedule
func (e *Engine) updateWave() {
	if !e.waveInProgress {
		if e.countdown > 0 {
			e.countdown--
		}
		if e.countdown > 0 {
			return
		}
		e.startWave()
	}

	if e.remainingToSpawn > 0 {
		if e.spawnCooldown > 0 {
			e.spawnCooldown--
		}
		if e.spawnCooldown <= 0 {
			e.spawnEnemy()
			e.remainingToSpawn--
			e.spawnCooldown = SpawnInterval(e.wave)
		}
		return
	}

	if len(e.enemies) == 0 {
		e.completeWave()
	}
}

func (e *Engine) startWave() {
	e.waveInProgress = true
	e.remainingToSpawn = SpawnCount(e.wave)
	e.spawnCooldown = 0
	e.emit(CueWaveStart)
	e.notify(fmt.Sprintf("Wave %d", e.wave))
	e.log.Info().Int("wave", e.wave).Int("spawns", e.remainingToSpawn).Msg("wave started")
}

func (e *Engine) completeWave() {
	completed := e.wave
	e.waveInProgress = false
	e.wave++
	e.countdown = parameter.WaveCountdownTicks

	for _, d := range e.buffs.AdvanceWave() {
		e.log.Debug().Str("buff", d.ID).Msg("buff expired")
	}
	e.runMods = e.buffs.Modifiers()

	e.emit(CueWaveComplete)
	e.notify(fmt.Sprintf("Wave %d complete", completed))
	e.log.Info().Int("wave", completed).Int("money", e.money).Int("lives", e.lives).Msg("wave complete")

	if completed%parameter.MapRegenerationInterval == 0 {
		e.regenerateMap()
	}
	e.theme = e.catalog.ThemeForWave(e.wave)
}

// regenerateMap refunds every tower, clears the board and draws a new map
func (e *Engine) regenerateMap() {
	refund := 0
	for _, t := range e.towers {
		if stats, ok := e.catalog.Tower(t.Kind); ok {
			refund += stats.Refund(t.Level)
		}
	}
	e.money += refund
	e.towers = nil
	e.projectiles = nil
	e.buildMap(e.wave)

	next := e.catalog.ThemeForWave(e.wave)
	e.emit(CueMapRegenerated)
	e.notify(fmt.Sprintf("New sector: %s (+%d refund)", next.Name, refund))
	e.log.Info().Int("wave", e.wave).Int("refund", refund).Str("theme", next.Key).Msg("map regenerated")
}

// SpawnCount is the number of enemies in wave
func SpawnCount(wave int) int {
	return parameter.WaveSpawnBase + int(math.Floor(float64(wave)*parameter.WaveSpawnPerWave))
}

// SpawnInterval is the tick gap between spawns in wave
func SpawnInterval(wave int) int {
	return max(parameter.SpawnIntervalMin, parameter.SpawnIntervalBase-parameter.SpawnIntervalPerWave*wave)
}

// WaveGrowth is the HP and reward scale of wave
func WaveGrowth(wave int) float64 {
	return math.Pow(parameter.WaveDifficultyGrowth, float64(wave))
}

func (e *Engine) updateParticles() {
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	clear(e.particles[len(kept):])
	e.particles = kept
}
