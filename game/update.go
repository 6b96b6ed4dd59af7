package game

import (
	"fmt"
	"math"
)

// Update runs one frame of the game. updateTime is the number of seconds since
// the run started; it must not decrease, and calling Update twice with the
// same time moves nothing.
func (s *State) Update(updateTime float64) {
	// Clamp delta time so a clock going backwards never runs the game in reverse
	delta := math.Max(0, updateTime-s.LastUpdateTime)
	s.LastUpdateTime = updateTime

	// Check if there's a new enemy spawning
	s.checkSpawn(updateTime)

	// Update the rotation of the barrel
	s.updateBarrel()

	// Move all entities
	s.updateEntities(updateTime, delta)

	// Screen boundaries, shots hitting enemies
	s.checkCollisions()

	// Status readout and modal
	s.updateUI(delta)
}

// checkSpawn spawns the next queued enemy once its delay since the previous
// spawn has passed. At most one enemy spawns per frame, and none while a
// modal is showing.
func (s *State) checkSpawn(updateTime float64) {
	if s.ModalTime > 0 || len(s.EnemySpawns) == 0 {
		return
	}

	next := s.EnemySpawns[0]
	if updateTime-s.LastSpawnTime > next.Delay {
		s.LastSpawnTime = updateTime
		s.EnemySpawns = s.EnemySpawns[1:]
		s.levelStarted = true
		s.AddEntity(NewEnemy(next, updateTime, s.cfg))
		s.logger.Debug("enemy spawned", "variant", variantOf(next.Motion), "style", next.Style, "queued", len(s.EnemySpawns))
	}
}

// updateBarrel rotates the barrel sink; its rotation is measured from vertical
func (s *State) updateBarrel() {
	if s.Sinks.Barrel != nil {
		s.Sinks.Barrel.SetRotation(s.BarrelAngle + math.Pi/2)
	}
}

// updateEntities moves each entity according to its movement rules
func (s *State) updateEntities(updateTime, delta float64) {
	_, h := s.viewport.Size()

	for _, entity := range s.Entities {
		switch e := entity.(type) {
		case *Shot:
			// Shots fly straight
			e.moveTo(e.pos.Add(e.Velocity.Scale(delta)))

		case *Enemy:
			spawn := e.Spawn
			pos := e.pos

			switch m := spawn.Motion.(type) {
			case Straight, nil:
				pos.Y += h * spawn.Speed * delta

			case Sine:
				pos.Y += h * spawn.Speed * delta
				// X is a function of absolute time, so it never drifts
				pos.X = spawn.Position.X + math.Sin(updateTime*m.Speed*h/100)*m.Radius

			case Snake:
				pos = SamplePolyline(m.Lines, updateTime-e.SpawnTime, spawn.Speed, h)
			}

			e.moveTo(pos)
		}
	}
}

// updateUI refreshes the status readout and the modal, and counts the modal down
func (s *State) updateUI(delta float64) {
	if s.Sinks.Status != nil {
		s.Sinks.Status.SetText(fmt.Sprintf("Level: %d\nLives: %d\nScore: %d", s.Level, s.Lives, s.Score))
	}

	if s.Sinks.Modal != nil {
		opacity := 0.0
		if s.ModalTime != 0 {
			opacity = 1
		}
		s.Sinks.Modal.SetOpacity(opacity)
	}

	// ModalForever stays infinite
	if s.ModalTime > 0 {
		s.ModalTime = math.Max(0, s.ModalTime-delta)
	}
}

// loseLife is called when an enemy reaches the bottom of the screen
func (s *State) loseLife() {
	s.Lives--

	if s.Lives <= 0 {
		s.EnemySpawns = nil
		s.IsGameOver = true
		s.showModal(Message{
			Title: "Game Over!",
			Lines: []string{
				fmt.Sprintf("Score: %d", s.Score),
				"Click to play again :)",
			},
		}, ModalForever)
		s.logger.Info("game over", "level", s.Level, "score", s.Score)
	} else {
		s.showModal(Message{Title: "Whoops!"}, s.cfg.WhoopsModalTime)

		// Replay the level with the enemies that are still around
		active := s.liveEnemies()
		requeued := make([]EnemySpawn, 0, len(active)+len(s.EnemySpawns))
		for _, enemy := range active {
			requeued = append(requeued, enemy.Spawn)
		}
		s.EnemySpawns = append(requeued, s.EnemySpawns...)
		s.logger.Info("life lost", "lives", s.Lives, "requeued", len(active))
	}

	s.KillAllEntities()
}

// checkEndLevel moves to the next level once no enemy is queued or alive.
// It runs right after a shot hits an enemy.
func (s *State) checkEndLevel() {
	if len(s.EnemySpawns) > 0 || len(s.liveEnemies()) > 0 {
		return
	}

	// Accuracy compares the level's enemy count to the shots fired, so it
	// can exceed 1 when one shot takes down several enemies
	accuracy := 0.0
	if s.ShotCount > 0 {
		accuracy = float64(s.EnemyCount) / float64(s.ShotCount)
	}
	bonus := int(math.Round(s.cfg.BonusScore * accuracy))
	s.showModal(Message{
		Title: fmt.Sprintf("Level %d finished!", s.Level),
		Lines: []string{
			fmt.Sprintf("Shot accuracy: %d%%", int(math.Round(accuracy*100))),
			fmt.Sprintf("Bonus points: %d", bonus),
		},
	}, s.cfg.LevelModalTime)
	s.logger.Info("level finished", "level", s.Level, "accuracy", accuracy, "bonus", bonus)

	// Clean up the previous level
	s.KillAllEntities()
	s.Score += bonus
	s.ShotCount = 0

	// Load the next level
	s.Level++
	s.EnemySpawns = s.catalog.CreateLevel(s.Level)
	s.EnemyCount = len(s.EnemySpawns)
	s.levelStarted = false
	s.paintBackdrop(s.Level)

	// Or end the game
	if len(s.EnemySpawns) == 0 {
		s.showModal(Message{
			Title: "Congratulations!",
			Lines: []string{
				"You won the game!",
				fmt.Sprintf("Total score: %d", s.Score),
				"Click to play again :)",
			},
		}, ModalForever)
		s.IsGameOver = true
		s.logger.Info("game won", "score", s.Score)
	}
}
