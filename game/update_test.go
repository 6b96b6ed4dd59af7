package game

import (
	"math"
	"testing"
)

func TestUpdateSpawnsFirstEnemy(t *testing.T) {
	state, rec := newTestState(t)

	state.Update(0)
	if len(state.Entities) != 0 {
		t.Fatalf("Expected no enemy at t=0, got %d entities", len(state.Entities))
	}

	state.Update(3)

	if len(state.Entities) != 1 {
		t.Fatalf("Expected exactly one enemy at t=3, got %d", len(state.Entities))
	}
	if _, ok := state.Entities[0].(*Enemy); !ok {
		t.Errorf("Expected *Enemy, got %T", state.Entities[0])
	}
	if len(state.EnemySpawns) != 9 {
		t.Errorf("Expected 9 enemies left in queue, got %d", len(state.EnemySpawns))
	}
	if state.LastSpawnTime != 3 {
		t.Errorf("Expected last spawn time 3, got %v", state.LastSpawnTime)
	}
	if rec.attached != 1 {
		t.Errorf("Expected one sprite attached, got %d", rec.attached)
	}
}

func TestSpawnDelayIsStrict(t *testing.T) {
	state, _ := newTestState(t)

	// First delay is 2s; exactly 2s is not enough
	state.Update(2)
	if len(state.Entities) != 0 {
		t.Errorf("Expected no spawn at exactly the delay, got %d entities", len(state.Entities))
	}
	state.Update(2.01)
	if len(state.Entities) != 1 {
		t.Errorf("Expected spawn after the delay, got %d entities", len(state.Entities))
	}
}

func TestAtMostOneSpawnPerFrame(t *testing.T) {
	state, _ := newTestState(t)
	state.EnemySpawns = []EnemySpawn{straightSpawn(100, -50), straightSpawn(200, -50), straightSpawn(300, -50)}
	for i := range state.EnemySpawns {
		state.EnemySpawns[i].Delay = 0
	}

	state.Update(1)
	if len(state.Entities) != 1 {
		t.Fatalf("Expected one spawn in the first frame, got %d", len(state.Entities))
	}

	// Same timestamp: zero delay is not strictly exceeded
	state.Update(1)
	if len(state.Entities) != 1 {
		t.Errorf("Expected no spawn on a repeated timestamp, got %d", len(state.Entities))
	}

	state.Update(1.1)
	state.Update(1.2)
	if len(state.Entities) != 3 || len(state.EnemySpawns) != 0 {
		t.Errorf("Expected all 3 spawned over 3 frames, got %d entities, %d queued", len(state.Entities), len(state.EnemySpawns))
	}
}

func TestNoSpawnDuringModal(t *testing.T) {
	state, _ := newTestState(t)
	state.ModalTime = 2

	state.Update(10)
	if len(state.Entities) != 0 {
		t.Errorf("Expected no spawn while modal shows, got %d entities", len(state.Entities))
	}
	if state.ModalTime != 0 {
		t.Errorf("Expected modal expired, got %v", state.ModalTime)
	}

	state.Update(10.1)
	if len(state.Entities) != 1 {
		t.Errorf("Expected spawn once modal is gone, got %d entities", len(state.Entities))
	}
}

func TestUpdateSameTimestampMovesNothing(t *testing.T) {
	state, _ := newTestState(t)
	state.EnemySpawns = nil
	state.AddEntity(NewEnemy(straightSpawn(100, 100), 0, state.cfg))
	state.AddEntity(NewEnemy(EnemySpawn{
		Position: Vector{X: 500, Y: 100},
		Speed:    0.1,
		Motion:   Sine{Radius: 100, Speed: 0.1},
	}, 0, state.cfg))

	state.Update(1)
	before := []Vector{state.Entities[0].Position(), state.Entities[1].Position()}

	state.Update(1)
	for i, want := range before {
		if got := state.Entities[i].Position(); got != want {
			t.Errorf("Entity %d moved on repeated timestamp: %v -> %v", i, want, got)
		}
	}
}

func TestUpdateNegativeDelta(t *testing.T) {
	state, _ := newTestState(t)
	state.EnemySpawns = nil
	state.AddEntity(NewEnemy(straightSpawn(100, 100), 0, state.cfg))

	state.Update(5)
	before := state.Entities[0].Position()

	state.Update(4)
	if got := state.Entities[0].Position(); got != before {
		t.Errorf("Expected no movement when time goes backwards, got %v -> %v", before, got)
	}
	if state.LastUpdateTime != 4 {
		t.Errorf("Expected last update time 4, got %v", state.LastUpdateTime)
	}
}

func TestStraightMotion(t *testing.T) {
	state, _ := newTestState(t)
	state.EnemySpawns = nil
	state.AddEntity(NewEnemy(straightSpawn(100, -50), 0, state.cfg))

	state.Update(2)

	want := Vector{X: 100, Y: -50 + 768*0.1*2}
	if got := state.Entities[0].Position(); !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSineMotion(t *testing.T) {
	state, _ := newTestState(t)
	state.EnemySpawns = nil
	state.AddEntity(NewEnemy(EnemySpawn{
		Position: Vector{X: 500, Y: -50},
		Speed:    0.06,
		Motion:   Sine{Radius: 100, Speed: 0.1},
	}, 0, state.cfg))

	state.Update(2)

	got := state.Entities[0].Position()
	wantX := 500 + math.Sin(2*0.1*768/100)*100
	wantY := -50 + 768*0.06*2
	if !almostEqual(got.X, wantX) || !almostEqual(got.Y, wantY) {
		t.Errorf("Expected (%v, %v), got %v", wantX, wantY, got)
	}
}

func TestSnakeMotion(t *testing.T) {
	state, _ := newTestState(t)
	state.EnemySpawns = nil
	state.AddEntity(NewEnemy(EnemySpawn{
		Position: Vector{X: 0, Y: 0},
		Speed:    0.1,
		Motion:   Snake{Lines: []Vector{{X: 0, Y: 0}, {X: 1000, Y: 0}}},
	}, 1, state.cfg))

	// Age 1s at 0.1 screen heights per second
	state.Update(2)

	got := state.Entities[0].Position()
	if !almostEqual(got.X, 76.8) || !almostEqual(got.Y, 0) {
		t.Errorf("Expected (76.8, 0), got %v", got)
	}
}

func TestShotLeavesScreen(t *testing.T) {
	state, rec := newTestState(t)
	state.EnemySpawns = nil

	state.OnPointerClick()
	state.Update(0.5)
	if len(state.Entities) != 1 {
		t.Fatalf("Expected shot still on screen after 0.5s, got %d entities", len(state.Entities))
	}

	state.Update(2)
	if len(state.Entities) != 0 {
		t.Errorf("Expected shot removed off screen, got %d entities", len(state.Entities))
	}
	if rec.detached != 1 {
		t.Errorf("Expected shot sprite detached, got %d", rec.detached)
	}
	if state.Lives != 3 {
		t.Errorf("Expected missed shot to cost nothing, got %d lives", state.Lives)
	}
}

func TestShotHitsEnemy(t *testing.T) {
	state, rec := newTestState(t)

	// Enemy right at the barrel tip, standing still
	state.OnPointerClick()
	state.AddEntity(NewEnemy(EnemySpawn{Position: Vector{X: 512, Y: 700}, Motion: Straight{}}, 0, state.cfg))

	state.Update(0)

	if state.Score != 50 {
		t.Errorf("Expected score 50, got %d", state.Score)
	}
	if len(state.Entities) != 0 {
		t.Errorf("Expected both entities removed, got %d", len(state.Entities))
	}
	if rec.detached != 2 {
		t.Errorf("Expected 2 sprites detached, got %d", rec.detached)
	}
	// Level 1 still has enemies queued
	if state.Level != 1 || state.ModalTime != 0 {
		t.Errorf("Expected level to continue, got level %d modal %v", state.Level, state.ModalTime)
	}
}

func TestOneShotHitsOverlappingEnemies(t *testing.T) {
	state, _ := newTestState(t)

	state.OnPointerClick()
	state.AddEntity(NewEnemy(EnemySpawn{Position: Vector{X: 512, Y: 700}, Motion: Straight{}}, 0, state.cfg))
	state.AddEntity(NewEnemy(EnemySpawn{Position: Vector{X: 520, Y: 705}, Motion: Straight{}}, 0, state.cfg))

	state.Update(0)

	if state.Score != 100 {
		t.Errorf("Expected both enemies scored, got %d", state.Score)
	}
	if len(state.Entities) != 0 {
		t.Errorf("Expected all entities removed, got %d", len(state.Entities))
	}
}

func TestEnemyReachesBottom(t *testing.T) {
	state, rec := newTestState(t)
	queued := len(state.EnemySpawns)

	state.AddEntity(NewEnemy(straightSpawn(100, 794), 0, state.cfg))
	state.AddEntity(NewEnemy(straightSpawn(300, 100), 0, state.cfg))
	state.OnPointerClick()

	state.Update(0)

	if state.Lives != 2 {
		t.Errorf("Expected 2 lives left, got %d", state.Lives)
	}
	if state.IsGameOver {
		t.Error("Expected game to continue")
	}
	if rec.message.Title != "Whoops!" || state.ModalTime != 2 {
		t.Errorf("Expected Whoops! modal for 2s, got %q for %v", rec.message.Title, state.ModalTime)
	}
	if rec.opacity != 1 {
		t.Errorf("Expected modal visible, got opacity %v", rec.opacity)
	}
	if len(state.Entities) != 0 {
		t.Errorf("Expected all entities cleared, got %d", len(state.Entities))
	}

	// Both enemies, including the one that got through, go back to the front of the queue
	if len(state.EnemySpawns) != queued+2 {
		t.Fatalf("Expected %d queued enemies, got %d", queued+2, len(state.EnemySpawns))
	}
	if state.EnemySpawns[0].Position != (Vector{X: 100, Y: 794}) || state.EnemySpawns[1].Position != (Vector{X: 300, Y: 100}) {
		t.Errorf("Expected live enemies requeued in order, got %v, %v", state.EnemySpawns[0].Position, state.EnemySpawns[1].Position)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	state, rec := newTestState(t)
	state.Lives = 1
	state.Score = 300

	state.AddEntity(NewEnemy(straightSpawn(100, 794), 0, state.cfg))
	state.Update(0)

	if !state.IsGameOver || state.Lives != 0 {
		t.Fatalf("Expected game over with 0 lives, got game over %v, %d lives", state.IsGameOver, state.Lives)
	}
	if len(state.EnemySpawns) != 0 {
		t.Errorf("Expected spawn queue cleared, got %d", len(state.EnemySpawns))
	}
	if rec.message.Title != "Game Over!" || len(rec.message.Lines) != 2 || rec.message.Lines[0] != "Score: 300" {
		t.Errorf("Unexpected game over message %+v", rec.message)
	}
	if !math.IsInf(state.ModalTime, 1) {
		t.Errorf("Expected modal forever, got %v", state.ModalTime)
	}

	// Nothing spawns while game over
	state.Update(100)
	if len(state.Entities) != 0 {
		t.Errorf("Expected no entities after game over, got %d", len(state.Entities))
	}
}

func TestCheckEndLevel(t *testing.T) {
	state, rec := newTestState(t)
	state.EnemySpawns = nil
	state.EnemyCount = 10
	state.ShotCount = 10
	state.Score = 500

	state.checkEndLevel()

	if state.Score != 1500 {
		t.Errorf("Expected bonus 1000 added, got score %d", state.Score)
	}
	if state.Level != 2 {
		t.Errorf("Expected level 2, got %d", state.Level)
	}
	if len(state.EnemySpawns) != 15 || state.EnemyCount != 15 {
		t.Errorf("Expected level 2 queue of 15, got %d (count %d)", len(state.EnemySpawns), state.EnemyCount)
	}
	if state.ModalTime != 5 || state.ShotCount != 0 {
		t.Errorf("Expected modal 5s and shot count reset, got %v, %d", state.ModalTime, state.ShotCount)
	}

	want := Message{Title: "Level 1 finished!", Lines: []string{"Shot accuracy: 100%", "Bonus points: 1000"}}
	if rec.message.Title != want.Title || len(rec.message.Lines) != 2 ||
		rec.message.Lines[0] != want.Lines[0] || rec.message.Lines[1] != want.Lines[1] {
		t.Errorf("Expected message %+v, got %+v", want, rec.message)
	}
	if rec.color != state.catalog.Background(2) {
		t.Errorf("Expected backdrop 2, got %v", rec.color)
	}
}

func TestCheckEndLevelAccuracy(t *testing.T) {
	tests := []struct {
		name      string
		enemies   int
		shots     int
		wantBonus int
	}{
		{"perfect", 10, 10, 1000},
		{"half", 10, 20, 500},
		{"no shots", 10, 0, 0},
		{"multi kill", 10, 5, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := newTestState(t)
			state.EnemySpawns = nil
			state.EnemyCount = tt.enemies
			state.ShotCount = tt.shots

			state.checkEndLevel()

			if state.Score != tt.wantBonus {
				t.Errorf("Expected bonus %d, got %d", tt.wantBonus, state.Score)
			}
		})
	}
}

func TestCheckEndLevelWaitsForEnemies(t *testing.T) {
	state, _ := newTestState(t)

	// Queue not empty
	state.checkEndLevel()
	if state.Level != 1 {
		t.Fatalf("Expected level 1 while enemies are queued, got %d", state.Level)
	}

	// Queue empty, one enemy alive
	state.EnemySpawns = nil
	state.AddEntity(NewEnemy(straightSpawn(100, 100), 0, state.cfg))
	state.checkEndLevel()
	if state.Level != 1 {
		t.Errorf("Expected level 1 while an enemy is alive, got %d", state.Level)
	}
}

func TestLastKillFinishesLevel(t *testing.T) {
	state, rec := newTestState(t)
	state.EnemySpawns = nil
	state.EnemyCount = 1

	state.OnPointerClick()
	state.AddEntity(NewEnemy(EnemySpawn{Position: Vector{X: 512, Y: 700}, Motion: Straight{}}, 0, state.cfg))

	state.Update(0)

	if state.Score != 1050 {
		t.Errorf("Expected kill plus full bonus 1050, got %d", state.Score)
	}
	if state.Level != 2 || rec.message.Title != "Level 1 finished!" {
		t.Errorf("Expected level 2 after finishing, got level %d, message %q", state.Level, rec.message.Title)
	}
	if state.Phase() != PhaseModalWait {
		t.Errorf("Expected phase modal-wait, got %v", state.Phase())
	}
}

func TestWinningTheGame(t *testing.T) {
	state, rec := newTestState(t)
	state.Level = state.catalog.LevelCount()
	state.EnemySpawns = nil
	state.EnemyCount = 50
	state.ShotCount = 100
	state.Score = 10000

	state.checkEndLevel()

	if !state.IsGameOver {
		t.Fatal("Expected game won")
	}
	if state.Score != 10500 {
		t.Errorf("Expected final score 10500, got %d", state.Score)
	}
	want := []string{"You won the game!", "Total score: 10500", "Click to play again :)"}
	if rec.message.Title != "Congratulations!" || len(rec.message.Lines) != len(want) {
		t.Fatalf("Unexpected win message %+v", rec.message)
	}
	for i := range want {
		if rec.message.Lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], rec.message.Lines[i])
		}
	}
	if !math.IsInf(state.ModalTime, 1) {
		t.Errorf("Expected modal forever, got %v", state.ModalTime)
	}
	if state.Phase() != PhaseGameOver {
		t.Errorf("Expected phase game-over, got %v", state.Phase())
	}
}

func TestModalCountdown(t *testing.T) {
	state, rec := newTestState(t)
	state.EnemySpawns = nil
	state.ModalTime = 2

	state.Update(0.5)
	if !almostEqual(state.ModalTime, 1.5) || rec.opacity != 1 {
		t.Errorf("Expected 1.5s left and visible modal, got %v, opacity %v", state.ModalTime, rec.opacity)
	}

	state.Update(3)
	if state.ModalTime != 0 {
		t.Errorf("Expected modal time clamped to 0, got %v", state.ModalTime)
	}

	state.Update(3.1)
	if rec.opacity != 0 {
		t.Errorf("Expected hidden modal, got opacity %v", rec.opacity)
	}

	state.ModalTime = ModalForever
	state.Update(1000)
	if !math.IsInf(state.ModalTime, 1) || rec.opacity != 1 {
		t.Errorf("Expected modal forever and visible, got %v, opacity %v", state.ModalTime, rec.opacity)
	}
}

func TestStatusAndBarrelSinks(t *testing.T) {
	state, rec := newTestState(t)
	state.Score = 250
	state.OnPointerMove(812, 438)

	state.Update(0)

	if rec.status != "Level: 1\nLives: 3\nScore: 250" {
		t.Errorf("Unexpected status text %q", rec.status)
	}
	if !almostEqual(rec.rotation, math.Pi/4) {
		t.Errorf("Expected barrel rotation pi/4 from vertical, got %v", rec.rotation)
	}
}
