package game

// Entity is a live game object: a *Shot or an *Enemy
type Entity interface {
	// Position returns the entity center in screen coordinates
	Position() Vector

	// Bounds returns the axis aligned box around the entity
	Bounds() Rect

	// IsDead reports whether the entity was killed and waits to be pruned
	IsDead() bool

	base() *body
}

// body holds what every entity has in common
type body struct {
	pos    Vector
	width  float64
	height float64
	dead   bool
	sprite Sprite
}

func (b *body) Position() Vector { return b.pos }
func (b *body) IsDead() bool     { return b.dead }
func (b *body) base() *body      { return b }

func (b *body) Bounds() Rect {
	return RectAround(b.pos, b.width, b.height)
}

// moveTo sets the position and projects it onto the sprite
func (b *body) moveTo(pos Vector) {
	b.pos = pos
	if b.sprite != nil {
		b.sprite.Move(pos)
	}
}

// Shot is a projectile fired from the barrel
type Shot struct {
	body

	// Velocity in pixels per second
	Velocity Vector
}

// Enemy is a spawned enemy
type Enemy struct {
	body

	// SpawnTime is the simulation time the enemy appeared at
	SpawnTime float64

	// Spawn is the descriptor the enemy was created from
	Spawn EnemySpawn
}

// NewEnemy creates an enemy at its spawn position
func NewEnemy(spawn EnemySpawn, spawnTime float64, cfg Config) *Enemy {
	return &Enemy{
		body: body{
			pos:    spawn.Position,
			width:  cfg.EnemyWidth,
			height: cfg.EnemyHeight,
		},
		SpawnTime: spawnTime,
		Spawn:     spawn,
	}
}

// NewShot creates a shot at the tip of the barrel, flying in the barrel direction.
// Shot speed is relative to the screen height.
func NewShot(barrelAngle float64, vp Viewport, cfg Config) *Shot {
	_, h := vp.Size()
	dir := Direction(barrelAngle)
	muzzle := BarrelAnchor(vp, cfg).Add(dir.Scale(cfg.BarrelLength))

	return &Shot{
		body: body{
			pos:    muzzle,
			width:  cfg.ShotWidth,
			height: cfg.ShotHeight,
		},
		Velocity: dir.Scale(h * cfg.ShotSpeed),
	}
}

// ScoreForKill returns the points for shooting down an enemy
func ScoreForKill(enemy *Enemy, cfg Config) int {
	return cfg.KillScore
}

// KillEntity marks the entity dead and removes its sprite right away. The
// entity itself stays in the collection until the next prune.
func KillEntity(entity Entity) {
	b := entity.base()
	b.dead = true
	if b.sprite != nil {
		b.sprite.Detach()
		b.sprite = nil
	}
}
