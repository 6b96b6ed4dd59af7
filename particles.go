package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfighter/game"
)

// Particle represents a single particle in a particle system
type Particle struct {
	pos      game.Vector // screen position
	vel      game.Vector // pixels per second
	age      float64     // age in seconds
	lifetime float64     // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem emits bursts of particles, one per destroyed enemy
type ParticleSystem struct {
	particles      []Particle
	maxParticles   int
	burstSize      int     // particles per burst
	velocityMin    float64 // minimum particle velocity
	velocityMax    float64 // maximum particle velocity
	lifetimeMin    float64 // minimum particle lifetime
	lifetimeMax    float64 // maximum particle lifetime
	sizeMin        float64 // minimum particle size
	sizeMax        float64 // maximum particle size
	colorVariation color.NRGBA
	rng            *rand.Rand
}

// NewExplosionParticleSystem creates the particle system for enemy explosions
func NewExplosionParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles:      make([]Particle, 0, 256),
		maxParticles:   600,
		burstSize:      24,
		velocityMin:    60.0,
		velocityMax:    220.0,
		lifetimeMin:    0.3,
		lifetimeMax:    0.8,
		sizeMin:        1.5,
		sizeMax:        4.0,
		colorVariation: color.NRGBA{R: 40, G: 40, B: 40, A: 0},
		rng:            rng,
	}
}

// Burst emits particles in all directions from pos
func (ps *ParticleSystem) Burst(pos game.Vector, base color.NRGBA) {
	for i := 0; i < ps.burstSize && len(ps.particles) < ps.maxParticles; i++ {
		ps.emitParticle(pos, base)
	}
}

// emitParticle creates a new particle
func (ps *ParticleSystem) emitParticle(pos game.Vector, base color.NRGBA) {
	angle := ps.rng.Float64() * 2 * math.Pi
	velocity := ps.velocityMin + ps.rng.Float64()*(ps.velocityMax-ps.velocityMin)

	// Random color variation
	vary := func(c, v uint8) uint8 {
		return uint8(clamp(float64(c)+ps.rng.Float64()*float64(v)*2-float64(v), 0, 255))
	}

	ps.particles = append(ps.particles, Particle{
		pos:      pos,
		vel:      game.Direction(angle).Scale(velocity),
		lifetime: ps.lifetimeMin + ps.rng.Float64()*(ps.lifetimeMax-ps.lifetimeMin),
		color: color.NRGBA{
			R: vary(base.R, ps.colorVariation.R),
			G: vary(base.G, ps.colorVariation.G),
			B: vary(base.B, ps.colorVariation.B),
			A: base.A,
		},
		size: ps.sizeMin + ps.rng.Float64()*(ps.sizeMax-ps.sizeMin),
	})
}

// Update ages and moves the particles, dropping dead ones
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		if p.IsAlive() {
			live = append(live, p)
		}
	}
	ps.particles = live
}

// Draw renders all particles, fading them out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		ageAlpha := clamp(1.0-p.age/p.lifetime, 0, 1)
		particleColor := p.color
		particleColor.A = uint8(float64(p.color.A) * ageAlpha)

		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), particleColor, true)
	}
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
