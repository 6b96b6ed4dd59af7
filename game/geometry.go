package game

import "math"

const (
	// snakeTopY is the height of the first snake traversal
	snakeTopY = 50.0

	// snakeTurnMargin is how far from the screen edge a snake turns around
	snakeTurnMargin = 100.0

	// snakeExitMargin is how far below the screen a snake path ends
	snakeExitMargin = 100.0

	// snakeTraversals is the number of horizontal sweeps in a snake path
	snakeTraversals = 4

	// snakeRowSpacing is the vertical distance between sweeps, in screen heights
	snakeRowSpacing = 0.1
)

// Vector is a 2D position or velocity in screen pixels
type Vector struct {
	X, Y float64
}

// Add returns v + o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// DistanceTo returns the euclidean distance between two points
func (v Vector) DistanceTo(o Vector) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Direction returns the unit vector for an angle in radians
func Direction(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Viewport reports the current screen size. It is queried every time geometry
// needs it, so a resize takes effect on the next computation.
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a Viewport that never changes size
type FixedViewport struct {
	Width, Height float64
}

// Size implements Viewport
func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}

// BarrelAnchor returns the pivot of the barrel: centered horizontally, offset from the bottom
func BarrelAnchor(vp Viewport, cfg Config) Vector {
	w, h := vp.Size()
	return Vector{X: w / 2, Y: h + cfg.BarrelOffsetY}
}

// ClampBarrelAngle limits an angle to maxDeflection radians either side of straight up
func ClampBarrelAngle(angle, maxDeflection float64) float64 {
	up := -math.Pi / 2
	return math.Min(up+maxDeflection, math.Max(up-maxDeflection, angle))
}

// SamplePolyline traces age*viewportHeight*speed pixels along the polyline and
// returns the point reached. Distances past the end return the last point.
func SamplePolyline(lines []Vector, age, speed, viewportHeight float64) Vector {
	if len(lines) == 0 {
		return Vector{}
	}

	remaining := age * viewportHeight * speed
	for i := 1; i < len(lines); i++ {
		p1, p2 := lines[i-1], lines[i]
		distance := p1.DistanceTo(p2)
		if remaining <= distance {
			if distance == 0 {
				return p1
			}
			t := remaining / distance
			return Vector{
				X: p1.X + t*(p2.X-p1.X),
				Y: p1.Y + t*(p2.Y-p1.Y),
			}
		}
		remaining -= distance
	}
	return lines[len(lines)-1]
}

// RandomSnakePolyline builds a zig-zag path that starts just off one side of the
// screen, sweeps across it four times moving down a tenth of the screen each
// time, and exits below the bottom edge.
func RandomSnakePolyline(enterFromRight bool, vp Viewport, cfg Config) []Vector {
	w, h := vp.Size()

	goingLeft := enterFromRight
	y := snakeTopY
	x := -cfg.EnemyWidth
	if goingLeft {
		x = w + cfg.EnemyWidth
	}

	points := make([]Vector, 0, snakeTraversals*2+1)
	for i := 0; i < snakeTraversals; i++ {
		points = append(points, Vector{X: x, Y: y})
		if goingLeft {
			x = snakeTurnMargin
		} else {
			x = w - snakeTurnMargin
		}
		points = append(points, Vector{X: x, Y: y})
		y += h * snakeRowSpacing
		goingLeft = !goingLeft
	}
	points = append(points, Vector{X: x, Y: h + snakeExitMargin})

	return points
}
