package game

// Rect is an axis aligned rectangle in screen coordinates
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectAround returns a width x height rectangle centered on pos
func RectAround(pos Vector, width, height float64) Rect {
	return Rect{
		Left:   pos.X - width/2,
		Top:    pos.Y - height/2,
		Right:  pos.X + width/2,
		Bottom: pos.Y + height/2,
	}
}

// Intersects reports whether the rectangles overlap; touching edges count
func (r Rect) Intersects(o Rect) bool {
	return !(o.Left > r.Right ||
		o.Right < r.Left ||
		o.Top > r.Bottom ||
		o.Bottom < r.Top)
}

// outsideScreen reports whether a rectangle has left a w x h screen entirely
func (r Rect) outsideScreen(w, h float64) bool {
	return r.Top > h || r.Bottom < 0 || r.Left > w || r.Right < 0
}

// checkCollisions handles entities leaving the screen and shots hitting
// enemies. Every pair of live entities is tested after all movement is done.
// Killed entities are pruned once at the end.
func (s *State) checkCollisions() {
	w, h := s.viewport.Size()

	for i := 0; i < len(s.Entities); i++ {
		a := s.Entities[i]
		// Ignore dead entities, they are cleaned up right after
		if a.IsDead() {
			continue
		}
		rectA := a.Bounds()

		switch a := a.(type) {
		case *Shot:
			if rectA.outsideScreen(w, h) {
				KillEntity(a)
				continue
			}
		case *Enemy:
			// Enemies only care about reaching the bottom
			if rectA.Top > h {
				s.loseLife()
				continue
			}
		}

		for j := 0; j < len(s.Entities); j++ {
			b := s.Entities[j]
			if b.IsDead() {
				continue
			}
			if !rectA.Intersects(b.Bounds()) {
				continue
			}

			// Every ordered pair is visited, so only shot-vs-enemy needs handling
			shot, isShot := a.(*Shot)
			enemy, isEnemy := b.(*Enemy)
			if !isShot || !isEnemy {
				continue
			}

			KillEntity(shot)
			KillEntity(enemy)
			s.Score += ScoreForKill(enemy, s.cfg)
			s.checkEndLevel()
		}
	}

	s.PruneDeadEntities()
}
