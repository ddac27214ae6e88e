package cursor

// Mark returns the mark and whether it is set.
func (v *Viewport) Mark() (Point, bool) {
	return v.mark, v.mark != noMark
}

// SetMark sets the mark to (x, y). (-1, -1) clears it; any other negative
// coordinate is rejected and leaves the mark unchanged.
func (v *Viewport) SetMark(x, y int) bool {
	if (x < 0 && x != -1) || (y < 0 && y != -1) {
		return false
	}
	v.mark = Point{X: x, Y: y}
	return true
}

// ClearMark unsets the mark.
func (v *Viewport) ClearMark() {
	v.mark = noMark
}

// HasSelection reports whether the mark is set and differs from the point.
func (v *Viewport) HasSelection() bool {
	m, ok := v.Mark()
	return ok && m != v.Point()
}

// PointAfterMark reports whether the point lies after the mark in reading
// order.
func (v *Viewport) PointAfterMark() bool {
	return v.mark.Before(v.Point())
}

// Region returns the selection bounds in reading order, both inclusive.
func (v *Viewport) Region() (start, end Point, ok bool) {
	if !v.HasSelection() {
		return Point{}, Point{}, false
	}
	p := v.Point()
	if v.PointAfterMark() {
		return v.mark, p, true
	}
	return p, v.mark, true
}

// Selection walks from the point toward the mark with Move and returns the
// positions visited in reading order, both ends included. The cursor is
// restored afterwards. It returns nil when there is no selection.
func (v *Viewport) Selection(lines Lines) []Point {
	if !v.HasSelection() {
		return nil
	}

	saved := v.Save()
	defer v.Restore(saved)

	dir := Right
	backward := v.PointAfterMark()
	if backward {
		dir = Left
	}

	var path []Point
	for {
		p := v.Point()
		path = append(path, p)
		if p == v.mark {
			break
		}
		if backward && !v.mark.Before(p) || !backward && !p.Before(v.mark) {
			// Walked past a mark that no movement can land on.
			break
		}
		v.Move(lines, dir)
		if v.Point() == p {
			break
		}
	}

	if backward {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path
}
