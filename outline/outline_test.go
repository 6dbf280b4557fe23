package outline

import "testing"

func TestLineIntersect(t *testing.T) {
	l := &Line{X0: 0, Y0: 0, X1: 10, Y1: 10}
	xs := l.IntersectLine(5)
	if len(xs) != 1 || xs[0] != 5 {
		t.Fatalf("IntersectLine(5) = %v, want [5]", xs)
	}
	if xs := l.IntersectLine(20); xs != nil {
		t.Fatalf("IntersectLine(20) = %v, want nil", xs)
	}
}

func TestLineHorizontalNoIntersection(t *testing.T) {
	l := &Line{X0: 0, Y0: 5, X1: 10, Y1: 5}
	if xs := l.IntersectLine(5); xs != nil {
		t.Fatalf("horizontal segment should report no crossing, got %v", xs)
	}
}

func TestQuadIntersect(t *testing.T) {
	q := &Quad{X0: 0, Y0: 0, X1: 5, Y1: 10, X2: 10, Y2: 0}
	xs := q.IntersectLine(5)
	if len(xs) != 2 {
		t.Fatalf("IntersectLine(5) = %v, want 2 crossings", xs)
	}
}

func TestCubicIntersectMatchesLineForDegenerateCurve(t *testing.T) {
	c := &Cubic{X0: 0, Y0: 0, X1: 0, Y1: 0, X2: 10, Y2: 10, X3: 10, Y3: 10}
	xs := c.IntersectLine(5)
	if len(xs) != 1 {
		t.Fatalf("IntersectLine(5) = %v, want 1 crossing", xs)
	}
	if diff := xs[0] - 5; diff > 0.1 || diff < -0.1 {
		t.Fatalf("x = %v, want close to 5", xs[0])
	}
}
