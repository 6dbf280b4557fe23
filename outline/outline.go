// Package outline represents glyph contours as a flat sequence of path
// segments (line, quadratic, cubic), the common form the font package
// converts face outlines into and the raster package consumes to build
// antialiased coverage masks.
package outline

import "math"

// Segment is one piece of a glyph contour.
type Segment interface {
	isSegment()
	// IntersectLine returns the x-coordinates where this segment crosses
	// the horizontal line at the given y-coordinate. Used by callers that
	// need geometric queries against a contour outside of rasterization.
	IntersectLine(y float64) []float64
}

// Line is a straight segment from (X0,Y0) to (X1,Y1).
type Line struct {
	X0, Y0, X1, Y1 float64
}

func (*Line) isSegment() {}

// IntersectLine finds the intersection with the horizontal line at y.
func (l *Line) IntersectLine(y float64) []float64 {
	yMin, yMax := l.Y0, l.Y1
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	if y < yMin || y > yMax || l.Y1 == l.Y0 {
		return nil
	}
	t := (y - l.Y0) / (l.Y1 - l.Y0)
	return []float64{l.X0 + t*(l.X1-l.X0)}
}

// Quad is a quadratic Bezier segment with one control point.
type Quad struct {
	X0, Y0, X1, Y1, X2, Y2 float64
}

func (*Quad) isSegment() {}

// IntersectLine finds the intersections with the horizontal line at y.
func (q *Quad) IntersectLine(y float64) []float64 {
	a := q.Y0 - 2*q.Y1 + q.Y2
	b := 2 * (q.Y1 - q.Y0)
	c := q.Y0 - y

	var results []float64
	if math.Abs(a) < 1e-10 {
		if math.Abs(b) > 1e-10 {
			t := -c / b
			if t >= 0 && t <= 1 {
				results = append(results, quadX(q, t))
			}
		}
		return results
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtDisc := math.Sqrt(disc)
	for _, t := range []float64{(-b + sqrtDisc) / (2 * a), (-b - sqrtDisc) / (2 * a)} {
		if t >= 0 && t <= 1 {
			results = append(results, quadX(q, t))
		}
	}
	return results
}

func quadX(q *Quad, t float64) float64 {
	return (1-t)*(1-t)*q.X0 + 2*(1-t)*t*q.X1 + t*t*q.X2
}

// Cubic is a cubic Bezier segment with two control points.
type Cubic struct {
	X0, Y0, X1, Y1, X2, Y2, X3, Y3 float64
}

func (*Cubic) isSegment() {}

// IntersectLine finds the intersections with the horizontal line at y,
// via recursive flattening rather than a closed-form cubic solve.
func (c *Cubic) IntersectLine(y float64) []float64 {
	return cubicIntersectLine(c.X0, c.Y0, c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3, y, 0)
}

func cubicIntersectLine(x0, y0, x1, y1, x2, y2, x3, y3, y float64, depth int) []float64 {
	yMin := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	yMax := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	if y < yMin || y > yMax {
		return nil
	}

	if depth > 10 || isFlatEnough(x0, y0, x1, y1, x2, y2, x3, y3) {
		line := &Line{X0: x0, Y0: y0, X1: x3, Y1: y3}
		return line.IntersectLine(y)
	}

	mx0, my0 := (x0+x1)/2, (y0+y1)/2
	mx1, my1 := (x1+x2)/2, (y1+y2)/2
	mx2, my2 := (x2+x3)/2, (y2+y3)/2
	mx3, my3 := (mx0+mx1)/2, (my0+my1)/2
	mx4, my4 := (mx1+mx2)/2, (my1+my2)/2
	mx5, my5 := (mx3+mx4)/2, (my3+my4)/2

	var results []float64
	results = append(results, cubicIntersectLine(x0, y0, mx0, my0, mx3, my3, mx5, my5, y, depth+1)...)
	results = append(results, cubicIntersectLine(mx5, my5, mx4, my4, mx2, my2, x3, y3, y, depth+1)...)
	return results
}

func isFlatEnough(x0, y0, x1, y1, x2, y2, x3, y3 float64) bool {
	const tolerance = 0.5
	dx, dy := x3-x0, y3-y0
	d := math.Sqrt(dx*dx + dy*dy)
	if d < 1e-10 {
		return true
	}
	d1 := math.Abs((x1-x0)*dy-(y1-y0)*dx) / d
	d2 := math.Abs((x2-x0)*dy-(y2-y0)*dx) / d
	return d1 < tolerance && d2 < tolerance
}
