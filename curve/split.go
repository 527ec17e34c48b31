package curve

import (
	"github.com/328d95/genartlib"
)

// SplitWithStep partitions a curve into consecutive segments of arc length
// step. The curve is walked point by point; whenever the accumulated length
// reaches the step, a split point is synthesized on the current edge at
// exactly the step boundary, the segment is closed with it, and the next
// segment starts from it. A final stretch shorter than a full step is
// absorbed into the last closed segment rather than emitted on its own, and
// a trailing segment that never grew beyond its seed point is discarded.
// The segment lengths therefore sum to the length of the input, but the last
// segment may be up to twice the step long.
//
// Coincident consecutive points advance the walk by zero length; they are
// copied into the current segment and never enter the split arithmetic, so
// no division by a zero distance can occur. A curve of one point or fewer
// cannot be split and is returned as the only element of the result.
//
// A step of zero or less is degenerate and must be avoided by the caller.
func SplitWithStep(c Curve, step float64) []Curve {
	if len(c) <= 1 {
		return []Curve{c}
	}
	var out []Curve
	seg := Curve{c[0]}
	prev := c[0]
	acc := 0.0
	for i := 1; i < len(c); {
		next := c[i]
		d := genartlib.Dist(prev, next)
		if d <= 0 || acc+d < step {
			// the whole edge fits into the current segment
			seg = append(seg, next)
			acc += d
			prev = next
			i++
			continue
		}
		needed := step - acc
		t := needed / d
		split := genartlib.Lerp(prev, next, t)
		seg = append(seg, split)
		rest := d - needed
		if i == len(c)-1 && rest < step {
			// no full step left on the final edge: absorb the remainder
			if rest > 0 {
				seg = append(seg, next)
			}
			out = append(out, seg)
			tracer().Debugf("split curve of %d points into %d segments", len(c), len(out))
			return out
		}
		out = append(out, seg)
		seg = Curve{split}
		prev = split
		acc = 0
		if rest <= 0 {
			i++ // the split consumed the point exactly
		}
	}
	if len(seg) > 1 {
		out = append(out, seg)
	}
	tracer().Debugf("split curve of %d points into %d segments", len(c), len(out))
	return out
}

// SplitIntoParts partitions a curve into n segments of equal arc length.
// For n of 1 or less the whole curve is the only part. The returned count
// is a best-effort target, not a guarantee: floating-point accumulation and
// the remainder handling of SplitWithStep can merge the final stretch into
// the previous segment, yielding n-1 parts.
func SplitIntoParts(c Curve, n int) []Curve {
	if n <= 1 {
		return []Curve{c}
	}
	return SplitWithStep(c, Length(c)/float64(n))
}
