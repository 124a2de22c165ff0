// Copyright © 2025 Torbjorn Rognes
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package linalign

import "math"

// scoreMin is the negative infinity sentinel. Half of MinInt64 leaves enough
// headroom that scoreMin - open - ext stays representable.
const scoreMin = math.MinInt64 / 2

// diff appends the optimal alignment of A[aStart:aStart+aLen) against
// B[bStart:bStart+bLen) to the CIGAR.
//
// gapBLeft and gapBRight tell whether the alignment outside this subproblem
// already opens a gap in B at the corresponding boundary, in which case the
// open penalty must not be charged again there. aLeft, aRight, bLeft and
// bRight tell whether the subproblem touches the outer ends of A and B; they
// select the left, interior or right gap cost class at each boundary.
func (algn *Aligner) diff(aStart, bStart, aLen, bLen int64,
	gapBLeft, gapBRight bool,
	aLeft, aRight bool,
	bLeft, bRight bool,
) {
	switch {
	case bLen == 0:
		// B and possibly A is empty.
		if aLen > 0 {
			// Delete aLen from A:
			//   AAA
			//   ---
			algn.cigar.add('D', aLen)
		}
	case aLen == 0:
		// A is empty, B is not. Insert bLen from B:
		//   ---
		//   BBB
		algn.cigar.add('I', bLen)
	case aLen == 1:
		algn.diffSingle(aStart, bStart, bLen, gapBLeft, gapBRight, aLeft, aRight, bLeft, bRight)
	default:
		algn.diffSplit(aStart, bStart, aLen, bLen, gapBLeft, gapBRight, aLeft, aRight, bLeft, bRight)
	}
}

// diffSingle converts the single symbol of A into bLen (>= 1) symbols of B.
// It enumerates the three placement families and keeps the first best:
// delete then insert, insert then delete, and a match or mismatch at each
// position of B.
func (algn *Aligner) diffSingle(aStart, bStart, bLen int64,
	gapBLeft, gapBRight bool,
	aLeft, aRight bool,
	bLeft, bRight bool,
) {
	var score int64

	// Delete 1 from A, insert bLen from B:
	//   A----
	//   -BBBB

	// gap penalty for the gap in B of length 1
	if !gapBLeft {
		if bLeft {
			score -= algn.goTL
		} else {
			score -= algn.goTI
		}
	}
	if bLeft {
		score -= algn.geTL
	} else {
		score -= algn.geTI
	}

	// gap penalty for the gap in A of length bLen
	if aRight {
		score -= algn.goQR + bLen*algn.geQR
	} else {
		score -= algn.goQI + bLen*algn.geQI
	}

	maxScore := score
	best := int64(-1)

	// Insert bLen from B, delete 1 from A:
	//   ----A
	//   BBBB-

	score = 0
	if aLeft {
		score -= algn.goQL + bLen*algn.geQL
	} else {
		score -= algn.goQI + bLen*algn.geQI
	}
	if !gapBRight {
		if bRight {
			score -= algn.goTR
		} else {
			score -= algn.goTI
		}
	}
	if bRight {
		score -= algn.geTR
	} else {
		score -= algn.geTI
	}
	if score > maxScore {
		maxScore = score
		best = bLen
	}

	// Insert zero or more from B, replace 1, insert the rest of B:
	//   -A--
	//   BBBB

	for i := int64(0); i < bLen; i++ {
		score = 0
		if i > 0 {
			if aLeft {
				score -= algn.goQL + i*algn.geQL
			} else {
				score -= algn.goQI + i*algn.geQI
			}
		}
		score += algn.subst(algn.a[aStart], algn.b[bStart+i])
		if i < bLen-1 {
			if aRight {
				score -= algn.goQR + (bLen-1-i)*algn.geQR
			} else {
				score -= algn.goQI + (bLen-1-i)*algn.geQI
			}
		}
		if score > maxScore {
			maxScore = score
			best = i
		}
	}

	switch {
	case best == -1:
		algn.cigar.add('D', 1)
		algn.cigar.add('I', bLen)
	case best == bLen:
		algn.cigar.add('I', bLen)
		algn.cigar.add('D', 1)
	default:
		if best > 0 {
			algn.cigar.add('I', best)
		}
		algn.cigar.add('M', 1)
		if best < bLen-1 {
			algn.cigar.add('I', bLen-1-best)
		}
	}
}

// diffSplit handles the general case, aLen >= 2 and bLen >= 1. It splits A
// at its middle row, scores the upper part forwards into hh/ee and the lower
// part backwards into xx/yy, joins the two halves at the best column, and
// recurses on each half.
func (algn *Aligner) diffSplit(aStart, bStart, aLen, bLen int64,
	gapBLeft, gapBRight bool,
	aLeft, aRight bool,
	bLeft, bRight bool,
) {
	mid := aLen / 2

	hh, ee, xx, yy := algn.hh, algn.ee, algn.xx, algn.yy

	// Forward phase, upper part. hh[j] holds the best score of A[:mid]
	// against B[:j]; ee[j] the best score under the constraint that the
	// alignment ends with a gap in B at the split row.

	// Row 0 corresponds to the empty prefix of A against B of j symbols,
	// i.e. a gap of length j in A.
	hh[0] = 0
	ee[0] = 0
	for j := int64(1); j <= bLen; j++ {
		if aLeft {
			hh[j] = -(algn.goQL + j*algn.geQL)
		} else {
			hh[j] = -(algn.goQI + j*algn.geQI)
		}
		ee[j] = scoreMin
	}

	for i := int64(1); i <= mid; i++ {
		p := hh[0]

		var h int64
		if bLeft {
			if gapBLeft {
				h = -(i * algn.geTL)
			} else {
				h = -(algn.goTL + i*algn.geTL)
			}
		} else {
			if gapBLeft {
				h = -(i * algn.geTI)
			} else {
				h = -(algn.goTI + i*algn.geTI)
			}
		}
		hh[0] = h

		f := int64(scoreMin) // best score ending with a gap in A on this row

		for j := int64(1); j <= bLen; j++ {
			f = max(f, h-algn.goQI) - algn.geQI
			if bRight && j == bLen {
				ee[j] = max(ee[j], hh[j]-algn.goTR) - algn.geTR
			} else {
				ee[j] = max(ee[j], hh[j]-algn.goTI) - algn.geTI
			}

			h = p + algn.subst(algn.a[aStart+i-1], algn.b[bStart+j-1])
			h = max(f, h)
			h = max(ee[j], h)
			p = hh[j]
			hh[j] = h
		}
	}

	ee[0] = hh[0]

	// Reverse phase, lower part. The same recurrence over the reversed
	// subproblem A[mid:] against B, with the boundary roles mirrored.

	xx[0] = 0
	yy[0] = 0
	for j := int64(1); j <= bLen; j++ {
		if aRight {
			xx[j] = -(algn.goQR + j*algn.geQR)
		} else {
			xx[j] = -(algn.goQI + j*algn.geQI)
		}
		yy[j] = scoreMin
	}

	for i := int64(1); i <= aLen-mid; i++ {
		p := xx[0]

		var h int64
		if bRight {
			if gapBRight {
				h = -(i * algn.geTR)
			} else {
				h = -(algn.goTR + i*algn.geTR)
			}
		} else {
			if gapBRight {
				h = -(i * algn.geTI)
			} else {
				h = -(algn.goTI + i*algn.geTI)
			}
		}
		xx[0] = h

		f := int64(scoreMin)

		for j := int64(1); j <= bLen; j++ {
			f = max(f, h-algn.goQI) - algn.geQI
			if bLeft && j == bLen {
				yy[j] = max(yy[j], xx[j]-algn.goTL) - algn.geTL
			} else {
				yy[j] = max(yy[j], xx[j]-algn.goTI) - algn.geTI
			}

			h = p + algn.subst(algn.a[aStart+aLen-i], algn.b[bStart+bLen-j])
			h = max(f, h)
			h = max(yy[j], h)
			p = xx[j]
			xx[j] = h
		}
	}

	yy[0] = xx[0]

	// Find the maximum score along the division line.

	// Solutions with a diagonal at the break.
	maxScore0 := int64(scoreMin)
	best0 := int64(-1)
	for k := int64(0); k <= bLen; k++ {
		if s := hh[k] + xx[bLen-k]; s > maxScore0 {
			maxScore0 = s
			best0 = k
		}
	}

	// Solutions where the break falls inside a gap in B covering the split
	// row from both sides. Both halves charged the open penalty for the
	// same gap, so it is added back once.
	maxScore1 := int64(scoreMin)
	best1 := int64(-1)
	for k := int64(0); k <= bLen; k++ {
		var g int64
		switch {
		case bLeft && k == 0:
			g = algn.goTL
		case bRight && k == bLen:
			g = algn.goTR
		default:
			g = algn.goTI
		}
		if s := ee[k] + yy[bLen-k] + g; s > maxScore1 {
			maxScore1 = s
			best1 = k
		}
	}

	var parted bool
	var best int64
	switch {
	case maxScore0 > maxScore1:
		best = best0
	case maxScore1 > maxScore0:
		parted = true
		best = best1
	case best0 <= best1:
		best = best0
	default:
		parted = true
		best = best1
	}

	// Recursively align the upper left and lower right parts.

	if !parted {
		algn.diff(aStart, bStart, mid, best,
			gapBLeft, false, aLeft, false, bLeft, bRight && best == bLen)
		algn.diff(aStart+mid, bStart+best, aLen-mid, bLen-best,
			false, gapBRight, false, aRight, bLeft && best == 0, bRight)
		return
	}

	// The break sits inside a gap in B of length >= 2; emit the two rows of
	// A around the split as a deletion and align the rest on either side
	// with the open penalty already accounted for.
	algn.diff(aStart, bStart, mid-1, best,
		gapBLeft, true, aLeft, false, bLeft, bRight && best == bLen)
	algn.cigar.add('D', 2)
	algn.diff(aStart+mid+1, bStart+best, aLen-mid-1, bLen-best,
		true, gapBRight, false, aRight, bLeft && best == 0, bRight)
}
