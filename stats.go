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

import "fmt"

// AlignmentStats summarizes an alignment recomputed from its CIGAR.
type AlignmentStats struct {
	Score      int64
	Length     int64
	Matches    int64
	Mismatches int64
	Gaps       int64
}

// AlignStats reparses a CIGAR against the original sequences and recomputes
// the alignment score and counts under the aligner's scoring and policies.
//
// Gap penalties are charged per run, one open plus one extension per gapped
// position. The position class of a run is left iff it starts at position
// zero of both sequences, right iff it is the final operation of the CIGAR,
// and interior otherwise. An aligned pair counts as a match iff its 4-bit
// codes share a bit, unless the NAsMismatch policy is set and either symbol
// is N.
func (algn *Aligner) AlignStats(cigar string, a, b []byte) (AlignmentStats, error) {
	var st AlignmentStats
	var aPos, bPos int64

	for i := 0; i < len(cigar); {
		run, op, next, err := scanCigarOp(cigar, i)
		if err != nil {
			return AlignmentStats{}, err
		}
		i = next

		switch op {
		case 'M':
			if aPos+run > int64(len(a)) || bPos+run > int64(len(b)) {
				return AlignmentStats{}, fmt.Errorf("%w: %dM at a[%d] b[%d]", ErrCigarOverrun, run, aPos, bPos)
			}
			st.Length += run
			for k := int64(0); k < run; k++ {
				x := a[aPos]
				y := b[bPos]
				st.Score += algn.subst(x, y)

				switch {
				case algn.opt.NAsMismatch && (chrmap4bit[x] == codeN || chrmap4bit[y] == codeN):
					st.Mismatches++
				case chrmap4bit[x]&chrmap4bit[y] != 0:
					st.Matches++
				default:
					st.Mismatches++
				}

				aPos++
				bPos++
			}

		case 'I':
			if bPos+run > int64(len(b)) {
				return AlignmentStats{}, fmt.Errorf("%w: %dI at b[%d]", ErrCigarOverrun, run, bPos)
			}
			var g int64
			switch {
			case aPos == 0 && bPos == 0:
				g = algn.goQL + run*algn.geQL
			case i == len(cigar): // last operation
				g = algn.goQR + run*algn.geQR
			default:
				g = algn.goQI + run*algn.geQI
			}
			st.Score -= g
			st.Gaps++
			st.Length += run
			bPos += run

		case 'D':
			if aPos+run > int64(len(a)) {
				return AlignmentStats{}, fmt.Errorf("%w: %dD at a[%d]", ErrCigarOverrun, run, aPos)
			}
			var g int64
			switch {
			case aPos == 0 && bPos == 0:
				g = algn.goTL + run*algn.geTL
			case i == len(cigar): // last operation
				g = algn.goTR + run*algn.geTR
			default:
				g = algn.goTI + run*algn.geTI
			}
			st.Score -= g
			st.Gaps++
			st.Length += run
			aPos += run
		}
	}

	return st, nil
}
