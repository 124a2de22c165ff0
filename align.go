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

// Package linalign computes optimal global pairwise alignments of nucleotide
// sequences in linear space, using the divide and conquer method of
// Hirschberg (1975) Comm ACM 18:341-343 and Myers & Miller (1988)
// CABIOS 4:11-17, adapted for distinct gap penalties depending on which
// sequence a gap falls in (query or target) and on its position class
// (left end, interior, right end).
//
// Sequences and alignment matrix:
// A/a/i/query/q/downwards/vertical/top/bottom,
// B/b/j/target/t/rightwards/horizontal/left/right.
package linalign

import "sync"

// GapSeq selects which sequence a gap falls in.
type GapSeq uint8

const (
	// InQuery is a gap in sequence A, written as I in the CIGAR.
	InQuery GapSeq = iota
	// InTarget is a gap in sequence B, written as D in the CIGAR.
	InTarget
)

// GapPos selects the position class of a gap.
type GapPos uint8

const (
	PosLeft GapPos = iota
	PosInterior
	PosRight
)

// Scoring holds the substitution scores and the twelve gap costs.
// Gap costs are non-negative and applied as subtractions: a gap of length L
// in sequence s with position class p costs GapOpen[s][p] + L*GapExt[s][p].
type Scoring struct {
	Match    int64
	Mismatch int64

	GapOpen [2][3]int64 // indexed by [GapSeq][GapPos]
	GapExt  [2][3]int64
}

// DefaultScoring follows the vsearch command line defaults: +2/-4 with
// gap opening 20 interior and 2 at the ends, and gap extension 2 interior
// and 1 at the ends, for gaps in either sequence.
var DefaultScoring = &Scoring{
	Match:    2,
	Mismatch: -4,
	GapOpen: [2][3]int64{
		InQuery:  {PosLeft: 2, PosInterior: 20, PosRight: 2},
		InTarget: {PosLeft: 2, PosInterior: 20, PosRight: 2},
	},
	GapExt: [2][3]int64{
		InQuery:  {PosLeft: 1, PosInterior: 2, PosRight: 1},
		InTarget: {PosLeft: 1, PosInterior: 2, PosRight: 1},
	},
}

// Uniform returns a Scoring with the same open and extension cost for every
// gap regime.
func Uniform(match, mismatch, gapOpen, gapExt int64) *Scoring {
	s := &Scoring{Match: match, Mismatch: mismatch}
	for _, q := range []GapSeq{InQuery, InTarget} {
		for _, p := range []GapPos{PosLeft, PosInterior, PosRight} {
			s.GapOpen[q][p] = gapOpen
			s.GapExt[q][p] = gapExt
		}
	}
	return s
}

// Options carries the alignment policies that are not part of the gap model.
type Options struct {
	// NAsMismatch makes any pairing involving N score as a mismatch
	// instead of being neutral.
	NAsMismatch bool
}

// DefaultOptions is the default option.
var DefaultOptions = &Options{}

// Aligner aligns pairs of sequences. One Aligner can be reused for many
// pairs, but it is not safe for concurrent use: create one Aligner per
// goroutine. Aligner objects come from an object pool; recycle them with
// RecycleAligner().
type Aligner struct {
	scoring *Scoring
	opt     *Options

	scorematrix [16][16]int64

	// gap penalties unpacked from the scoring for the inner loops
	goQL, goQI, goQR int64
	goTL, goTI, goTR int64
	geQL, geQI, geQR int64
	geTL, geTI, geTR int64

	// scratch vectors along the split row
	hh, ee, xx, yy []int64

	cigar cigarBuffer

	// sequences borrowed for the duration of one Align call
	a, b []byte
}

// object pool of aligners.
var poolAligner = &sync.Pool{New: func() interface{} {
	return &Aligner{}
}}

// New returns an Aligner from the object pool, configured with the given
// scoring and options. Do not forget to call RecycleAligner() after use.
func New(scoring *Scoring, opt *Options) *Aligner {
	algn := poolAligner.Get().(*Aligner)
	algn.scoring = scoring
	algn.opt = opt

	algn.goQL = scoring.GapOpen[InQuery][PosLeft]
	algn.goQI = scoring.GapOpen[InQuery][PosInterior]
	algn.goQR = scoring.GapOpen[InQuery][PosRight]
	algn.goTL = scoring.GapOpen[InTarget][PosLeft]
	algn.goTI = scoring.GapOpen[InTarget][PosInterior]
	algn.goTR = scoring.GapOpen[InTarget][PosRight]
	algn.geQL = scoring.GapExt[InQuery][PosLeft]
	algn.geQI = scoring.GapExt[InQuery][PosInterior]
	algn.geQR = scoring.GapExt[InQuery][PosRight]
	algn.geTL = scoring.GapExt[InTarget][PosLeft]
	algn.geTI = scoring.GapExt[InTarget][PosInterior]
	algn.geTR = scoring.GapExt[InTarget][PosRight]

	algn.fillScoreMatrix()

	return algn
}

// RecycleAligner recycles an Aligner object.
func RecycleAligner(algn *Aligner) {
	if algn != nil {
		poolAligner.Put(algn)
	}
}

// fillScoreMatrix builds the 16x16 substitution table, once per aligner.
// Only pairings of two unambiguous codes score match or mismatch; any
// pairing involving an ambiguity code scores 0, except that the whole N row
// and column score as mismatches under the NAsMismatch policy.
func (algn *Aligner) fillScoreMatrix() {
	sm := &algn.scorematrix
	for r := range sm {
		for c := range sm[r] {
			switch {
			case IsAmbiguous(uint8(r)) || IsAmbiguous(uint8(c)):
				sm[r][c] = 0
			case r == c:
				sm[r][c] = algn.scoring.Match
			default:
				sm[r][c] = algn.scoring.Mismatch
			}
		}
	}
	if algn.opt.NAsMismatch {
		for i := range sm {
			sm[i][codeN] = algn.scoring.Mismatch
			sm[codeN][i] = algn.scoring.Mismatch
		}
	}
}

// subst returns the substitution score for aligning byte x from A with
// byte y from B.
func (algn *Aligner) subst(x, y byte) int64 {
	return algn.scorematrix[chrmap4bit[x]][chrmap4bit[y]]
}

// growVectors makes sure the scratch vectors hold at least n entries.
func (algn *Aligner) growVectors(n int) {
	if len(algn.hh) >= n {
		return
	}
	algn.hh = make([]int64, n)
	algn.ee = make([]int64, n)
	algn.xx = make([]int64, n)
	algn.yy = make([]int64, n)
}

// Align computes the optimal global alignment of a and b and returns its
// CIGAR, where M is an aligned pair, I a gap in a and D a gap in b.
// Either sequence may be empty; aligning two empty sequences yields "".
// The returned string is a copy, valid after further calls.
func (algn *Aligner) Align(a, b []byte) string {
	algn.a = a
	algn.b = b

	algn.cigar.reset()
	algn.growVectors(len(b) + 1)

	algn.diff(0, 0, int64(len(a)), int64(len(b)), false, false, true, true, true, true)

	algn.cigar.flush()

	algn.a = nil
	algn.b = nil

	return algn.cigar.String()
}
