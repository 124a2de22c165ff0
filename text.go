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

// AlignmentText renders the three-row text form of an alignment described by
// a CIGAR: sequence A on top, sequence B at the bottom, and a middle bar row
// marking compatible aligned pairs with '|'. Gapped positions show '-'.
func (algn *Aligner) AlignmentText(cigar string, a, b []byte) (rowA, bar, rowB []byte, err error) {
	var aPos, bPos int64

	for i := 0; i < len(cigar); {
		run, op, next, e := scanCigarOp(cigar, i)
		if e != nil {
			return nil, nil, nil, e
		}
		i = next

		switch op {
		case 'M':
			if aPos+run > int64(len(a)) || bPos+run > int64(len(b)) {
				return nil, nil, nil, fmt.Errorf("%w: %dM at a[%d] b[%d]", ErrCigarOverrun, run, aPos, bPos)
			}
			for k := int64(0); k < run; k++ {
				x := a[aPos]
				y := b[bPos]
				rowA = append(rowA, x)
				rowB = append(rowB, y)

				compatible := chrmap4bit[x]&chrmap4bit[y] != 0
				if algn.opt.NAsMismatch && (chrmap4bit[x] == codeN || chrmap4bit[y] == codeN) {
					compatible = false
				}
				if compatible {
					bar = append(bar, '|')
				} else {
					bar = append(bar, ' ')
				}

				aPos++
				bPos++
			}

		case 'I':
			if bPos+run > int64(len(b)) {
				return nil, nil, nil, fmt.Errorf("%w: %dI at b[%d]", ErrCigarOverrun, run, bPos)
			}
			for k := int64(0); k < run; k++ {
				rowA = append(rowA, '-')
				bar = append(bar, ' ')
				rowB = append(rowB, b[bPos])
				bPos++
			}

		case 'D':
			if aPos+run > int64(len(a)) {
				return nil, nil, nil, fmt.Errorf("%w: %dD at a[%d]", ErrCigarOverrun, run, aPos)
			}
			for k := int64(0); k < run; k++ {
				rowA = append(rowA, a[aPos])
				bar = append(bar, ' ')
				rowB = append(rowB, '-')
				aPos++
			}
		}
	}

	return rowA, bar, rowB, nil
}
