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

import "github.com/biogo/hts/sam"

// SAMCigar converts a CIGAR produced by Align into hts CIGAR operations,
// with sequence A in the reference role and sequence B in the read role:
// M consumes both, I consumes the read and D the reference. The result
// satisfies sam.Cigar.IsValid(len(b)) for any CIGAR returned by Align.
func SAMCigar(cigar string) (sam.Cigar, error) {
	var c sam.Cigar
	for i := 0; i < len(cigar); {
		run, op, next, err := scanCigarOp(cigar, i)
		if err != nil {
			return nil, err
		}
		i = next

		var typ sam.CigarOpType
		switch op {
		case 'M':
			typ = sam.CigarMatch
		case 'I':
			typ = sam.CigarInsertion
		case 'D':
			typ = sam.CigarDeletion
		}
		c = append(c, sam.NewCigarOp(typ, int(run)))
	}
	return c, nil
}
