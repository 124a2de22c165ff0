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

import (
	"fmt"
	"strconv"
)

// cigarBuffer incrementally builds a run-length encoded CIGAR string.
// Consecutive additions of the same operation are coalesced into one run,
// so the rendered string never contains two adjacent runs of the same letter.
type cigarBuffer struct {
	op  byte
	run int64
	buf []byte
}

func (c *cigarBuffer) reset() {
	c.buf = c.buf[:0]
	c.op = 0
	c.run = 0
}

// add appends run operations of the given type.
func (c *cigarBuffer) add(op byte, run int64) {
	if c.op == op {
		c.run += run
		return
	}
	c.flush()
	c.op = op
	c.run = run
}

// flush renders the pending run. A run of length 1 is written as the bare
// operation letter.
func (c *cigarBuffer) flush() {
	if c.run <= 0 {
		return
	}
	if c.run > 1 {
		c.buf = strconv.AppendInt(c.buf, c.run, 10)
	}
	c.buf = append(c.buf, c.op)
	c.op = 0
	c.run = 0
}

func (c *cigarBuffer) String() string { return string(c.buf) }

// Errors reported when parsing a CIGAR string.
var (
	ErrCigarOp      = fmt.Errorf("linalign: unknown cigar operation")
	ErrCigarCount   = fmt.Errorf("linalign: invalid cigar run length")
	ErrCigarOverrun = fmt.Errorf("linalign: cigar longer than sequences")
)

// scanCigarOp reads one <count?><op> token starting at cigar[i], where a
// missing count means 1. It returns the run length, the operation letter and
// the index just past the token.
func scanCigarOp(cigar string, i int) (run int64, op byte, next int, err error) {
	run = 1
	j := i
	for j < len(cigar) && cigar[j] >= '0' && cigar[j] <= '9' {
		j++
	}
	if j > i {
		run, err = strconv.ParseInt(cigar[i:j], 10, 64)
		if err != nil || run <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrCigarCount, cigar[i:j])
		}
	}
	if j == len(cigar) {
		return 0, 0, 0, fmt.Errorf("%w: truncated token %q", ErrCigarCount, cigar[i:])
	}
	op = cigar[j]
	switch op {
	case 'M', 'I', 'D':
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrCigarOp, string(op))
	}
	return run, op, j + 1, nil
}
