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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	want := map[byte]uint8{
		'A': 1, 'C': 2, 'M': 3, 'G': 4, 'R': 5, 'S': 6, 'V': 7,
		'T': 8, 'U': 8, 'W': 9, 'Y': 10, 'H': 11, 'K': 12, 'D': 13,
		'B': 14, 'N': 15,
	}
	for c, code := range want {
		assert.Equal(t, code, Code(c), "%c", c)
		assert.Equal(t, code, Code(c+'a'-'A'), "%c lowercase", c)
	}

	// everything else is the gap/invalid code
	assert.Equal(t, uint8(0), Code('-'))
	assert.Equal(t, uint8(0), Code('.'))
	assert.Equal(t, uint8(0), Code('X'))
	assert.Equal(t, uint8(0), Code(0))
	assert.Equal(t, uint8(0), Code(255))
}

func TestCompatibility(t *testing.T) {
	// two codes denote compatible bases iff they share a bit
	assert.NotZero(t, Code('N')&Code('A'))
	assert.NotZero(t, Code('Y')&Code('C'))
	assert.NotZero(t, Code('Y')&Code('T'))
	assert.NotZero(t, Code('R')&Code('G'))
	assert.Zero(t, Code('Y')&Code('A'))
	assert.Zero(t, Code('Y')&Code('G'))
	assert.Zero(t, Code('B')&Code('A'))
	assert.Zero(t, Code('-')&Code('N'))
}

func TestIsAmbiguous(t *testing.T) {
	for _, c := range []byte("ACGTU") {
		assert.False(t, IsAmbiguous(Code(c)), "%c", c)
	}
	for _, c := range []byte("MRSVWYHKDBN-") {
		assert.True(t, IsAmbiguous(Code(c)), "%c", c)
	}
}

func TestScoreMatrix(t *testing.T) {
	t.Run("default policy", func(t *testing.T) {
		algn := New(Uniform(2, -4, 4, 2), DefaultOptions)
		defer RecycleAligner(algn)

		// symmetry
		for r := 0; r < 16; r++ {
			for c := 0; c < 16; c++ {
				assert.Equal(t, algn.scorematrix[c][r], algn.scorematrix[r][c])
			}
		}

		assert.Equal(t, int64(2), algn.subst('A', 'A'))
		assert.Equal(t, int64(2), algn.subst('t', 'U'))
		assert.Equal(t, int64(-4), algn.subst('A', 'C'))
		assert.Equal(t, int64(0), algn.subst('A', 'N'))
		assert.Equal(t, int64(0), algn.subst('R', 'G'))
		assert.Equal(t, int64(0), algn.subst('A', '-'))
	})

	t.Run("N as mismatch", func(t *testing.T) {
		algn := New(Uniform(2, -4, 4, 2), &Options{NAsMismatch: true})
		defer RecycleAligner(algn)

		for c := 0; c < 16; c++ {
			assert.Equal(t, int64(-4), algn.scorematrix[codeN][c])
			assert.Equal(t, int64(-4), algn.scorematrix[c][codeN])
		}
		// other ambiguity codes stay neutral
		assert.Equal(t, int64(0), algn.subst('R', 'G'))
	})
}
