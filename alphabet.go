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

// chrmap4bit maps ascii to a 4-bit nucleotide code where each bit flags
// membership of one of A, C, G, T:
//
//	Aa:  1  0001    Rr:  5  0101    Ww:  9  1001    Dd: 13  1101
//	Cc:  2  0010    Ss:  6  0110    Yy: 10  1010    Bb: 14  1110
//	Mm:  3  0011    Vv:  7  0111    Hh: 11  1011    Nn: 15  1111
//	Gg:  4  0100    Tt:  8  1000    Kk: 12  1100
//	                Uu:  8  1000
//
// Two codes x and y denote compatible bases iff x&y != 0.
// Any other byte maps to 0 and is compatible with nothing.
var chrmap4bit [256]uint8

func init() {
	for code, symbols := range []string{
		"", "Aa", "Cc", "Mm", "Gg", "Rr", "Ss", "Vv",
		"TtUu", "Ww", "Yy", "Hh", "Kk", "Dd", "Bb", "Nn",
	} {
		for _, c := range symbols {
			chrmap4bit[c] = uint8(code)
		}
	}
}

// Code returns the 4-bit nucleotide code for an ascii byte.
func Code(c byte) uint8 { return chrmap4bit[c] }

// codeN is the 4-bit code for 'N' or 'n'.
const codeN = 15

// ambiguous4bit flags the codes that do not denote exactly one of A, C, G, T.
var ambiguous4bit = [16]bool{
	true,  // 0: gap or invalid
	false, // 1: A
	false, // 2: C
	true,  // 3: M
	false, // 4: G
	true,  // 5: R
	true,  // 6: S
	true,  // 7: V
	false, // 8: T/U
	true,  // 9: W
	true,  // 10: Y
	true,  // 11: H
	true,  // 12: K
	true,  // 13: D
	true,  // 14: B
	true,  // 15: N
}

// IsAmbiguous reports whether a 4-bit code is ambiguous, i.e. does not denote
// exactly one of A, C, G or T.
func IsAmbiguous(code uint8) bool { return ambiguous4bit[code&0x0f] }
