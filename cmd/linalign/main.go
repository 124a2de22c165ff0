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

// Command linalign aligns sequence pairs from two FASTA files with the
// linear-memory global aligner and reports the CIGAR and statistics of
// each pair.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/torognes/linalign"
)

var (
	match       int64
	mismatch    int64
	gapOpen     int64
	gapOpenEnds int64
	gapExt      int64
	gapExtEnds  int64
	nMismatch   bool
	showAln     bool
	pprofCPU    bool
	pprofMem    bool
)

var rootCmd = &cobra.Command{
	Use:   "linalign <queries.fasta> <targets.fasta>",
	Short: "Global alignment of sequence pairs in linear memory",
	Long: `Global alignment of sequence pairs in linear memory.

Sequences are read from two FASTA files and aligned pairwise by rank: the
first query against the first target, the second against the second, and so
on up to the shorter file. For each pair the CIGAR string, the alignment
score and the alignment statistics are printed. When more than one pair is
aligned, a summary of the pairwise identities follows.

Gap penalties are affine and position dependent: the interior penalties
apply to gaps inside the alignment, the end penalties to gaps touching
either end of either sequence.
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if pprofCPU {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		} else if pprofMem {
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		}

		queries, err := readFasta(args[0])
		if err != nil {
			return err
		}
		targets, err := readFasta(args[1])
		if err != nil {
			return err
		}

		n := min(len(queries), len(targets))
		if n == 0 {
			return fmt.Errorf("no sequence pairs to align")
		}

		scoring := &linalign.Scoring{Match: match, Mismatch: mismatch}
		for _, s := range []linalign.GapSeq{linalign.InQuery, linalign.InTarget} {
			scoring.GapOpen[s] = [3]int64{gapOpenEnds, gapOpen, gapOpenEnds}
			scoring.GapExt[s] = [3]int64{gapExtEnds, gapExt, gapExtEnds}
		}

		algn := linalign.New(scoring, &linalign.Options{NAsMismatch: nMismatch})
		defer linalign.RecycleAligner(algn)

		outfh := bufio.NewWriter(os.Stdout)
		defer outfh.Flush()

		identities := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			a, b := queries[i], targets[i]

			cigar := algn.Align(a, b)
			st, err := algn.AlignStats(cigar, a, b)
			if err != nil {
				return err
			}

			fmt.Fprintf(outfh, "pair %d\tcigar %s\n", i+1, cigar)
			fmt.Fprintf(outfh, "pair %d\tscore %d, length %d, matches %d, mismatches %d, gaps %d\n",
				i+1, st.Score, st.Length, st.Matches, st.Mismatches, st.Gaps)

			if showAln {
				rowA, bar, rowB, err := algn.AlignmentText(cigar, a, b)
				if err != nil {
					return err
				}
				fmt.Fprintf(outfh, "query   %s\n        %s\ntarget  %s\n", rowA, bar, rowB)
			}

			if st.Length > 0 {
				identities = append(identities, float64(st.Matches)/float64(st.Length))
			}
		}

		if len(identities) > 1 {
			mean, std := stat.MeanStdDev(identities, nil)
			fmt.Fprintf(outfh, "pairs %d\tidentity mean %.4f, sd %.4f\n", len(identities), mean, std)
		}

		return nil
	},
}

func init() {
	rootCmd.Flags().Int64Var(&match, "match", 2, "score for a match")
	rootCmd.Flags().Int64Var(&mismatch, "mismatch", -4, "score for a mismatch")
	rootCmd.Flags().Int64Var(&gapOpen, "gapopen", 20, "interior gap open penalty")
	rootCmd.Flags().Int64Var(&gapOpenEnds, "gapopen-ends", 2, "end gap open penalty")
	rootCmd.Flags().Int64Var(&gapExt, "gapext", 2, "interior gap extension penalty")
	rootCmd.Flags().Int64Var(&gapExtEnds, "gapext-ends", 1, "end gap extension penalty")
	rootCmd.Flags().BoolVar(&nMismatch, "n-mismatch", false, "score alignments with N as mismatch")
	rootCmd.Flags().BoolVar(&showAln, "aln", false, "print the alignment text")
	rootCmd.Flags().BoolVar(&pprofCPU, "profile-cpu", false, "write a cpu profile. go tool pprof -http=:8080 cpu.pprof")
	rootCmd.Flags().BoolVar(&pprofMem, "profile-mem", false, "write a mem profile. go tool pprof -http=:8080 mem.pprof")
}

func readFasta(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var seqs [][]byte
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		raw := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			raw[i] = byte(l)
		}
		seqs = append(seqs, raw)
	}
	if sc.Error() != nil {
		return nil, fmt.Errorf("%s: %w", path, sc.Error())
	}
	return seqs, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
