// Command rlncsim is the plain encoder/decoder driver: it codes a file
// against a random invertible N x N coefficient matrix (mode c) or decodes
// a previously coded file given that matrix (mode d), matching
// original/rnc.cpp's usage and printed diagnostics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/internal/prof"
	"github.com/avisegradi/rnc-lib/matrix"
	"github.com/avisegradi/rnc-lib/prng"
	"github.com/avisegradi/rnc-lib/source"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <input filename> <N> <ncpus> <blocksize> <c|d> <id>\n", os.Args[0])
	os.Exit(1)
}

func main() {
	fs := flag.NewFlagSet("rlncsim", flag.ExitOnError)
	fs.Parse(os.Args[1:])
	args := fs.Args()
	if len(args) < 6 {
		usage()
	}

	fname := args[0]
	n, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("invalid N: %v", err)
	}
	ncpus, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalf("invalid ncpus: %v", err)
	}
	blockSize, err := strconv.Atoi(args[3])
	if err != nil {
		log.Fatalf("invalid blocksize: %v", err)
	}
	mode := args[4]
	id := args[5]

	if mode != "c" && mode != "d" {
		log.Fatalf("invalid mode specified")
	}

	matrix.SetNCPUS(ncpus)
	matrix.SetBlockSize(blockSize)

	fout := fname + "_out_" + id
	fdec := fname + "_decoded_" + id
	fmatr := fname + "_matr_" + id

	switch mode {
	case "c":
		runEncode(fname, fout, fmatr, n, ncpus, blockSize)
	case "d":
		runDecode(fname, fout, fdec, fmatr, n, ncpus, blockSize)
	}
}

func runEncode(fname, fout, fmatr string, n, ncpus, blockSize int) {
	fmt.Printf("MEM file=%s mode=c q=%d N=%d CPUs=%d BS=%d ", fname, field.Q, n, ncpus, blockSize)

	s := prng.NewMathRand(uint32(time.Now().UnixNano()))
	c := matrix.New(n, n)
	inv := matrix.New(n, n)
	sing := 0
	begin := time.Now()
	for {
		sing++
		matrix.RandDense(c, s)
		ok, err := matrix.Invert(c.Clone(), inv)
		if err != nil {
			log.Fatalf("invert: %v", err)
		}
		if ok {
			break
		}
	}
	prof.Track(begin, "matrgen")

	src, err := source.LoadExact(fname, n)
	if err != nil {
		log.Fatalf("%v", err)
	}

	coded := matrix.New(n, src.Data.NCols)
	begin = time.Now()
	if err := matrix.PMul(c, src.Data, coded); err != nil {
		log.Fatalf("pmul: %v", err)
	}
	dur := time.Since(begin)
	prof.Track(begin, "encode")

	entries := prof.SnapshotAndReset()
	fmt.Printf("matrgen=%s ", entries[0].Dur)
	fmt.Printf("t=%s tp=%.4fMB/s\n", dur, megabytesPerSec(src.OrigByteSize, dur))

	if err := source.SaveMatrix(c, fmatr); err != nil {
		log.Fatalf("%v", err)
	}
	codedSrc := &source.Source{Data: coded, OrigByteSize: src.OrigByteSize}
	if err := codedSrc.Save(fout); err != nil {
		log.Fatalf("%v", err)
	}

	if sing > 1 {
		fmt.Printf("# Singular matrices generated: %d\n", sing-1)
	}
	fmt.Printf("digest=%s\n", digestOf(fout))
}

func runDecode(fname, fout, fdec, fmatr string, n, ncpus, blockSize int) {
	fmt.Printf("MEM file=%s mode=d q=%d N=%d CPUs=%d BS=%d ", fname, field.Q, n, ncpus, blockSize)

	c, err := source.LoadMatrix(fmatr, n, n)
	if err != nil {
		log.Fatalf("%v", err)
	}
	coded, err := source.LoadExact(fout, n)
	if err != nil {
		log.Fatalf("%v", err)
	}

	inv := matrix.New(n, n)
	begin := time.Now()
	ok, err := matrix.Invert(c.Clone(), inv)
	if err != nil {
		log.Fatalf("invert: %v", err)
	}
	if !ok {
		log.Fatalf("Generated matrix was singular.")
	}
	invDur := time.Since(begin)

	decoded := matrix.New(n, coded.Data.NCols)
	begin = time.Now()
	if err := matrix.PMul(inv, coded.Data, decoded); err != nil {
		log.Fatalf("pmul: %v", err)
	}
	dur := time.Since(begin)

	fmt.Printf("matrinv=%s ", invDur)
	fmt.Printf("t=%s tp=%.4fMB/s\n", dur, megabytesPerSec(coded.OrigByteSize, dur))

	decodedSrc := &source.Source{Data: decoded, OrigByteSize: coded.OrigByteSize}
	if err := decodedSrc.Save(fdec); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("digest=%s\n", digestOf(fdec))
}

func megabytesPerSec(bytes int, dur time.Duration) float64 {
	secs := dur.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(bytes) / (1 << 20) / secs
}

func digestOf(path string) string {
	buf, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return source.Digest(buf)
}
