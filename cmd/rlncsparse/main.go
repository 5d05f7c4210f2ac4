// Command rlncsparse measures a sparse-coding working set under repeated
// random loss and replenishment, printing the per-step wasted/blockcount/
// replenished series as a single RESULT line, matching sparse/rnc.cpp.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avisegradi/rnc-lib/coding"
	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/prng"
	"github.com/avisegradi/rnc-lib/sim"
	"github.com/avisegradi/rnc-lib/source"
)

const maxSteps = 50

func usage() {
	fmt.Fprintf(os.Stderr,
		"usage: %s <input filename> <N> <A> <T> <R> <F> <id>\n", os.Args[0])
	os.Exit(1)
}

func main() {
	fs := flag.NewFlagSet("rlncsparse", flag.ExitOnError)
	fs.Parse(os.Args[1:])
	args := fs.Args()
	if len(args) < 7 {
		usage()
	}

	fname := args[0]
	n := mustAtoi(args[1])
	a := mustAtof(args[2])
	t := mustAtoi(args[3])
	r := mustAtoi(args[4])
	f := mustAtof(args[5])
	id := args[6]

	src, err := source.LoadPadded(fname, n)
	if err != nil {
		log.Fatalf("%v", err)
	}
	blocks := src.InitialBlocks()

	s := prng.NewMathRand(uint32(time.Now().UnixNano()))

	pool := coding.New(n, true)
	if _, err := sim.Replenish(blocks, pool, n, t, r, a, s); err != nil {
		log.Fatalf("%v", err)
	}

	var wasted, blockcount, replenished [maxSteps]int
	deadAt := -1
	for i := 0; i < maxSteps; i++ {
		pool.RandomDropMany(f, pool.Count(), s)
		cntAfterDrop := pool.Count()

		w, rerr := sim.Replenish(pool, pool, n, t, r, a, s)
		blockcount[i] = pool.Count()
		replenished[i] = pool.Count() - cntAfterDrop

		if rerr != nil {
			deadAt = i
			break
		}
		wasted[i] = w
	}

	printResult(id, fname, n, a, t, r, f, deadAt, wasted[:], blockcount[:], replenished[:])
}

func printResult(id, fname string, n int, a float64, t, r int, f float64,
	deadAt int, wasted, blockcount, replenished []int) {

	fmt.Printf("RESULT %s %s %d %d %g %d %d %g ", id, fname, field.Q, n, a, t, r, f)
	if deadAt < 0 {
		fmt.Print("NULL ")
		deadAt = maxSteps
	} else {
		fmt.Printf("%d ", deadAt)
	}

	fmt.Print(formatSeries(wasted, deadAt))
	fmt.Print(" ")
	fmt.Print(formatSeries(blockcount, deadAt))
	fmt.Print(" ")
	fmt.Print(formatSeries(replenished, deadAt))
	fmt.Println()
}

func formatSeries(arr []int, nullsFrom int) string {
	parts := make([]string, len(arr))
	for i, v := range arr {
		if i < nullsFrom {
			parts[i] = fmt.Sprintf("%04d", v)
		} else {
			parts[i] = "NULL"
		}
	}
	return strings.Join(parts, ";")
}

func mustAtoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid integer %q: %v", s, err)
	}
	return v
}

func mustAtof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid float %q: %v", s, err)
	}
	return v
}
