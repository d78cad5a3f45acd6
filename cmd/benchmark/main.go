package main

import (
	"bytedata/pkg/common"
	"bytedata/pkg/core"
	"bytedata/pkg/storage"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		n       int
		outName string
		seed    int64
		degree  int
	)
	fs := pflag.NewFlagSet("benchmark", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&n, "size", "n", 1000, "number of values to generate")
	fs.StringVarP(&outName, "out", "o", "", "write the generated values to this file")
	fs.Int64Var(&seed, "seed", 42, "random seed")
	fs.IntVar(&degree, "tree-degree", 32, "B-tree degree")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger := log.New(stderr, "", log.LstdFlags)
	if n < 0 {
		logger.Printf("size must not be negative, got %d", n)
		return 1
	}

	rng := rand.New(rand.NewSource(seed))
	values := make([]common.Value, n)
	for i := range values {
		values[i] = common.Value(rng.Intn(256) - 128)
	}
	var key common.Value
	if n > 0 {
		key = values[rng.Intn(n)]
	}

	if outName != "" {
		if err := storage.SaveValues(outName, values); err != nil {
			logger.Printf("write %s: %v", outName, err)
			return 1
		}
		logger.Printf("wrote %d values to %s", n, outName)
	}

	fmt.Fprintf(stdout, "Representation Benchmark (N=%d, key=%d)\n", n, key)
	fmt.Fprintln(stdout, "---------------------------------------------------")

	for _, kind := range []string{core.KindArray, core.KindList, core.KindTree} {
		start := time.Now()
		seq, err := core.NewSequence(kind, values, core.SequenceOptions{TreeDegree: degree})
		if err != nil {
			logger.Printf("build %s: %v", kind, err)
			return 1
		}
		build := time.Since(start)

		start = time.Now()
		core.Search(seq, key)
		linear := time.Since(start)

		start = time.Now()
		seq.Sort()
		sortTime := time.Since(start)

		start = time.Now()
		idx, found := core.Search(seq, key)
		binary := time.Since(start)

		fmt.Fprintf(stdout, ">> %-6s build %v | linear search %v | sort %v | binary search %v (idx=%d found=%v)\n",
			kind, build, linear, sortTime, binary, idx, found)
	}
	return 0
}
