package main

import (
	"bytedata/pkg/common"
	"bytedata/pkg/config"
	"bytedata/pkg/core"
	"bytedata/pkg/monitor"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	dataPath   string
	reprs      string
	snapshot   string
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("bytedata", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to YAML config (default: configs/bytedata.yaml, bytedata.yaml)")
	fs.StringVarP(&opts.dataPath, "data", "d", "", "input file, one signed byte per line")
	fs.StringVarP(&opts.reprs, "repr", "r", "", "comma separated representations (array,list,btree)")
	fs.StringVar(&opts.snapshot, "snapshot", "", "SQLite file receiving the sorted values")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: bytedata [flags] <value-to-search>")
		fmt.Fprintln(stderr, "The value is a signed byte; negative values are accepted as is, e.g. bytedata -45")
		fs.PrintDefaults()
	}
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)

	if err := fs.Parse(keyLast(fs, args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.Usage()
		return 2
	}

	key, err := common.ParseKey(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.Usage()
		return 1
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "[Config] %v\n", err)
		return 1
	}
	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}
	if opts.reprs != "" {
		cfg.Run.Representations = strings.Split(opts.reprs, ",")
	}
	if opts.snapshot != "" {
		cfg.Snapshot.Path = opts.snapshot
	}

	logger := log.New(stderr, "", log.LstdFlags)
	runner := core.NewRunner(cfg, monitor.NewConsoleReporter(stdout), logger)
	if err := runner.Run(key); err != nil {
		logger.Printf("[Runner] %v", err)
		return 1
	}
	return 0
}

// keyLast moves positional arguments, including negative numbers that pflag
// would otherwise read as shorthand flags, behind a "--" terminator.
func keyLast(fs *pflag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNumber(a):
			positional = append(positional, a)
		case len(a) > 1 && a[0] == '-':
			flags = append(flags, a)
			if takesValue(fs, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, a)
		}
	}
	return append(append(flags, "--"), positional...)
}

func isNumber(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// takesValue reports whether a flag token without an inline value consumes
// the next argument.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(a, "--"):
		f = fs.Lookup(a[2:])
	case len(a) == 2:
		f = fs.ShorthandLookup(a[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
