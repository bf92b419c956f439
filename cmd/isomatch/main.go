// main.go — isomatch command line interface.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/plan-systems/klog"
	"github.com/timtadh/getopt"

	"github.com/isomatch/isomatch/graph"
	"github.com/isomatch/isomatch/load"
	"github.com/isomatch/isomatch/mapstore"
	"github.com/isomatch/isomatch/match"
	"github.com/isomatch/isomatch/pattern"
)

var errorCodes = map[string]int{
	"usage":    0,
	"run":      1,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
}

const usageMessage = "isomatch --help"

const extendedMessage = `
isomatch - count and enumerate subgraph isomorphisms

$ isomatch (-t <csv> | -p <expr>) (-w <csv> | --world-pattern <expr>) \
    [-c | -f] [options]

The template comes from exactly one of -t/-p, the world from exactly one
of -w/--world-pattern. CSV files carry a source,target,channel[,count]
header; pattern expressions read like "a -c1-> b -c1-> c; x -c2*3-> b".
Candidates are propagated to a fixpoint before counting or enumeration;
summary lines go to stderr, results to stdout.

Options
    -h, --help                view this message
    -t, --template=<csv>      template graph from a CSV edge list
    -p, --pattern=<expr>      template graph from a pattern expression
    -w, --world=<csv>         world graph from a CSV edge list
    --world-pattern=<expr>    world graph from a pattern expression
    -c, --count               count isomorphisms (the default)
    -f, --find                enumerate isomorphisms on stdout
    -e, --equivalence         count interchangeable template nodes as
                              groups instead of enumerating them
    --workers=<int>           parallel workers for counting (default 1)
    -o, --store=<dir>         with -f, persist mappings to a Badger
                              store instead of printing them
    --threshold=<float>       assignment filter cost tolerance (default 0)
    -v, --verbose             progress logging to stderr

Examples
    $ isomatch -p "a -c1-> b; b -c1-> c" -w world.csv
    $ isomatch -t template.csv -w world.csv -e --workers=4
    $ isomatch -p "hub -call-> leaf" -w calls.csv -f -o found.db
`

func usage(code int) {
	fmt.Fprintln(os.Stderr, usageMessage)
	if code == 0 {
		fmt.Fprintf(os.Stdout, "%s\n", extendedMessage)
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func parseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Expected an int got: %q\n", str)
		usage(errorCodes["badint"])
	}

	return i
}

func parseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Expected a float got: %q\n", str)
		usage(errorCodes["badfloat"])
	}

	return f
}

func initLogging(verbose bool) {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	if verbose {
		fset.Set("v", "2")
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hvcfet:p:w:o:",
		[]string{
			"help",
			"verbose",
			"count",
			"find",
			"equivalence",
			"template=",
			"pattern=",
			"world=",
			"world-pattern=",
			"workers=",
			"store=",
			"threshold=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(errorCodes["opts"])
	}

	var (
		templateCSV, templateExpr string
		worldCSV, worldExpr       string
		storeDir                  string
		countMode, findMode       bool
		useEquivalence, verbose   bool
		workers                   = 1
		threshold                 float64
		thresholdSet              bool
	)
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			usage(0)
		case "-v", "--verbose":
			verbose = true
		case "-c", "--count":
			countMode = true
		case "-f", "--find":
			findMode = true
		case "-e", "--equivalence":
			useEquivalence = true
		case "-t", "--template":
			templateCSV = oa.Arg()
		case "-p", "--pattern":
			templateExpr = oa.Arg()
		case "-w", "--world":
			worldCSV = oa.Arg()
		case "--world-pattern":
			worldExpr = oa.Arg()
		case "--workers":
			workers = parseInt(oa.Arg())
		case "-o", "--store":
			storeDir = oa.Arg()
		case "--threshold":
			threshold = parseFloat(oa.Arg())
			thresholdSet = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			usage(errorCodes["opts"])
		}
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "Unexpected arguments: %v\n", args)
		usage(errorCodes["opts"])
	}
	if (templateCSV != "") == (templateExpr != "") {
		fmt.Fprintln(os.Stderr, "You must supply the template through exactly one of -t or -p")
		usage(errorCodes["opts"])
	}
	if (worldCSV != "") == (worldExpr != "") {
		fmt.Fprintln(os.Stderr, "You must supply the world through exactly one of -w or --world-pattern")
		usage(errorCodes["opts"])
	}
	if countMode && findMode {
		fmt.Fprintln(os.Stderr, "-c and -f are exclusive")
		usage(errorCodes["opts"])
	}
	if useEquivalence && findMode {
		fmt.Fprintln(os.Stderr, "-e only applies to counting")
		usage(errorCodes["opts"])
	}
	if storeDir != "" && !findMode {
		fmt.Fprintln(os.Stderr, "-o requires -f")
		usage(errorCodes["opts"])
	}
	if workers < 1 {
		fmt.Fprintf(os.Stderr, "Expected a positive worker count, got %d\n", workers)
		usage(errorCodes["badint"])
	}

	initLogging(verbose)
	defer klog.Flush()

	tmplt, err := loadGraph(templateCSV, templateExpr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load the template: %v\n", err)

		return errorCodes["run"]
	}
	world, err := loadGraph(worldCSV, worldExpr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load the world: %v\n", err)

		return errorCodes["run"]
	}
	klog.Infof("template: %d nodes in %d channels; world: %d nodes",
		tmplt.NumNodes(), tmplt.NChannels(), world.NumNodes())

	popts := []match.Option{match.WithVerbose(verbose)}
	if thresholdSet {
		popts = append(popts, match.WithCostThreshold(threshold))
	}
	prob, err := match.NewProblem(tmplt, world, popts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not build the matching problem: %v\n", err)

		return errorCodes["run"]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	before := prob.CandidateCount()
	start := time.Now()
	if err = prob.Propagate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Propagation failed: %v\n", err)

		return errorCodes["run"]
	}
	klog.Infof("propagate: %d -> %d candidates in %v",
		before, prob.CandidateCount(), time.Since(start))

	if findMode {
		return runFind(ctx, prob, storeDir)
	}

	return runCount(ctx, prob, useEquivalence, workers, verbose)
}

// loadGraph resolves one graph source, CSV path or pattern expression.
func loadGraph(csvPath, expr string) (*graph.Graph, error) {
	if csvPath != "" {
		return load.LoadEdgeFile(csvPath)
	}

	return pattern.Parse(expr)
}

func runCount(ctx context.Context, prob *match.Problem, useEquivalence bool, workers int, verbose bool) int {
	opts := match.DefaultCountOptions()
	opts.UseEquivalence = useEquivalence
	opts.Workers = workers
	opts.Verbose = verbose

	start := time.Now()
	n, err := prob.CountIsomorphisms(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Counting failed: %v\n", err)

		return errorCodes["run"]
	}
	klog.Infof("count: %d isomorphisms in %v", n, time.Since(start))
	fmt.Println(n)

	return 0
}

func runFind(ctx context.Context, prob *match.Problem, storeDir string) int {
	start := time.Now()
	maps, err := prob.FindIsomorphisms(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Enumeration failed: %v\n", err)

		return errorCodes["run"]
	}
	klog.Infof("find: %d isomorphisms in %v", len(maps), time.Since(start))

	if storeDir == "" {
		for _, m := range maps {
			fmt.Println(formatMapping(m))
		}

		return 0
	}

	st, err := mapstore.Open(storeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open the store: %v\n", err)

		return errorCodes["run"]
	}
	if err = st.AppendAll(maps); err != nil {
		_ = st.Close()
		fmt.Fprintf(os.Stderr, "Could not store the mappings: %v\n", err)

		return errorCodes["run"]
	}
	if err = st.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Could not close the store: %v\n", err)

		return errorCodes["run"]
	}
	klog.Infof("stored %d mappings in %s", len(maps), storeDir)

	return 0
}

// formatMapping renders one mapping as "t0->w0 t1->w1", template nodes
// in name order.
func formatMapping(m match.Mapping) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteString("->")
		sb.WriteString(m[k])
	}

	return sb.String()
}
