// Command ocpmstat is a thin CLI exercising pkg/ocpm end to end:
// discover a constraint set from a log fixture, check a golden set of
// arcs against one, or print a log's language abstraction.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/ocpm/declareminer/pkg/ocpm"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleDiscover() {
		return
	}
	if handleCheck() {
		return
	}
	if handleAbstract() {
		return
	}

	fmt.Fprintln(os.Stderr, "Unknown command. Run 'ocpmstat help' for usage.")
	os.Exit(1)
}

func handleHelp() bool {
	if len(os.Args) < 2 || os.Args[1] == "-help" || os.Args[1] == "--help" || os.Args[1] == "help" {
		fmt.Print(usage)
		return true
	}
	return false
}

const usage = `ocpmstat - object-centric process mining smoke-test CLI

Usage:
  ocpmstat discover <log.yaml> [options.yaml]
  ocpmstat check <log.yaml> <arcs.yaml> [threshold]
  ocpmstat abstract <log.yaml>
  ocpmstat help
`

// handleDiscover runs discovery over a fixture log and prints the
// resulting arc set in template notation.
func handleDiscover() bool {
	if len(os.Args) < 3 || os.Args[1] != "discover" {
		return false
	}
	logger := log.New(os.Stderr, "ocpmstat: ", 0)

	l, err := loadFixtureLog(os.Args[2])
	if err != nil {
		logger.Fatalf("loading log: %v", err)
	}

	opts := ocpm.DefaultDiscoveryOptions()
	if len(os.Args) > 3 {
		opts, err = ocpm.LoadDiscoveryOptionsYAML(os.Args[3])
		if err != nil {
			logger.Fatalf("loading discovery options: %v", err)
		}
	}

	arcs := ocpm.Discover(l, opts)
	printArcs(arcs)
	return true
}

// handleCheck loads a golden arc set and reports each arc's exact
// violation fraction and its pass/fail at the given noise threshold.
func handleCheck() bool {
	if len(os.Args) < 4 || os.Args[1] != "check" {
		return false
	}
	logger := log.New(os.Stderr, "ocpmstat: ", 0)

	l, err := loadFixtureLog(os.Args[2])
	if err != nil {
		logger.Fatalf("loading log: %v", err)
	}
	arcs, err := ocpm.LoadArcsYAML(os.Args[3])
	if err != nil {
		logger.Fatalf("loading arcs: %v", err)
	}

	threshold := 0.0
	if len(os.Args) > 4 {
		if _, err := fmt.Sscanf(os.Args[4], "%g", &threshold); err != nil {
			logger.Fatalf("parsing threshold: %v", err)
		}
	}

	for _, a := range arcs {
		frac := ocpm.FractionViolated(l, a)
		ok := ocpm.SatisfiedAtThreshold(l, a, threshold)
		status := statusString(ok)
		fmt.Printf("%-8s %-40s violated=%.3f\n", status, a.AsTemplateString(), frac)
	}
	return true
}

// handleAbstract prints a log's per-object-type abstraction families.
func handleAbstract() bool {
	if len(os.Args) < 3 || os.Args[1] != "abstract" {
		return false
	}
	logger := log.New(os.Stderr, "ocpmstat: ", 0)

	l, err := loadFixtureLog(os.Args[2])
	if err != nil {
		logger.Fatalf("loading log: %v", err)
	}

	abs := ocpm.AbstractLog(l)
	for _, ot := range abs.ObjectTypes() {
		sets := abs[ot]
		fmt.Printf("%s: start=%v end=%v related=%v divergent=%v convergent=%v deficient=%v optional=%v\n",
			ot, keys(sets.Start), keys(sets.End), keys(sets.Related), keys(sets.Divergent),
			keys(sets.Convergent), keys(sets.Deficient), keys(sets.Optional))
	}
	return true
}

func printArcs(arcs []ocpm.Arc) {
	colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	for _, a := range arcs {
		if colorize {
			fmt.Printf("\033[36m%s\033[0m\n", a.AsTemplateString())
		} else {
			fmt.Println(a.AsTemplateString())
		}
	}
}

func statusString(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
