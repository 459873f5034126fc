// Command satcore reads a DIMACS CNF file and reports whether it is
// satisfiable, printing a model when it is.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/tannerwright/satcore/internal/cdcl"
	"github.com/tannerwright/satcore/internal/dimacs"
)

type config struct {
	Instance string `arg:"positional,required" help:"DIMACS CNF file to solve"`
	Gzip     bool   `arg:"-z,--gzip" help:"the instance file is gzip-compressed"`
	Verbose  bool   `arg:"-v,--verbose" help:"dump search statistics in full after solving"`
	CPUProf  string `arg:"--cpuprof" help:"write a pprof CPU profile to this path"`
	MemProf  string `arg:"--memprof" help:"write a pprof heap profile to this path"`
}

func (config) Description() string {
	return "satcore solves a DIMACS CNF instance with a CDCL search."
}

func run(cfg *config) error {
	ins, vars, err := dimacs.Load(cfg.Instance, cfg.Gzip)
	if err != nil {
		return fmt.Errorf("could not load instance: %w", err)
	}

	fmt.Printf("c variables: %d\n", ins.NumVariables())

	t := time.Now()
	sol := ins.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec):    %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:     %d\n", sol.Stats.Decisions)
	fmt.Printf("c propagations:  %d\n", sol.Stats.Propagations)
	fmt.Printf("c backjumps:     %d\n", sol.Stats.Backjumps)
	fmt.Printf("c learnts:       %d\n", sol.Stats.Learnts)

	if cfg.Verbose {
		cdcl.DumpStats(sol.Stats)
	}

	if !sol.Satisfiable {
		fmt.Println("s UNSATISFIABLE")
		return nil
	}

	fmt.Println("s SATISFIABLE")
	printModel(sol, vars)
	return nil
}

// printModel prints the "v ..." line in original DIMACS numbering,
// terminated by the required trailing "0".
func printModel(sol cdcl.Solution, vars []cdcl.Var) {
	fmt.Print("v")
	for i, v := range vars {
		n := i + 1
		if !sol.Assignment[v] {
			n = -n
		}
		fmt.Print(" ", strconv.Itoa(n))
	}
	fmt.Println(" 0")
}

func main() {
	var cfg config
	arg.MustParse(&cfg)

	if cfg.CPUProf != "" {
		f, err := os.Create(cfg.CPUProf)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(&cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.MemProf != "" {
		f, err := os.Create(cfg.MemProf)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
