// Command perft drives the kestrel move generator from the command
// line: given a FEN and a depth, it reports the node count and, with
// -divide, the per-root-move breakdown used to localize a discrepancy
// against a reference engine.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/kestrelchess/kestrel"
	logging "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

var cliLog = logging.MustGetLogger("kestrel/cmd/perft")

func main() {
	fen := flag.String("fen", kestrel.StartFEN, "FEN of the position to run perft from")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "report per-root-move node counts instead of just the total")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("kestrel: cannot create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("kestrel: cannot start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	pos, err := kestrel.FromFEN(*fen)
	if err != nil {
		log.Fatalf("kestrel: invalid FEN %q: %v", *fen, err)
	}

	cliLog.Infof("running perft to depth %d from %q", *depth, *fen)
	start := time.Now()

	if *divide {
		counts := kestrel.Divide(pos, *depth)
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		var total uint64
		for _, m := range moves {
			out.Printf("%s: %d\n", m, counts[m])
			total += counts[m]
		}
		report(total, time.Since(start))
		return
	}

	nodes := kestrel.Perft(pos, *depth)
	report(nodes, time.Since(start))
}

func report(nodes uint64, elapsed time.Duration) {
	var nps float64
	if elapsed > 0 {
		nps = float64(nodes) / elapsed.Seconds()
	}
	out.Printf("nodes: %d\n", nodes)
	out.Printf("time: %s\n", elapsed)
	out.Printf("nodes/sec: %.0f\n", nps)
}
