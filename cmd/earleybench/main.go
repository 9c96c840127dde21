package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	earley "github.com/clarete/earleygo"
	"github.com/clarete/earleygo/internal/ambig"
)

type args struct {
	maxN   *int
	step   *int
	trials *int
}

func readArgs() *args {
	a := &args{
		maxN:   flag.Int("max-n", 200, "Largest input size to measure"),
		step:   flag.Int("step", 20, "Input size increment between rows"),
		trials: flag.Int("trials", 3, "Number of runs averaged per row"),
	}
	flag.Parse()
	return a
}

// run measures one size, averaging wall-clock time across trials and
// reporting the item count instrumented by the final trial (the counters
// are deterministic across trials run against the same config).
func run(n, trials int) (time.Duration, int) {
	cfg := earley.DefaultConfig()
	cfg.SetBool("engine.instrument", true)
	g := ambig.Grammar{}
	input := strings.Repeat("1", n)

	var total time.Duration
	var items int
	for i := 0; i < trials; i++ {
		start := time.Now()
		fs, err := earley.RunWithConfig(ambig.E, input, n, g.Oracles(), cfg)
		total += time.Since(start)
		if err != nil {
			log.Fatal(err)
		}
		items = fs.ItemsProcessed()
	}
	return total / time.Duration(trials), items
}

func main() {
	a := readArgs()

	if *a.maxN <= 0 || *a.step <= 0 || *a.trials <= 0 {
		log.Fatal("-max-n, -step and -trials must all be positive")
	}

	fmt.Println("n\titems\tns/op\titems/n^2")
	for n := *a.step; n <= *a.maxN; n += *a.step {
		elapsed, items := run(n, *a.trials)
		ratio := float64(items) / float64(n*n)
		fmt.Printf("%d\t%d\t%d\t%.3f\n", n, items, elapsed.Nanoseconds(), ratio)
	}
}
