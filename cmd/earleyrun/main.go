package main

import (
	"flag"
	"log"
	"strings"

	earley "github.com/clarete/earleygo"
	"github.com/clarete/earleygo/internal/ambig"
)

type args struct {
	n             *int
	withUnknown   *bool
	worklistOrder *string
	instrument    *bool
}

func readArgs() *args {
	a := &args{
		n:             flag.Int("n", 3, "Number of '1' tokens to feed the grammar"),
		withUnknown:   flag.Bool("with-unknown", false, "Add an always-blocked unknown-terminal alternative to the grammar"),
		worklistOrder: flag.String("worklist-order", "lifo", "Worklist pop order: 'lifo' or 'fifo'"),
		instrument:    flag.Bool("instrument", false, "Enable instrumentation and print the items-processed counter after the run"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	if *a.n < 0 {
		log.Fatal("-n must not be negative")
	}

	cfg := earley.DefaultConfig()
	cfg.SetString("engine.worklist_order", *a.worklistOrder)
	cfg.SetBool("engine.instrument", *a.instrument)

	g := ambig.Grammar{WithUnknown: *a.withUnknown}
	input := strings.Repeat("1", *a.n)

	fs, err := earley.RunWithConfig(ambig.E, input, *a.n, g.Oracles(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i <= *a.n; i++ {
		log.Printf("E completed at origin %d: %v", i, fs.Completed(i, ambig.E))
	}
	log.Printf("E spans [0,%d]: %v", *a.n, fs.CompletedSpan(0, *a.n, ambig.E))

	if *a.instrument {
		log.Printf("items processed: %d", fs.ItemsProcessed())
	}
}
