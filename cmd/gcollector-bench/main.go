// Command gcollector-bench drives an allocation workload against the
// collector and prints its counters.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/tangzhangming/novagc/gcollector"
)

var (
	objects   = flag.Int("objects", 2000, "number of objects to allocate")
	objSize   = flag.Int("size", 256, "bytes per object")
	rootEvery = flag.Int("root-every", 5, "flag every Nth object as a root")
	major     = flag.Bool("major", true, "force a major cycle after allocating")
	debug     = flag.Bool("debug", false, "enable collector diagnostics")
)

func main() {
	flag.Parse()

	fmt.Println("gcollector-bench")
	fmt.Printf("  objects=%d size=%d root-every=%d\n", *objects, *objSize, *rootEvery)

	col := gcollector.New(gcollector.WithDebug(*debug))
	defer col.Shutdown()

	start := time.Now()
	var prev uintptr
	for i := 0; i < *objects; i++ {
		isRoot := *rootEvery > 0 && i%*rootEvery == 0
		var parent uintptr
		if !isRoot && prev != 0 {
			parent = prev
		}

		addr, err := col.Malloc(*objSize, isRoot, parent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "allocate failed at object %d: %v\n", i, err)
			os.Exit(1)
		}
		if isRoot || rand.Intn(4) == 0 {
			prev = addr
		}
	}
	elapsed := time.Since(start)

	if *major {
		col.ForceCollect(true)
	}

	stats := col.Stats()
	fmt.Printf("  allocated in %s\n", elapsed)
	fmt.Printf("  young_gen_size=%d old_gen_size=%d collections=%d\n",
		stats.YoungGenSize, stats.OldGenSize, stats.CollectionsCount)
}
