package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aglyzov/go-bintrie/bintrie"
	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	logLevel  string
	numPoints int
	seed      int64
	box       []uint
	near      []uint
)

var rootCmd = &cobra.Command{
	Use:   "example",
	Short: "Index random points by Morton code and query them",
	RunE: func(cmd *cobra.Command, args []string) error {
		initLogger()
		dumpFlags(cmd.Flags())

		return run()
	},
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.InfoLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func dumpFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		log.WithField("value", f.Value.String()).Debugf("flag %s", f.Name)
	})
}

func initFlags() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warning, error")
	rootCmd.Flags().IntVar(&numPoints, "points", 100_000, "number of random points to index")
	rootCmd.Flags().Int64Var(&seed, "seed", 1234567890, "random seed")
	rootCmd.Flags().UintSliceVar(&box, "box", []uint{1000, 1000, 3000, 2000}, "query box: min-x,min-y,max-x,max-y")
	rootCmd.Flags().UintSliceVar(&near, "near", []uint{32768, 32768}, "nearest neighbour query point: x,y")
}

func main() {
	initFlags()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	if len(box) != 4 {
		return fmt.Errorf("--box needs 4 values, got %d", len(box))
	}
	if len(near) != 2 {
		return fmt.Errorf("--near needs 2 values, got %d", len(near))
	}
	if numPoints <= 0 || numPoints > int(bintrie.MaxItem) {
		return fmt.Errorf("--points out of range: %d", numPoints)
	}

	var (
		fake   = gofakeit.New(seed)
		points = make(Points, numPoints)
	)

	for i := range points {
		points[i] = Point{fake.Uint16(), fake.Uint16()}
	}

	start := time.Now()
	index, dropped := NewIndex(points, bintrie.WithNodeCapacity(numPoints/4))

	log.WithFields(log.Fields{
		"points":  numPoints,
		"dropped": dropped,
		"elapsed": time.Since(start),
	}).Info("index built")
	log.Debug(index.trie.Stats())

	query := Box{
		Min: Point{uint16(box[0]), uint16(box[1])},
		Max: Point{uint16(box[2]), uint16(box[3])},
	}

	start = time.Now()
	found := index.Within(query)

	log.WithFields(log.Fields{
		"found":   len(found),
		"elapsed": time.Since(start),
	}).Info("box query")

	var brute int

	for _, p := range points {
		if query.Contains(p) {
			brute++
		}
	}

	// dropped duplicates are invisible to the index
	if len(found) > brute {
		return fmt.Errorf("box query found %d points, brute force %d", len(found), brute)
	}

	for _, id := range found {
		fmt.Printf("%d\t%d\t%d\n", id, points[id].X, points[id].Y)
	}

	target := Point{uint16(near[0]), uint16(near[1])}

	if id, ok := index.Nearest(target); ok {
		log.WithFields(log.Fields{
			"id": id,
			"x":  points[id].X,
			"y":  points[id].Y,
		}).Info("nearest point")
	}

	return nil
}
