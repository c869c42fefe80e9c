package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/water/reactive"
	"github.com/delaneyj/water/water"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
	widthsKey  = "width"
	heightsKey = "height"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure write propagation through chains of water effects",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Writes measured per graph",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.IntSliceFlag{
				Name:  widthsKey,
				Usage: "Number of parallel chains",
				Value: []int64{1, 10, 100, 1_000},
			},
			&cli.IntSliceFlag{
				Name:  heightsKey,
				Usage: "Number of effects per chain",
				Value: []int64{1, 10, 100, 1_000},
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(cmd.IntSlice(widthsKey), cmd.IntSlice(heightsKey), int(cmd.Int(itersKey)), false)

	benchmarkPropagate(cmd.IntSlice(widthsKey), cmd.IntSlice(heightsKey), int(cmd.Int(itersKey)), true)
	return nil
}

// buildChains links w chains of h effects behind src. Each effect copies its
// input plus one into the next ref; the last one only reads.
func buildChains(rs *water.ReactiveSystem, src *reactive.Ref[int], w, h int) {
	for i := 0; i < w; i++ {
		last := src
		for j := 0; j < h; j++ {
			prev, next := last, reactive.NewRef(rs, 0)
			water.DefEffect(rs, func() int {
				v := prev.Get() + 1
				next.Set(v)
				return v
			})
			last = next
		}

		water.DefEffect(rs, func() int {
			return last.Get()
		})
	}
}

func benchmarkPropagate(ww, hh []int64, iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("water effects")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := water.CreateReactiveSystem()
			src := reactive.NewRef(rs, 1)
			buildChains(rs, src, int(w), int(h))

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
