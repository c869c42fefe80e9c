package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/water/cmd/graph/templates"
	"github.com/delaneyj/water/reactive"
	"github.com/delaneyj/water/water"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	outKey   = "out"
	stopKey  = "stop"
	quietKey = "quiet"
)

func main() {
	cmd := &cli.Command{
		Name:  "graph",
		Usage: "Render the dependency registries of a demo app as Graphviz DOT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  outKey,
				Usage: "DOT output file, stdout when empty",
			},
			&cli.StringSliceFlag{
				Name:  stopKey,
				Usage: "Stop the named effects before taking the snapshot",
			},
			&cli.BoolFlag{
				Name:  quietKey,
				Usage: "Skip the summary table",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Graph for water started !")
	defer func() {
		log.Printf("Graph for water finished in %v", time.Since(start))
	}()

	rs := water.CreateReactiveSystem()
	runners := buildDemo(rs)

	for _, name := range cmd.StringSlice(stopKey) {
		stop, ok := runners[name]
		if !ok {
			return fmt.Errorf("unknown effect %q", name)
		}
		stop()
	}

	snap := rs.Snapshot()
	if !cmd.Bool(quietKey) {
		renderSummary(os.Stderr, snap)
	}

	out := io.Writer(os.Stdout)
	if path := cmd.String(outKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}
	templates.WriteDot(out, "water", snap)

	return nil
}

// buildDemo wires a small todo app and returns its effects' stop functions
// by name.
func buildDemo(rs *water.ReactiveSystem) map[string]func() {
	todos := reactive.NewRecord(rs, "todos")
	todos.Set("write docs", false)
	todos.Set("ship", false)
	filter := reactive.Named(rs, "filter", "all")

	list := water.DefEffect(rs, func() string {
		var shown []string
		for _, name := range todos.Keys() {
			done, _ := todos.Get(name).(bool)
			switch filter.Get() {
			case "done":
				if !done {
					continue
				}
			case "open":
				if done {
					continue
				}
			}
			shown = append(shown, name)
		}
		return strings.Join(shown, ", ")
	}, water.WithName("list"))

	counter := water.DefEffect(rs, func() int {
		return todos.Len()
	}, water.WithName("counter"))

	ship := water.DefEffect(rs, func() bool {
		done, _ := todos.Get("ship").(bool)
		return done
	}, water.WithName("ship status"))

	return map[string]func(){
		"list":        list.Stop,
		"counter":     counter.Stop,
		"ship status": ship.Stop,
	}
}

func renderSummary(w io.Writer, snap water.Snapshot) {
	tbl := table.NewWriter()
	tbl.SetTitle("water registries")
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"reactor", "key", "effects"})

	for _, entry := range snap.Entries {
		names := make([]string, 0, len(entry.Effects))
		for _, e := range entry.Effects {
			names = append(names, e.Name)
		}
		key := "*"
		if entry.Keyed {
			key = entry.Key
		}
		tbl.AppendRow(table.Row{entry.Reactor, key, strings.Join(names, ", ")})
	}
	tbl.Render()
}
