package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/water/reactive"
	"github.com/delaneyj/water/water"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	configKey  = "config"
	repeatsKey = "repeats"
)

var defaultConfigs = []benchmarkTestConfig{
	{
		Name:       "single field",
		Records:    1,
		Fields:     1,
		Readers:    1,
		Iterations: 600_000,
	},
	{
		Name:       "wide record",
		Records:    1,
		Fields:     1_000,
		Readers:    2,
		Watchers:   1,
		Iterations: 100_000,
	},
	{
		Name:       "many records",
		Records:    1_000,
		Fields:     10,
		Readers:    1,
		Watchers:   1,
		Iterations: 100_000,
	},
	{
		Name:       "dense fan-out",
		Records:    10,
		Fields:     5,
		Readers:    100,
		Iterations: 10_000,
	},
	{
		Name:       "scheduled fan-out",
		Records:    10,
		Fields:     5,
		Readers:    100,
		Watchers:   10,
		Scheduled:  true,
		Iterations: 10_000,
	},
}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_reactor",
		Usage: "Measure keyed and whole-record fan-out of water triggers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file with a benchmarks list, replaces the built-in set",
			},
			&cli.IntFlag{
				Name:  repeatsKey,
				Usage: "Runs per config, the fastest is reported",
				Value: 5,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting reactor benchmark, please wait...")
	defer log.Print("Finished reactor benchmark")

	cfgs := defaultConfigs
	if path := cmd.String(configKey); path != "" {
		var err error
		if cfgs, err = loadConfigs(path); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "records", "fields", "readers", "watchers",
		"nTimes", "runs", "time", "runRate", "title",
	})

	testRepeats := int(cmd.Int(repeatsKey))
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.Name)

		// run once to warm up
		if _, err := runBenchmark(cfg); err != nil {
			return err
		}

		best := benchmarkResult{duration: time.Hour}
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.Name, i+1, testRepeats, (i+1)*100/testRepeats)
			result, err := runBenchmark(cfg)
			if err != nil {
				return err
			}
			if result.duration < best.duration {
				best = result
			}
		}

		runRate := float64(best.runs) / (float64(best.duration) / float64(time.Millisecond))

		table.Append([]string{
			cfg.Name,
			fmt.Sprint(cfg.Records),
			fmt.Sprint(cfg.Fields),
			fmt.Sprint(cfg.Readers),
			fmt.Sprint(cfg.Watchers),
			humanize.Comma(cfg.Iterations),
			humanize.Comma(best.runs),
			fmt.Sprint(best.duration),
			humanize.Comma(int64(runRate)),
			cfg.title(),
		})
	}
	table.Render()

	return nil
}

type benchmarkTestConfig struct {
	Name       string `yaml:"name"`       // friendly name for the test, should be unique
	Records    int    `yaml:"records"`    // number of records written round robin
	Fields     int    `yaml:"fields"`     // fields per record
	Readers    int    `yaml:"readers"`    // effects reading each field
	Watchers   int    `yaml:"watchers"`   // effects reading each record as a whole
	Scheduled  bool   `yaml:"scheduled"`  // notify a scheduler instead of re-running bodies
	Iterations int64  `yaml:"iterations"` // number of writes
}

func (cfg benchmarkTestConfig) title() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%dx%d fan-out %d", cfg.Records, cfg.Fields, cfg.Readers+cfg.Watchers))
	if cfg.Scheduled {
		sb.WriteString(" scheduled")
	}
	return sb.String()
}

func (cfg benchmarkTestConfig) validate() error {
	if cfg.Name == "" {
		return fmt.Errorf("benchmark config without name")
	}
	if cfg.Records < 1 || cfg.Fields < 1 {
		return fmt.Errorf("benchmark %q: records and fields must be positive", cfg.Name)
	}
	if cfg.Readers < 0 || cfg.Watchers < 0 || cfg.Iterations < 0 {
		return fmt.Errorf("benchmark %q: negative counts", cfg.Name)
	}
	return nil
}

// expectedRuns is what every write should notify: the field readers and the
// record watchers.
func (cfg benchmarkTestConfig) expectedRuns() int64 {
	return cfg.Iterations * int64(cfg.Readers+cfg.Watchers)
}

type benchmarkFile struct {
	Benchmarks []benchmarkTestConfig `yaml:"benchmarks"`
}

func loadConfigs(path string) ([]benchmarkTestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading benchmark config: %w", err)
	}
	var file benchmarkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing benchmark config %s: %w", path, err)
	}
	if len(file.Benchmarks) == 0 {
		return nil, fmt.Errorf("benchmark config %s has no benchmarks", path)
	}
	for _, cfg := range file.Benchmarks {
		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}
	return file.Benchmarks, nil
}

type benchmarkResult struct {
	runs     int64
	duration time.Duration
}

func runBenchmark(cfg benchmarkTestConfig) (benchmarkResult, error) {
	if err := cfg.validate(); err != nil {
		return benchmarkResult{}, err
	}

	rs := water.CreateReactiveSystem()
	records, fields := makeRecords(rs, cfg)

	runs := new(int64)
	var opts []water.EffectOption
	if cfg.Scheduled {
		opts = append(opts, water.WithScheduler(func() { *runs++ }))
	}

	for _, rec := range records {
		for _, field := range fields {
			for i := 0; i < cfg.Readers; i++ {
				water.DefEffect(rs, func() any {
					*runs++
					return rec.Get(field)
				}, opts...)
			}
		}
		for i := 0; i < cfg.Watchers; i++ {
			water.DefEffect(rs, func() int {
				*runs++
				return rec.Len()
			}, opts...)
		}
	}
	*runs = 0

	start := time.Now()
	for i := int64(0); i < cfg.Iterations; i++ {
		rec := records[i%int64(len(records))]
		rec.Set(fields[i%int64(len(fields))], i)
	}
	duration := time.Since(start)

	if *runs != cfg.expectedRuns() {
		return benchmarkResult{}, fmt.Errorf("benchmark %q: %d runs, expected %d", cfg.Name, *runs, cfg.expectedRuns())
	}
	return benchmarkResult{runs: *runs, duration: duration}, nil
}

func makeRecords(rs *water.ReactiveSystem, cfg benchmarkTestConfig) ([]*reactive.Record, []string) {
	fields := make([]string, cfg.Fields)
	for i := range fields {
		fields[i] = fmt.Sprintf("f%d", i)
	}

	records := make([]*reactive.Record, cfg.Records)
	for i := range records {
		rec := reactive.NewRecord(rs, fmt.Sprintf("r%d", i))
		for _, field := range fields {
			rec.Set(field, int64(-1))
		}
		records[i] = rec
	}
	return records, fields
}
