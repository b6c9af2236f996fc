package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"sandfall/internal/app"
	"sandfall/internal/scenario"
	"sandfall/internal/sims/sandbox"
)

type paramSet struct {
	spread float64
	quench float64
	grow   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("spread=%.3f quench=%.2f grow=%.3f", p.spread, p.quench, p.grow)
}

type scenarioResult struct {
	params    paramSet
	census    map[sandbox.Type]int
	peakFire  int
	peakSmoke int
	peakStep  int
}

func (r scenarioResult) green() int {
	return r.census[sandbox.TypeWood] + r.census[sandbox.TypePlant]
}

type options struct {
	steps   int
	workers int
	rank    string
	top     int
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 80, "grid width")
	height := flag.Int("h", 21, "grid height")
	seed := flag.Int64("seed", 1337, "seed used for every run")
	name := flag.String("scenario", "demo", "built-in scenario name or YAML file")
	rank := flag.String("rank", "fire", "ranking: fire (peak burning cells) or green (surviving wood and plants)")
	top := flag.Int("top", 5, "results to print")
	var overrides app.KVList
	flag.Var(&overrides, "set", "base parameter override in key=value form (repeatable)")
	flag.Parse()

	script, err := scenario.Resolve(*name)
	if err != nil {
		log.Fatal(err)
	}

	opts := overrides.Map()
	opts["w"] = strconv.Itoa(*width)
	opts["h"] = strconv.Itoa(*height)
	opts["seed"] = strconv.FormatInt(*seed, 10)
	opts["initial_scene"] = "false"
	base := sandbox.FromMap(opts)

	sets := buildSets(
		[]float64{0.02, 0.05, 0.10},
		[]float64{0.10, 0.30, 0.60},
		[]float64{0.01, 0.02, 0.05},
	)
	fmt.Printf("Sweeping %d parameter sets over %q (%d workers, %d steps)\n", len(sets), script.Name, *workers, *steps)

	start := time.Now()
	results := sweep(base, script, sets, *steps, *workers)
	report(os.Stdout, results, options{steps: *steps, workers: *workers, rank: *rank, top: *top}, time.Since(start))
}

func buildSets(spread, quench, grow []float64) []paramSet {
	var sets []paramSet
	for _, s := range spread {
		for _, q := range quench {
			for _, g := range grow {
				sets = append(sets, paramSet{spread: s, quench: q, grow: g})
			}
		}
	}
	return sets
}

// sweep evaluates every set on its own world and returns results in
// completion order.
func sweep(base sandbox.Config, script scenario.Script, sets []paramSet, steps, workers int) []scenarioResult {
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for range max(1, workers) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, script, params, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

func runScenario(base sandbox.Config, script scenario.Script, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Params.FireSpreadChance = params.spread
	cfg.Params.FireQuenchChance = params.quench
	cfg.Params.PlantGrowChance = params.grow

	world := sandbox.NewWithConfig(cfg)
	player := scenario.NewPlayer(script, world.Rand())

	res := scenarioResult{params: params}
	for step := 0; step < steps; step++ {
		player.Advance(world)
		world.Step()

		census := world.Census()
		if n := census[sandbox.TypeFire]; n > res.peakFire {
			res.peakFire = n
			res.peakStep = step + 1
		}
		if n := census[sandbox.TypeSmoke]; n > res.peakSmoke {
			res.peakSmoke = n
		}
	}
	res.census = world.Census()
	return res
}

func rankResults(all []scenarioResult, by string) {
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if by == "green" {
			if a.green() != b.green() {
				return a.green() > b.green()
			}
		} else if a.peakFire != b.peakFire {
			return a.peakFire > b.peakFire
		}
		return a.params.String() < b.params.String()
	})
}

func report(w io.Writer, all []scenarioResult, opts options, elapsed time.Duration) {
	rankResults(all, opts.rank)
	fmt.Fprintf(w, "\nTop %d by %s (elapsed %s):\n", min(opts.top, len(all)), opts.rank, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < opts.top; i++ {
		res := all[i]
		fmt.Fprintf(w, "%2d) peakFire=%d@%d peakSmoke=%d %s params=%s\n",
			i+1, res.peakFire, res.peakStep, res.peakSmoke, censusLine(res.census), res.params)
	}
}

func censusLine(census map[sandbox.Type]int) string {
	line := ""
	for _, t := range sandbox.Types {
		if t == sandbox.TypeEmpty {
			continue
		}
		if line != "" {
			line += " "
		}
		line += fmt.Sprintf("%s=%d", t, census[t])
	}
	return line
}
