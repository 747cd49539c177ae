package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ly2011/reactivity/pkg/effects"
	"github.com/ly2011/reactivity/pkg/instrument"
	"github.com/ly2011/reactivity/pkg/reactivity"
)

// scenario describes one bench run.
type scenario struct {
	Name    string `yaml:"name"`
	Objects int    `yaml:"objects"`
	Keys    int    `yaml:"keys"`
	Writes  int    `yaml:"writes"`
	Effects int    `yaml:"effects"`
}

func defaultScenario() scenario {
	return scenario{
		Name:    "default",
		Objects: 100,
		Keys:    16,
		Writes:  100_000,
		Effects: 10,
	}
}

func benchCmd() *cobra.Command {
	var (
		configPath  string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure track/trigger throughput for a scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := defaultScenario()
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("read scenario: %w", err)
				}
				if err := yaml.Unmarshal(data, &sc); err != nil {
					return fmt.Errorf("parse scenario: %w", err)
				}
			}

			engine := effects.New()
			var sched reactivity.Scheduler = engine
			if metricsAddr != "" {
				sched = instrument.NewMetricsScheduler(engine)
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", promhttp.Handler())
					_ = http.ListenAndServe(metricsAddr, mux)
				}()
				fmt.Fprintf(cmd.OutOrStdout(), "serving metrics on %s/metrics\n", metricsAddr)
			}
			reactivity.SetScheduler(sched)
			defer reactivity.SetScheduler(nil)

			return runScenario(cmd, engine, sc)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "yaml scenario file")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}

func runScenario(cmd *cobra.Command, engine *effects.Engine, sc scenario) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario %q: %d objects x %d keys, %d writes, %d effects\n",
		sc.Name, sc.Objects, sc.Keys, sc.Writes, sc.Effects)

	views := make([]*reactivity.View, sc.Objects)
	for i := range views {
		obj := reactivity.NewObject()
		view := reactivity.Reactive(obj).(*reactivity.View)
		for k := 0; k < sc.Keys; k++ {
			view.Set(keyName(k), 0)
		}
		views[i] = view
	}

	var reruns int
	for i := 0; i < sc.Effects; i++ {
		view := views[i%len(views)]
		engine.Run(func() {
			_ = view.Get(keyName(0))
			reruns++
		})
	}

	start := time.Now()
	for i := 0; i < sc.Writes; i++ {
		view := views[i%len(views)]
		view.Set(keyName(i%sc.Keys), i)
	}
	elapsed := time.Since(start)

	rate := float64(sc.Writes) / elapsed.Seconds()
	fmt.Fprintf(out, "%d writes in %s (%.0f writes/sec), %d effect runs\n",
		sc.Writes, elapsed.Round(time.Millisecond), rate, reruns)
	return nil
}

func keyName(k int) string {
	return fmt.Sprintf("k%02d", k)
}
