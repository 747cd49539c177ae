package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ly2011/reactivity/pkg/effects"
	"github.com/ly2011/reactivity/pkg/reactivity"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a small dependency-tracking walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			engine := effects.New()
			reactivity.SetScheduler(engine)
			defer reactivity.SetScheduler(nil)

			user := reactivity.NewObjectFrom(map[string]any{
				"name": "Ada",
				"profile": reactivity.NewObjectFrom(map[string]any{
					"visits": 0,
				}),
			})
			view := reactivity.Reactive(user).(*reactivity.View)

			engine.Run(func() {
				profile := view.Get("profile").(*reactivity.View)
				fmt.Fprintf(out, "%v has %v visits\n", view.Get("name"), profile.Get("visits"))
			})

			profile := view.Get("profile").(*reactivity.View)
			for i := 1; i <= 3; i++ {
				profile.Set("visits", i)
			}

			fmt.Fprintln(out, "-- batching three writes into one re-run --")
			engine.Batch(func() {
				view.Set("name", "Grace")
				profile.Set("visits", 100)
				profile.Set("visits", 101)
			})

			return nil
		},
	}
}
