package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/generator"
	"github.com/guttosm/inventory-optimizer/internal/service"
	"github.com/spf13/cobra"
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the minimum-cost reorder plan",
		Long: "Compute the minimum-cost reorder plan for --consumption. Without " +
			"--consumption a random forecast of --days days is drawn. Cost flags " +
			"that are not set fall back to the configured defaults.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := solveRequest(cmd)
			if err != nil {
				return err
			}

			cfg := config.Load()
			svc := service.NewOptimizerService(service.WithDefaults(service.DefaultsFromConfig(cfg.Optimizer)))
			defer svc.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			plan, err := svc.Optimize(ctx, req)
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntSlice("consumption", nil, "daily consumption, e.g. 50,20,70")
	flags.Int("days", 10, "length of the random forecast when --consumption is empty")
	flags.Uint64("seed", 0, "seed for the random forecast (0 picks one)")
	flags.Float64("order-fee", 0, "fixed cost of placing an order")
	flags.Float64("storage-cost", 0, "cost per unit held at the end of a day")
	flags.Float64("shortage-cost", 0, "cost per unit of unmet consumption")
	flags.Int("initial-stock", 0, "stock on hand before day one")
	flags.Int("step", 0, "order quantity granularity (0 uses the configured step)")
	flags.Int("capacity-factor", 0, "capacity as a multiple of peak consumption (0 uses the configured factor)")
	flags.String("algorithm", "", "topdown, bottomup or both")
	return cmd
}

// solveRequest maps flags onto a request. Cost flags only override the
// defaults when given explicitly.
func solveRequest(cmd *cobra.Command) (model.OptimizationRequest, error) {
	flags := cmd.Flags()

	consumption, _ := flags.GetIntSlice("consumption")
	if len(consumption) == 0 {
		days, _ := flags.GetInt("days")
		var opts []generator.Option
		if seed, _ := flags.GetUint64("seed"); seed != 0 {
			opts = append(opts, generator.WithSeed(seed))
		}
		opts = append(opts, generator.WithQuantityRange(20, 100))

		gen, err := generator.New(opts...)
		if err != nil {
			return model.OptimizationRequest{}, err
		}
		if consumption, err = gen.Consumption(days); err != nil {
			return model.OptimizationRequest{}, err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Random forecast (seed %d): %v\n\n", gen.Seed(), consumption)
	}

	req := model.OptimizationRequest{Consumption: consumption}
	req.InitialStock, _ = flags.GetInt("initial-stock")
	req.Step, _ = flags.GetInt("step")
	req.CapacityFactor, _ = flags.GetInt("capacity-factor")
	req.Algorithm, _ = flags.GetString("algorithm")

	for name, dst := range map[string]**float64{
		"order-fee":     &req.OrderFee,
		"storage-cost":  &req.StorageCost,
		"shortage-cost": &req.ShortageCost,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetFloat64(name)
			*dst = &v
		}
	}
	return req, nil
}

func printPlan(w io.Writer, plan model.Plan) {
	fmt.Fprintf(w, "Algorithm:       %s\n", plan.Algorithm)
	fmt.Fprintf(w, "Minimum cost:    %.2f\n", plan.MinCost)
	fmt.Fprintf(w, "Capacity:        %d (step %d, factor %d)\n", plan.Capacity, plan.Step, plan.CapacityFactor)
	fmt.Fprintf(w, "States explored: %d\n\n", plan.StatesExplored)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Day\tOpening\tConsumption\tOrder\tClosing\tOrder cost\tStorage\tShortage\tCost\t")
	for _, d := range plan.Days {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			d.Day+1, d.OpeningStock, d.Consumption, d.Order, d.ClosingStock,
			d.OrderCost, d.StorageCost, d.ShortageCost, d.Cost)
	}
	_ = tw.Flush()

	t := plan.Totals
	fmt.Fprintf(w, "\n%d orders, %d units. Ordering %.2f + storage %.2f + shortage %.2f\n",
		t.OrdersPlaced, t.UnitsOrdered, t.OrderCost, t.StorageCost, t.ShortageCost)
}
