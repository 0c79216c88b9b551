package cli

import (
	"fmt"
	"io"

	"github.com/guttosm/inventory-optimizer/internal/generator"
	"github.com/guttosm/inventory-optimizer/internal/records"
	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print synthetic supply records and their daily consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, days, err := generatorFromFlags(cmd)
			if err != nil {
				return err
			}
			supplies, err := gen.Records(days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seed: %d\n\n", gen.Seed())
			printSupplies(out, supplies)
			fmt.Fprintf(out, "\nConsumption: %v\n", records.DailyConsumption(supplies))
			return nil
		},
	}
	addGeneratorFlags(cmd, 20)
	return cmd
}

func addGeneratorFlags(cmd *cobra.Command, defaultDays int) {
	flags := cmd.Flags()
	flags.Int("days", defaultDays, "number of daily records")
	flags.Uint64("seed", 0, "random seed (0 picks one)")
	flags.Int("min-quantity", 5, "smallest daily quantity")
	flags.Int("max-quantity", 200, "largest daily quantity")
}

func generatorFromFlags(cmd *cobra.Command) (*generator.Generator, int, error) {
	flags := cmd.Flags()
	days, _ := flags.GetInt("days")
	minQty, _ := flags.GetInt("min-quantity")
	maxQty, _ := flags.GetInt("max-quantity")

	opts := []generator.Option{generator.WithQuantityRange(minQty, maxQty)}
	if seed, _ := flags.GetUint64("seed"); seed != 0 {
		opts = append(opts, generator.WithSeed(seed))
	}
	gen, err := generator.New(opts...)
	return gen, days, err
}

func printSupplies(w io.Writer, supplies []records.Supply) {
	if len(supplies) == 0 {
		fmt.Fprintln(w, "(no records)")
		return
	}
	for i, s := range supplies {
		fmt.Fprintf(w, "%3d. %s\n", i+1, s)
	}
}
