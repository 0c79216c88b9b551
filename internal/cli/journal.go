package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/guttosm/inventory-optimizer/internal/records"
	"github.com/spf13/cobra"
)

func newJournalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Browse generated records as FIFO and LIFO journals",
		Long: "Generate records, replay them through a chronological queue and a " +
			"reverse-lookup stack, then optionally sort them and search by name. " +
			"Search is binary when records are sorted by name, sequential otherwise.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, days, err := generatorFromFlags(cmd)
			if err != nil {
				return err
			}
			supplies, err := gen.Records(days)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			sortBy, _ := flags.GetString("sort-by")
			algorithm, _ := flags.GetString("algorithm")
			search, _ := flags.GetString("search")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seed: %d\n", gen.Seed())

			var queue records.Queue[records.Supply]
			var stack records.Stack[records.Supply]
			for _, s := range supplies {
				queue.Enqueue(s)
				stack.Push(s)
			}

			section(out, fmt.Sprintf("Queue (%d, oldest first)", queue.Len()))
			printSupplies(out, queue.Items())
			if first, ok := queue.Dequeue(); ok {
				fmt.Fprintf(out, "Dequeued: %s (%d left)\n", first, queue.Len())
			}

			section(out, fmt.Sprintf("Stack (%d, newest first)", stack.Len()))
			printSupplies(out, stack.Items())
			if top, ok := stack.Pop(); ok {
				fmt.Fprintf(out, "Popped: %s (%d left)\n", top, stack.Len())
			}

			listed := supplies
			if sortBy != "" {
				listed, err = records.Sort(supplies, records.SortAlgorithm(algorithm), records.Criterion(sortBy))
				if err != nil {
					return err
				}
				section(out, fmt.Sprintf("Sorted by %s (%s sort)", sortBy, sortName(algorithm)))
				printSupplies(out, listed)
			}

			if search != "" {
				var found []records.Supply
				method := "sequential"
				if records.Criterion(sortBy) == records.ByName {
					found = records.BinarySearch(listed, search)
					method = "binary"
				} else {
					found = records.LinearSearch(listed, search)
				}
				section(out, fmt.Sprintf("Search %q (%s)", search, method))
				printSupplies(out, found)
			}
			return nil
		},
	}

	addGeneratorFlags(cmd, 20)
	cmd.Flags().String("sort-by", "", "sort criterion: name, quantity, date or expiry")
	cmd.Flags().String("algorithm", "merge", "sort algorithm: merge or quick")
	cmd.Flags().String("search", "", "supply name to look up")
	return cmd
}

func sortName(algorithm string) string {
	if algorithm == "" {
		return string(records.MergeSortAlgorithm)
	}
	return algorithm
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}
