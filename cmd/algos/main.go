package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var size int
	var steps int
	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Compare the AVL tree with other ordered containers",
		Long:  `Bench pushes a random permutation into each container and then pops every value in ascending order, repeating with growing sizes up to --size.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if size <= 0 || steps <= 0 {
				log.Fatalf("size and steps must be positive, got %d and %d", size, steps)
			}
			for _, r := range measure(size, steps) {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
		},
	}
	cmdBench.Flags().IntVarP(&size, "size", "n", 1<<16, "largest number of values")
	cmdBench.Flags().IntVarP(&steps, "steps", "s", 8, "number of sizes measured")

	var cmdPath = &cobra.Command{
		Use:   "path [job.yaml]",
		Short: "Find a path through a grid",
		Long:  `Path reads a grid and two cells from a YAML job file and prints the path found by the job's algorithm (astar, dijkstra or bfs).`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			job, err := loadJob(args[0])
			if err != nil {
				log.Fatalf("Error reading job: %v", err)
			}
			p, err := job.run()
			if err != nil {
				log.Fatalf("Error finding path: %v", err)
			}
			if len(p) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no path")
				return
			}
			for _, c := range p {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", c.Row, c.Col)
			}
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "algos",
		Short: "Tools around the go-algos containers",
	}
	rootCmd.AddCommand(cmdBench, cmdPath)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
