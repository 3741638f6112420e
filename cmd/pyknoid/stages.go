package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the stages in play order",
	Long: `Shows the stages that a run would go through, with their block counts.
Every stage is validated, so this also checks a --stages directory.`,
	Args: cobra.NoArgs,
	Run:  runStages,
}

func runStages(_ *cobra.Command, _ []string) {
	b, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	maxNameLen := 4 // "Name" header
	for i := 1; i <= b.stages.Count(); i++ {
		if n := len(b.stages.Name(i)); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxNameLen, "Name", "Blocks")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxNameLen, "----", "------")
	for i := 1; i <= b.stages.Count(); i++ {
		g, err := b.stages.Stage(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %-3d  %-*s  %d\n", i, maxNameLen, b.stages.Name(i), g.Blocks())
	}

	fmt.Println()
	fmt.Println("Run 'pyknoid' to play.")
}
