package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmerge/internal/modes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available game modes",
	Long:  `Shows a list of all registered game modes and their rules.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := modes.List()

	if len(infos) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Mode" header
	for _, m := range infos {
		if len(m.Name) > maxNameLen {
			maxNameLen = len(m.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, "Mode", "Title", "Rules")
	fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, "----", "-----", "-----")

	// Print modes
	for _, m := range infos {
		cfg, err := modes.Create(m.Name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxNameLen, m.Name, m.Title, describeRules(cfg))
	}

	fmt.Println()
	fmt.Println("Run 'gridmerge demo <mode>' to watch a demo game.")
}
