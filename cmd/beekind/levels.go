package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long: `Shows the levels in play order with their size and colony goal.
Use --levels to check a directory of custom level files.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	set, err := loadLevels()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println(headerStyle.Render("Levels:"))
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range set {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %s\n", "#", maxIDLen, "ID", "Size", "Goal", "Title")
	fmt.Printf("  %-3s  %-*s  %-7s  %-5s  %s\n", "-", maxIDLen, "--", "----", "----", "-----")

	for i, l := range set {
		fmt.Printf("  %-3d  %-*s  %-7s  %-5s  %s\n",
			i+1, maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			fmt.Sprintf("%d", i+cfg.Spawn.ColonyBase),
			l.Title)
	}

	fmt.Println()
	fmt.Printf("%d levels. Goal is the colony size needed, in bees.\n", set.Count())
	fmt.Println("Run 'beekind play' to start at level 1.")
}

// levelTitle names a level for the records listing.
func levelTitle(set levels.Set, i int) string {
	if l, ok := set.Level(i); ok {
		return l.Title
	}
	return "?"
}
