package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beekind/internal/games/beekind/levels"
	"github.com/vovakirdan/beekind/internal/platform/tui"
	"github.com/vovakirdan/beekind/internal/storage"
)

var (
	flagPlain bool
	flagReset bool
	flagLast  int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show level clear records",
	Long: `Display the fastest clear of every level and the most recent clears.
On a terminal the records open in an interactive browser; use --plain for
text output.

Examples:
  beekind records
  beekind records --plain --last 20
  beekind records --reset`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print records as text")
	recordsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all records")
	recordsCmd.Flags().IntVar(&flagLast, "last", 10, "Number of recent clears to list")
}

func runRecords(cmd *cobra.Command, args []string) {
	set, err := loadLevels()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening records database: %v", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetClears(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("Records deleted.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunRecords(store, set, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if err := printRecords(store, set); err != nil {
		store.Close()
		fail("%v", err)
	}
}

func printRecords(store *storage.Store, set levels.Set) error {
	best, err := store.BestClears()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Best clears:"))
	fmt.Println()
	if len(best) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Println("Play 'beekind play' to set the first record!")
		return nil
	}

	fmt.Printf("  %-3s  %-20s  %-8s  %s\n", "#", "Level", "Time", "Date")
	fmt.Printf("  %-3s  %-20s  %-8s  %s\n", "-", "-----", "----", "----")
	for _, c := range best {
		fmt.Printf("  %-3d  %-20s  %-8s  %s\n",
			c.Level+1, levelTitle(set, c.Level), tui.FormatTicks(c.Ticks), c.CreatedAt.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentClears(flagLast)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Recent clears:"))
	fmt.Println()
	for _, c := range recent {
		fmt.Printf("  %s  level %-3d  %-8s  seed %d\n",
			c.CreatedAt.Format("2006-01-02 15:04"), c.Level+1, tui.FormatTicks(c.Ticks), c.Seed)
	}
	return nil
}
