package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/app/progress"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"progress"},
	Short:   "Show points, streaks and badge progress",
	Args:    cobra.NoArgs,
	RunE:    runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	p := d.Tracker.Current()
	s := progress.Summarize(p)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Points:     %d\n", s.TotalPoints)
	fmt.Fprintf(out, "Streak:     %s (best %d)\n", plural(s.CurrentStreak, "day", "days"), s.LongestStreak)
	fmt.Fprintf(out, "Check-ins:  %d\n", s.CheckInCount)
	fmt.Fprintf(out, "Actions:    %d\n", s.ActionsCompleted)
	fmt.Fprintf(out, "Explored:   %d/%d emotions\n", len(s.ExploredEmotions), len(catalog.Emotions))
	if len(s.RecentEmotions) > 0 {
		fmt.Fprintf(out, "Recently:   %s\n", strings.Join(s.RecentEmotions, ", "))
	}
	if s.Region != "" {
		fmt.Fprintf(out, "Region:     %s\n", s.Region)
	}
	fmt.Fprintf(out, "Timezone:   %s\n", d.Tracker.Location())

	fmt.Fprintf(out, "\nBadges %d/%d\n", s.BadgesUnlocked, s.BadgesTotal)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, bp := range progress.Progressions(p) {
		mark := " "
		if bp.Unlocked {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", mark, bp.Badge.Name, renderBar(bp.Current, bp.Target))
	}
	return w.Flush()
}
