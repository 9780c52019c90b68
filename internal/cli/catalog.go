package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

func init() {
	actionsCmd.Flags().IntVarP(&actionsIntensity, "intensity", "i", 3, "Intensity to suggest actions for, 1-10")
	actionsCmd.Flags().BoolVar(&actionsAll, "all", false, "List every action for the band instead of a shuffled few")
	rootCmd.AddCommand(emotionsCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(badgesCmd)
}

var (
	actionsIntensity int
	actionsAll       bool
)

var emotionsCmd = &cobra.Command{
	Use:   "emotions",
	Short: "List the emotion wheel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMOTION\tSUB-EMOTIONS")
		for _, e := range catalog.Emotions {
			fmt.Fprintf(w, "%s\t%s %s\t%s\n", e.ID, e.Icon, e.Label, strings.Join(e.SubEmotions, ", "))
		}
		return w.Flush()
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions <emotion>",
	Short: "Suggest micro-actions for an emotion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		emotion, err := catalog.Emotion(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		if actionsIntensity < 1 || actionsIntensity > 10 {
			return fmt.Errorf("intensity must be between 1 and 10, got %d", actionsIntensity)
		}

		var actions []domain.MicroAction
		if actionsAll {
			actions = catalog.ActionsFor(emotion.ID, actionsIntensity)
		} else {
			actions = catalog.SuggestActions(emotion.ID, actionsIntensity, nil)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s at intensity %d (%s band):\n", emotion.Label, actionsIntensity, catalog.IntensityBand(actionsIntensity))
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tACTION\tCATEGORY\tTIME\tPOINTS")
		for _, a := range actions {
			fmt.Fprintf(w, "%s\t%s\t%s %s\t%dm\t%d\n",
				a.ID, a.Text, catalog.CategoryIcons[a.Category], a.Category, a.TimeMinutes, a.Points)
		}
		return w.Flush()
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List context tags for check-ins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTAG\tDESCRIPTION")
		for _, t := range catalog.ContextTags {
			fmt.Fprintf(w, "%s\t%s %s\t%s\n", t.ID, t.Icon, t.Label, t.Description)
		}
		return w.Flush()
	},
}

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List all badges and which ones you have",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		p := d.Tracker.Current()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "BADGE\tREQUIREMENT\tUNLOCKED")
		for _, b := range catalog.Badges {
			unlocked := "-"
			if p.IsUnlocked(b.ID) {
				unlocked = "yes"
			}
			fmt.Fprintf(w, "%s %s\t%s\t%s\n", b.Icon, b.Name, b.Requirement, unlocked)
		}
		return w.Flush()
	},
}
