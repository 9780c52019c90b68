package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

func init() {
	crisisCmd.Flags().StringVar(&crisisSub, "sub", "", "Sub-emotion (defaults to the emotion's label)")
	crisisCmd.Flags().IntVarP(&crisisIntensity, "intensity", "i", catalog.CrisisThreshold, "How strong the feeling is, 1-10")
	rootCmd.AddCommand(crisisCmd)
}

var (
	crisisSub       string
	crisisIntensity int
)

var crisisCmd = &cobra.Command{
	Use:   "crisis <emotion>",
	Short: "Run a short grounding session and show crisis resources",
	Long: `Walks through a 5-4-3-2-1 grounding exercise, lists helplines for
your region, and records the session as a check-in.`,
	Args: cobra.ExactArgs(1),
	RunE: runCrisis,
}

var groundingSteps = []string{
	"Name 5 things you can see.",
	"Name 4 things you can touch.",
	"Name 3 things you can hear.",
	"Name 2 things you can smell.",
	"Name 1 thing you can taste.",
	"Breathe in for 4, hold for 4, out for 4, hold for 4. Repeat 4 times.",
}

func runCrisis(cmd *cobra.Command, args []string) error {
	emotion, err := catalog.Emotion(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	sub := crisisSub
	if sub == "" {
		sub = emotion.Label
	}

	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "You're safe to slow down. Take each step at your own pace.")
	for i, s := range groundingSteps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, s)
	}
	fmt.Fprintln(out)

	regionID := d.Tracker.Current().Region()
	if regionID == "" {
		regionID = "global"
	}
	if rg, err := catalog.Region(regionID); err == nil {
		printHelplines(out, rg)
		fmt.Fprintln(out)
	}

	res := d.Tracker.CompleteCrisis(emotion.ID, sub, crisisIntensity)
	printResult(out, res)
	return nil
}

func printHelplines(out io.Writer, rg domain.RegionResources) {
	fmt.Fprintf(out, "Helplines (%s %s):\n", rg.Flag, rg.Label)
	for _, h := range rg.Helplines {
		var ways []string
		if h.Number != "" {
			ways = append(ways, "call "+h.Number)
		}
		if h.SMS != "" {
			ways = append(ways, "text "+h.SMS)
		}
		if h.Chat != "" {
			ways = append(ways, "chat "+h.Chat)
		}
		fmt.Fprintf(out, "  %s: %s\n", h.Name, strings.Join(ways, ", "))
	}
}
