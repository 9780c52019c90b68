package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/app/progress"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

func init() {
	checkinCmd.Flags().StringVar(&checkinSub, "sub", "", "Sub-emotion, e.g. homesick (defaults to the emotion's label)")
	checkinCmd.Flags().IntVarP(&checkinIntensity, "intensity", "i", 3, "How strong the feeling is, 1-10")
	checkinCmd.Flags().StringSliceVarP(&checkinActions, "action", "a", nil, "Completed micro-action id (repeatable)")
	checkinCmd.Flags().StringSliceVarP(&checkinTags, "tag", "t", nil, "Context tag id (repeatable)")
	checkinCmd.Flags().StringVar(&checkinNote, "note", "", "Private journal note")
	checkinCmd.Flags().BoolVar(&checkinCrisis, "crisis", false, "Crisis tools were used during this check-in")
	rootCmd.AddCommand(checkinCmd)
}

var (
	checkinSub       string
	checkinIntensity int
	checkinActions   []string
	checkinTags      []string
	checkinNote      string
	checkinCrisis    bool
)

var checkinCmd = &cobra.Command{
	Use:   "checkin <emotion>",
	Short: "Record how you feel and what you did about it",
	Long: `Record a check-in. Run 'bhava emotions' for emotion ids and
'bhava actions <emotion>' for micro-action ids.`,
	Example: `  bhava checkin joy --sub excited -i 2 -a j1
  bhava checkin sadness --sub homesick -i 6 -a s5,s8 -t immigration`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckin,
}

func runCheckin(cmd *cobra.Command, args []string) error {
	if checkinIntensity < 1 || checkinIntensity > 10 {
		return fmt.Errorf("intensity must be between 1 and 10, got %d", checkinIntensity)
	}
	req, err := catalog.CheckInInput{
		EmotionID:      strings.ToLower(args[0]),
		SubEmotion:     checkinSub,
		Intensity:      checkinIntensity,
		ActionIDs:      checkinActions,
		UsedCrisisMode: checkinCrisis,
		ContextTags:    checkinTags,
		JournalNote:    checkinNote,
	}.Resolve()
	if err != nil {
		return err
	}

	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()
	res := d.Tracker.CheckIn(req)
	printResult(out, res)

	if catalog.IsCrisisIntensity(checkinIntensity) && !checkinCrisis {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "That sounds really intense. You don't have to ride it out alone:\n")
		fmt.Fprintf(out, "  bhava crisis %s     grounding session\n", req.EmotionID)
		fmt.Fprintf(out, "  bhava resources       helplines near you\n")
	}
	return nil
}

// printResult reports one check-in the way every recording command does.
func printResult(out io.Writer, res progress.Result) {
	p := res.Progress
	last := p.CheckIns[len(p.CheckIns)-1]
	label := last.EmotionID
	if e, err := catalog.Emotion(last.EmotionID); err == nil {
		label = e.Label
	}

	fmt.Fprintf(out, "Checked in: %s (%s), intensity %d\n", label, last.SubEmotion, last.Intensity)
	fmt.Fprintf(out, "  +%d points | total %d | streak %s (best %d)\n",
		res.PointsEarned, p.TotalPoints, plural(p.CurrentStreak, "day", "days"), p.LongestStreak)
	for _, b := range res.Unlocked {
		fmt.Fprintf(out, "  Badge unlocked: %s - %s\n", b.Name, b.Description)
	}
}
