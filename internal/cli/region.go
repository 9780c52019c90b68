package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

func init() {
	regionCmd.Flags().BoolVar(&regionClear, "clear", false, "Forget the selected region")
	rootCmd.AddCommand(regionCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(statsCmd)
}

var regionClear bool

var regionCmd = &cobra.Command{
	Use:   "region [id]",
	Short: "Show, set or clear the region used for crisis resources",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegion,
}

func runRegion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	switch {
	case regionClear:
		if _, err := d.Tracker.SetRegion(""); err != nil {
			return err
		}
		fmt.Fprintln(out, "Region cleared.")
		return nil

	case len(args) == 1:
		p, err := d.Tracker.SetRegion(strings.ToLower(args[0]))
		if err != nil {
			return err
		}
		rg, _ := catalog.Region(p.Region())
		fmt.Fprintf(out, "Region set to %s %s.\n", rg.Flag, rg.Label)
		return nil
	}

	current := d.Tracker.Current().Region()
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tREGION\tHELPLINES\tGROUPS")
	for _, rg := range catalog.Regions {
		id := rg.ID
		if id == current {
			id += " *"
		}
		fmt.Fprintf(w, "%s\t%s %s\t%d\t%d\n", id, rg.Flag, rg.Label, len(rg.Helplines), len(rg.SupportGroups))
	}
	return w.Flush()
}

var resourcesCmd = &cobra.Command{
	Use:   "resources [region]",
	Short: "Show helplines and support groups",
	Long: `Show helplines and support groups for a region. Without an argument
the selected region is used, falling back to global.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResources,
}

func runResources(cmd *cobra.Command, args []string) error {
	var id string
	if len(args) == 1 {
		id = strings.ToLower(args[0])
	} else {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		id = d.Tracker.Current().Region()
		d.Close()
	}
	if id == "" {
		id = "global"
	}

	rg, err := catalog.Region(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHelplines(out, rg)
	if len(rg.SupportGroups) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Support groups:")
		for _, g := range rg.SupportGroups {
			fmt.Fprintf(out, "  %s (%s): %s\n", g.Name, g.Type, g.Description)
			if g.URL != "" {
				fmt.Fprintf(out, "    %s\n", g.URL)
			}
		}
	}
	return nil
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show community-wide counts from the sync backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDaemon()
		if err != nil {
			return err
		}
		defer d.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		st, err := d.Stats(ctx)
		if errors.Is(err, domain.ErrSyncDisabled) {
			return fmt.Errorf("%w: set BHAVA_SYNC_ENABLED, BHAVA_SYNC_URL and BHAVA_SYNC_KEY", err)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Users:        %d\n", st.TotalUsers)
		fmt.Fprintf(out, "Mood entries: %d\n", st.TotalMoods)
		return nil
	},
}
