package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gbmviz/gbm-visualizer/internal/output"
	"github.com/gbmviz/gbm-visualizer/internal/store"
)

var runsFlags struct {
	storeDir string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect stored trajectories",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored trajectory hashes",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.New(runsFlags.storeDir)
		if !st.Exists() {
			return fmt.Errorf("no run store at %s", runsFlags.storeDir)
		}
		hashes, err := st.List()
		if err != nil {
			return err
		}
		for _, hash := range hashes {
			fmt.Fprintln(cmd.OutOrStdout(), hash)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <hash>",
	Short: "Print a stored trajectory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.New(runsFlags.storeDir)
		tr, err := st.LoadTrajectory(args[0])
		if err != nil {
			return err
		}
		for i, pt := range tr {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  t=%s  S=%s\n", i, output.FormatTime(pt.Time), output.PriceString(pt.Price))
		}
		return nil
	},
}

func init() {
	runsCmd.PersistentFlags().StringVar(&runsFlags.storeDir, "store-dir", ".", "run store location")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}
