package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gbmviz/gbm-visualizer/internal/config"
	"github.com/gbmviz/gbm-visualizer/internal/domain"
	"github.com/gbmviz/gbm-visualizer/internal/simulation"
)

var fieldFlags struct {
	drift float64
}

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Print the drift slope field as JSON",
	Long: `Compute the deterministic drift-field segment grid for a drift
value. The field has no random component: segment slope is mu*S at each
grid node.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fieldFlags.drift < config.MinDrift || fieldFlags.drift > config.MaxDrift {
			return fmt.Errorf("drift %v out of range [%v, %v]", fieldFlags.drift, config.MinDrift, config.MaxDrift)
		}
		field := simulation.SlopeField(fieldFlags.drift)
		data, err := json.MarshalIndent(field, "", "  ")
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	},
}

func init() {
	fieldCmd.Flags().Float64Var(&fieldFlags.drift, "drift", domain.DefaultDrift, "annualized drift (mu)")
}
