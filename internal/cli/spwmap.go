package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"casa-calmap/internal/app"
	"casa-calmap/internal/core"
)

type spwMapOptions struct {
	Vis       string
	CalTable  string
	Trim      bool
	Tolerance float64
	Output    string
}

func newSpwMapCommand() *cobra.Command {
	opts := spwMapOptions{}
	cmd := &cobra.Command{
		Use:   "spwmap",
		Short: "Map data spectral windows to Tsys calibration windows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSpwMap(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Vis, "vis", "", "Measurement set table path")
	cmd.Flags().StringVar(&opts.CalTable, "caltable", "", "Tsys calibration table path")
	cmd.Flags().BoolVar(&opts.Trim, "trim", true, "Drop the redundant tail of the map")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", core.DefaultChannelTolerance, "Calibration window margin in channel widths")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the map as YAML to this path")
	_ = viper.BindPFlag("spwmap.vis", cmd.Flags().Lookup("vis"))
	_ = viper.BindPFlag("spwmap.caltable", cmd.Flags().Lookup("caltable"))
	_ = viper.BindPFlag("spwmap.trim", cmd.Flags().Lookup("trim"))
	_ = viper.BindPFlag("spwmap.tolerance", cmd.Flags().Lookup("tolerance"))
	_ = viper.BindPFlag("spwmap.output", cmd.Flags().Lookup("output"))
	return cmd
}

func runSpwMap(ctx context.Context, cmd *cobra.Command, opts spwMapOptions) error {
	service := newAppService()
	defer flushMetrics(ctx, service)
	result, err := service.SpwMap(ctx, app.SpwMapRequest{
		Vis:       resolveString(cmd, opts.Vis, "spwmap.vis", "vis"),
		CalTable:  resolveString(cmd, opts.CalTable, "spwmap.caltable", "caltable"),
		Trim:      resolveBool(cmd, opts.Trim, "spwmap.trim", "trim"),
		Tolerance: resolveFloat(cmd, opts.Tolerance, "spwmap.tolerance", "tolerance"),
		Output:    resolveString(cmd, opts.Output, "spwmap.output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("spwmap: %s\n", formatInts(result.SpwMap))
	fmt.Printf("data spws: %d (self-mapped %d)\n", len(result.Full), result.SelfMapped)
	for _, window := range result.Windows {
		fmt.Printf("- cal spw %d [%g, %g] Hz -> %s\n", window.CalSpwID, window.ValidRange.Min, window.ValidRange.Max, formatInts(window.MapsToSpw))
	}
	if result.OutputPath != "" {
		fmt.Printf("written: %s\n", result.OutputPath)
	}
	return nil
}

func formatInts(values []int) string {
	return fmt.Sprintf("%v", values)
}
