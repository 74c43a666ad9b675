package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"casa-calmap/internal/app"
)

type flagCmdOptions struct {
	Request     string
	Output      string
	Consolidate bool
}

func newFlagCmdCommand() *cobra.Command {
	opts := flagCmdOptions{}
	cmd := &cobra.Command{
		Use:   "flagcmd",
		Short: "Compose flag commands from a request file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFlagCmd(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Request, "request", "", "Flag request YAML path")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write flag commands to this path")
	cmd.Flags().BoolVar(&opts.Consolidate, "consolidate", false, "Merge commands that differ only in channels")
	_ = viper.BindPFlag("flagcmd.request", cmd.Flags().Lookup("request"))
	_ = viper.BindPFlag("flagcmd.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("flagcmd.consolidate", cmd.Flags().Lookup("consolidate"))
	return cmd
}

func runFlagCmd(ctx context.Context, cmd *cobra.Command, opts flagCmdOptions) error {
	service := newAppService()
	defer flushMetrics(ctx, service)
	result, err := service.FlagCommands(ctx, app.FlagCommandsRequest{
		RequestPath: resolveString(cmd, opts.Request, "flagcmd.request", "request"),
		Output:      resolveString(cmd, opts.Output, "flagcmd.output", "output"),
		Consolidate: resolveBool(cmd, opts.Consolidate, "flagcmd.consolidate", "consolidate"),
	})
	if err != nil {
		return err
	}
	for _, flagCmd := range result.Commands {
		fmt.Println(flagCmd.Command)
	}
	if result.OutputPath != "" {
		fmt.Printf("written: %s (%d commands)\n", result.OutputPath, len(result.Commands))
	}
	return nil
}

func newChanRangesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chanranges CHANNEL...",
		Short: "Compress channel indices into contiguous ranges",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runChanRanges(args)
		},
	}
}

func runChanRanges(args []string) error {
	channels, err := parseChannels(args)
	if err != nil {
		return err
	}
	result, err := newAppService().ChannelRanges(app.ChannelRangesRequest{Channels: channels})
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(result.Ranges))
	for _, r := range result.Ranges {
		parts = append(parts, fmt.Sprintf("%d~%d", r.Lo, r.Hi))
	}
	fmt.Println(strings.Join(parts, ";"))
	return nil
}

// parseChannels accepts channel indices as separate arguments or
// comma-separated lists.
func parseChannels(args []string) ([]int, error) {
	var channels []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			channel, err := strconv.Atoi(field)
			if err != nil || channel < 0 {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid channel index: %s", field))
			}
			channels = append(channels, channel)
		}
	}
	return channels, nil
}

type matchOptions struct {
	Request string
	Records string
}

func newMatchCommand() *cobra.Command {
	opts := matchOptions{}
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Show which spectra and images each flag command selects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Request, "request", "", "Flag request YAML path")
	cmd.Flags().StringVar(&opts.Records, "records", "", "Spectrum and image records YAML path")
	_ = viper.BindPFlag("match.request", cmd.Flags().Lookup("request"))
	_ = viper.BindPFlag("match.records", cmd.Flags().Lookup("records"))
	return cmd
}

func runMatch(ctx context.Context, cmd *cobra.Command, opts matchOptions) error {
	result, err := newAppService().Match(ctx, app.MatchRequest{
		RequestPath: resolveString(cmd, opts.Request, "match.request", "request"),
		RecordsPath: resolveString(cmd, opts.Records, "match.records", "records"),
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		fmt.Printf("%s\n  spectra: %v\n  images: %v\n", entry.Command, entry.Spectra, entry.Images)
	}
	return nil
}
