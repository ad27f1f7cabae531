package client

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-stego-channel/models"
)

type historyFlags struct {
	operation string
	kind      string
	success   string
}

func (f *historyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.operation, "operation", "", "hide or reveal")
	cmd.Flags().StringVar(&f.kind, "kind", "", "text, image or audio")
	cmd.Flags().StringVar(&f.success, "success", "", "true or false")
}

func (f historyFlags) filter() (models.HistoryFilter, error) {
	filter := models.HistoryFilter{
		Type:        models.OperationType(f.operation),
		CarrierKind: f.kind,
	}
	if f.success != "" {
		success, err := strconv.ParseBool(f.success)
		if err != nil {
			return models.HistoryFilter{}, ErrInvalidSuccessValue
		}
		filter.Success = &success
	}
	return filter, nil
}

func (a *App) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the local operation history",
	}
	cmd.AddCommand(a.historyListCmd(), a.historyClearCmd())
	return cmd
}

func (a *App) historyListCmd() *cobra.Command {
	var (
		flags         historyFlags
		limit, offset uint64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded operations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}
			filter.Limit, filter.Offset = limit, offset

			ops, err := a.services.HistoryService.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(ops) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no operations recorded")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTIME\tOPERATION\tKIND\tSUCCESS\tBYTES\tBPU\tDURATION\tDETAIL")
			for _, op := range ops {
				detail := op.Fingerprint
				if !op.Success {
					detail = op.Error
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%d\t%d\t%dms\t%s\n",
					op.ID, op.CreatedAt.Local().Format(time.DateTime), op.Type, op.CarrierKind,
					op.Success, op.MessageLength, op.BitsPerUnit, op.DurationMS, detail)
			}
			return tw.Flush()
		},
	}

	flags.register(cmd)
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of records")
	cmd.Flags().Uint64Var(&offset, "offset", 0, "skip the newest records")
	return cmd
}

func (a *App) historyClearCmd() *cobra.Command {
	var flags historyFlags

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete recorded operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}

			n, err := a.services.HistoryService.Clear(cmd.Context(), filter)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d operation(s)\n", n)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
