package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	getSlotGridHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/get_slot_grid"
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	getSlotGridUC "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
)

func gridCmd() *cobra.Command {
	var (
		storeID    string
		sport      string
		date       string
		outputJSON bool
		onlyFree   bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Fetch and resolve the slot grid of a store once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if storeID == "" {
				return fmt.Errorf("--store is required")
			}

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer log.Close()

			deps, err := buildCore(cfg, log, nil, nil)
			if err != nil {
				return err
			}

			req, err := getSlotGridHandler.ToUseCaseRequest(storeID, date, sport, "true", time.Now())
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.ArenaAPI.TimeoutDuration())
			defer cancel()

			resp, err := deps.slotGrid.Execute(ctx, req)
			if err != nil {
				return err
			}

			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(getSlotGridHandler.FromUseCaseResponse(resp))
			}
			return printGrid(cmd.OutOrStdout(), resp, onlyFree)
		},
	}

	cmd.Flags().StringVar(&storeID, "store", "", "store id")
	cmd.Flags().StringVar(&sport, "sport", "", "sport id filter")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "output JSON")
	cmd.Flags().BoolVar(&onlyFree, "free", false, "show available slots only")
	cmd.SetOut(os.Stdout)
	return cmd
}

// printGrid печатает сетку таблицей: одна строка на слот
func printGrid(out io.Writer, resp *getSlotGridUC.Response, onlyFree bool) error {
	grid := resp.Grid
	fmt.Fprintf(out, "Store %s, %s (source: %s", grid.Key.StoreID, grid.Key.Date, resp.Source)
	if grid.Stale {
		fmt.Fprint(out, ", stale")
	}
	fmt.Fprintln(out, ")")

	writer := tabwriter.NewWriter(out, 2, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "FIELD\tTIME\tSTATUS\tPRICE\tSPECIAL")
	for _, field := range grid.Fields {
		for _, slot := range field.Slots {
			if onlyFree && slot.Status != domain.SlotAvailable {
				continue
			}
			special := ""
			if slot.IsSpecial {
				special = "yes"
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n", field.FieldName, slot.Time, slot.Status, slot.Price, special)
		}
	}
	return writer.Flush()
}
