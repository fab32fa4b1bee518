package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitter/internal/allocation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	allocateFile   string
	allocateOutput string
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Allocate a receipt given as JSON records",
	Long: `Allocate reads items, assignments and adjustments as JSON and prints
what each participant owes. Nothing is stored.

Input format:
  {
    "items":       [{"id": "pizza", "subtotal": 20}],
    "assignments": [{"item_id": "pizza", "participant_id": "alice", "share_type": "equal"}],
    "adjustments": [{"key": "tax", "amount": 1.5}]
  }

Example:
  splitter allocate --file dinner.json
  cat dinner.json | splitter allocate -o json`,
	Args: cobra.NoArgs,
	RunE: runAllocate,
}

func init() {
	allocateCmd.Flags().StringVarP(&allocateFile, "file", "f", "-", "records file, or - for stdin")
	allocateCmd.Flags().StringVarP(&allocateOutput, "output", "o", "table", "output format: table or json")
}

// allocationOutput is the JSON shape printed by allocate -o json.
type allocationOutput struct {
	Totals             allocation.Allocation `json:"totals"`
	ItemTotal          float64               `json:"item_total"`
	AdjustmentTotal    float64               `json:"adjustment_total"`
	AdjustmentsApplied bool                  `json:"adjustments_applied"`
}

func runAllocate(cmd *cobra.Command, args []string) error {
	if allocateOutput != "table" && allocateOutput != "json" {
		return fmt.Errorf("unknown output format %q (valid: table, json)", allocateOutput)
	}

	var in io.Reader = cmd.InOrStdin()
	if allocateFile != "-" {
		f, err := os.Open(allocateFile)
		if err != nil {
			return fmt.Errorf("open records: %w", err)
		}
		defer f.Close()
		in = f
	}

	var records allocation.Records
	if err := json.NewDecoder(in).Decode(&records); err != nil {
		return fmt.Errorf("decode records: %w", err)
	}

	b := allocation.Compute(records.Snapshot())
	out := cmd.OutOrStdout()

	if allocateOutput == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(allocationOutput{
			Totals:             b.Totals(),
			ItemTotal:          b.ItemTotal,
			AdjustmentTotal:    b.AdjustmentTotal,
			AdjustmentsApplied: b.AdjustmentsApplied,
		})
	}
	return writeTable(out, b)
}

func writeTable(w io.Writer, b *allocation.Breakdown) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PARTICIPANT\tITEMS\tADJUSTMENT\tTOTAL\t")
	var adjusted float64
	for _, p := range b.People {
		adjusted += p.Adjustment
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t\n", p.ParticipantID, p.Subtotal, p.Adjustment, p.Total)
	}
	fmt.Fprintf(tw, "\t%.2f\t%.2f\t%.2f\t\n", b.ItemTotal, adjusted, b.ItemTotal+adjusted)
	if err := tw.Flush(); err != nil {
		return err
	}
	if b.AdjustmentTotal != 0 && !b.AdjustmentsApplied {
		fmt.Fprintf(w, "\nAdjustments of %.2f were not distributed: no item spend.\n", b.AdjustmentTotal)
	}
	return nil
}
