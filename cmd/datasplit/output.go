package main

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"datasplit/internal/partition"
	"datasplit/internal/splitter"
)

func summaryLine(result splitter.Result) string {
	return fmt.Sprintf("Train: %d files, Val: %d files, Test: %d files",
		result.Sizes.Train, result.Sizes.Val, result.Sizes.Test)
}

// renderAssignmentTable lists every pair in index order with its split.
func renderAssignmentTable(result splitter.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Input", "Target", "Split"})
	for idx, split := range result.Assignment.Lookup() {
		tw.AppendRow(table.Row{idx, result.Inputs.Names[idx], result.Targets.Names[idx], string(split)})
	}
	tw.AppendFooter(table.Row{"", "", "Total", result.Sizes.Total()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, AlignFooter: text.AlignLeft},
	})
	return tw.Render()
}

type splitReport struct {
	Train       int             `json:"train"`
	Val         int             `json:"val"`
	Test        int             `json:"test"`
	Total       int             `json:"total"`
	Seed        int64           `json:"seed"`
	DryRun      bool            `json:"dry_run"`
	BytesCopied int64           `json:"bytes_copied"`
	Assignment  []assignmentRow `json:"assignment"`
}

type assignmentRow struct {
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Target string `json:"target"`
	Split  string `json:"split"`
}

func newSplitReport(result splitter.Result, seed int64) splitReport {
	report := splitReport{
		Train:       result.Sizes.Train,
		Val:         result.Sizes.Val,
		Test:        result.Sizes.Test,
		Total:       result.Sizes.Total(),
		Seed:        seed,
		DryRun:      result.DryRun,
		BytesCopied: result.BytesCopied,
		Assignment:  []assignmentRow{},
	}
	for _, split := range partition.Splits {
		for _, idx := range result.Assignment.Indices(split) {
			report.Assignment = append(report.Assignment, assignmentRow{
				Index:  idx,
				Input:  result.Inputs.Names[idx],
				Target: result.Targets.Names[idx],
				Split:  string(split),
			})
		}
	}
	return report
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
