package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"hrdesk/internal/domain/reports"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report summaries and exports",
	}

	cmd.PersistentFlags().String("start", "", "start date (YYYY-MM-DD, default 30 days back)")
	cmd.PersistentFlags().String("end", "", "end date (YYYY-MM-DD, default today)")
	cmd.PersistentFlags().String("employee", "", "employee id (default all)")
	cmd.PersistentFlags().String("type", "all", "record type: all, time_entries, tasks, goals")
	cmd.PersistentFlags().String("lang", "en", "report language code")

	cmd.AddCommand(reportSummaryCmd())
	cmd.AddCommand(reportExportCmd())
	return cmd
}

func reportQuery(cmd *cobra.Command) url.Values {
	query := url.Values{}
	for flag, param := range map[string]string{
		"start":    "start_date",
		"end":      "end_date",
		"employee": "employee_id",
		"type":     "record_type",
		"lang":     "lang",
	} {
		if value, _ := cmd.Flags().GetString(flag); value != "" {
			query.Set(param, value)
		}
	}
	return query
}

func reportSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the report summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			var report reports.SummaryReport
			if err := newClient().getJSON("/api/v1/reports/summary", reportQuery(cmd), &report); err != nil {
				return err
			}

			fmt.Printf("Period: %s   Employee: %s   Language: %s\n\n", report.Period, report.Employee, report.Language)

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Metric", "Value"})
			s := report.Summary
			t.AppendRows([]table.Row{
				{"Total Hours", s.TotalHoursLabel},
				{"Time Entries", s.EntryCount},
				{"Approved / Pending / Rejected", fmt.Sprintf("%d / %d / %d", s.ApprovedEntries, s.PendingEntries, s.RejectedEntries)},
				{"Tasks", s.TaskCount},
				{"Task Completion", fmt.Sprintf("%d%%", s.TaskCompletionRate)},
				{"Average Quality", s.AverageQualityLbl},
				{"Goals", s.GoalCount},
				{"Goal Completion", fmt.Sprintf("%d%%", s.GoalCompletionRate)},
				{"Average Goal Progress", fmt.Sprintf("%s%%", reports.FormatAverage(s.AverageGoalProgress))},
			})
			t.SetStyle(table.StyleLight)
			t.Render()

			if card := report.Scorecard; card != nil {
				fmt.Printf("\nScorecard: %s — %s (%d/5)\n", card.EmployeeName, card.Band, card.Stars)
			}
			return nil
		},
	}
}

func reportExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a report export",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")
			client := newClient()

			if format == "all" {
				var outcomes []reports.ExportOutcome
				if err := client.postJSON("/api/v1/reports/export/all", reportQuery(cmd), &outcomes); err != nil {
					return err
				}
				for _, outcome := range outcomes {
					if outcome.Error != "" {
						fmt.Printf("%-6s FAILED: %s\n", outcome.Format, outcome.Error)
						continue
					}
					fmt.Printf("%-6s %s (%d bytes)\n", outcome.Format, outcome.Filename, outcome.Size)
				}
				return nil
			}

			paths := map[string]string{
				"csv":   "/api/v1/reports/export/csv",
				"excel": "/api/v1/reports/export/excel",
				"pdf":   "/api/v1/reports/export/pdf",
			}
			path, ok := paths[format]
			if !ok {
				return fmt.Errorf("unknown format %q (csv, excel, pdf, all)", format)
			}

			data, filename, err := client.download(path, reportQuery(cmd))
			if err != nil {
				return err
			}
			target := filepath.Join(outDir, filename)
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)\n", target, len(data))
			return nil
		},
	}

	cmd.Flags().String("format", "csv", "export format: csv, excel, pdf, all")
	cmd.Flags().String("out", ".", "output directory")
	return cmd
}
