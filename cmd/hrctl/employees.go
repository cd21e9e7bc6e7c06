package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"hrdesk/internal/domain/core"
)

func employeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Employee directory",
	}
	cmd.AddCommand(employeesListCmd())
	return cmd
}

func employeesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			var employees []core.Employee
			if err := newClient().getJSON("/api/v1/employees", nil, &employees); err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Name", "Department", "Position", "Status"})
			for _, emp := range employees {
				t.AppendRow(table.Row{emp.ID, emp.Name, emp.Department, emp.Position, emp.Status})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}
}
