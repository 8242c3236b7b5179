/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalboard/api"
	"github.com/humaidq/vitalboard/patient"
)

const loadFailedMessage = "Failed to load patient data."

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)

	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	headerCell    = cellStyle.Bold(true)
	selectedCell  = cellStyle.Bold(true).Foreground(lipgloss.Color("#986BFF"))
	secondaryCell = cellStyle.Faint(true)
)

// CmdPatients inspects the patient list from the terminal.
var CmdPatients = newPatientsCommand()

func newPatientsCommand() *cli.Command {
	return &cli.Command{
		Name:  "patients",
		Usage: "Inspect patients from the API in the terminal",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all patients",
				Flags:  apiFlags(),
				Action: listPatients,
			},
			{
				Name:  "show",
				Usage: "Show the dashboard summary of a patient",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "select a patient by name instead of the first one",
					},
				}, apiFlags()...),
				Action: showPatient,
			},
		},
	}
}

func listPatients(ctx context.Context, cmd *cli.Command) error {
	w := commandWriter(cmd)

	dir, err := loadTerminalDirectory(ctx, api.NewClient(apiConfig(cmd)), w)
	if err != nil {
		return err
	}

	return renderPatientList(w, dir)
}

func showPatient(ctx context.Context, cmd *cli.Command) error {
	w := commandWriter(cmd)

	dir, err := loadTerminalDirectory(ctx, api.NewClient(apiConfig(cmd)), w)
	if err != nil {
		return err
	}

	if name := strings.TrimSpace(cmd.String("name")); name != "" {
		if p, ok := dir.FindByName(name); ok {
			dir.Select(p)
		} else {
			appLogger.Warn("patient not found, keeping current selection", "name", name)
		}
	}

	current, ok := dir.Current()
	if !ok {
		_, err := fmt.Fprintln(w, "Patient not found.")
		return err
	}

	return renderPatientSummary(w, patient.Summarize(current))
}

func loadTerminalDirectory(ctx context.Context, f api.Fetcher, w io.Writer) (*patient.Directory, error) {
	dir := patient.NewDirectory()

	if err := api.LoadDirectory(ctx, f, dir); err != nil {
		fmt.Fprintln(w, loadFailedMessage)
		return nil, err
	}

	return dir, nil
}

func commandWriter(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func renderPatientList(w io.Writer, dir *patient.Directory) error {
	current, _ := dir.Current()
	patients := dir.Patients()

	if len(patients) == 0 {
		_, err := fmt.Fprintln(w, "Patient not found.")
		return err
	}

	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		marker := ""
		if p.ID == current.ID {
			marker = "*"
		}
		rows = append(rows, []string{
			marker,
			p.Name,
			p.Gender,
			strconv.Itoa(p.Age),
			p.PhoneNumber,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "NAME", "GENDER", "AGE", "PHONE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCell
			case row >= 0 && row < len(patients) && patients[row].ID == current.ID:
				return selectedCell
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderPatientSummary(w io.Writer, s patient.Summary) error {
	var b strings.Builder

	p := s.Patient

	b.WriteString(headingStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(keyValueTable([][]string{
		{"Date Of Birth", s.DateOfBirth},
		{"Gender", p.Gender},
		{"Contact Info.", p.PhoneNumber},
		{"Emergency Contacts", p.EmergencyContact},
		{"Insurance Provider", p.InsuranceType},
	}))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Vitals"))
	b.WriteString("\n")

	readings := append([]patient.Reading{s.Systolic, s.Diastolic}, s.Vitals...)
	vitalRows := make([][]string, 0, len(readings))
	for _, r := range readings {
		vitalRows = append(vitalRows, []string{
			r.Title,
			strings.TrimSpace(r.Value + " " + r.Unit),
			strings.TrimSpace(r.Trend.Arrow() + " " + r.Label),
		})
	}
	b.WriteString(dataTable([]string{"VITAL", "VALUE", "LEVEL"}, vitalRows))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Blood Pressure History"))
	b.WriteString("\n")
	if len(s.Chart) == 0 {
		b.WriteString(mutedStyle.Render("No history recorded."))
	} else {
		historyRows := make([][]string, 0, len(s.Chart))
		for _, entry := range s.Chart {
			historyRows = append(historyRows, []string{
				patient.ChartLabel(entry),
				patient.DisplayValue(entry.Systolic()),
				patient.DisplayValue(entry.Diastolic()),
			})
		}
		b.WriteString(dataTable([]string{"MONTH", "SYSTOLIC", "DIASTOLIC"}, historyRows))
	}
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Diagnostic List"))
	b.WriteString("\n")
	if len(s.Diagnostics) == 0 {
		b.WriteString(mutedStyle.Render("No diagnoses recorded."))
	} else {
		diagRows := make([][]string, 0, len(s.Diagnostics))
		for _, d := range s.Diagnostics {
			diagRows = append(diagRows, []string{d.Name, d.Description, d.Status})
		}
		b.WriteString(dataTable([]string{"PROBLEM/DIAGNOSIS", "DESCRIPTION", "STATUS"}, diagRows))
	}
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Lab Results"))
	b.WriteString("\n")
	if len(s.Labs) == 0 {
		b.WriteString(mutedStyle.Render("No lab results."))
	} else {
		for _, lab := range s.Labs {
			b.WriteString("  - " + lab + "\n")
		}
	}

	_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), "\n"))
	return err
}

func dataTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return cellStyle
		}).
		String()
}

func keyValueTable(rows [][]string) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return secondaryCell
			}
			return cellStyle
		}).
		String()
}
