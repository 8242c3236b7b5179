/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/vitalboard/patient"
)

const (
	bloodPressureAxisMin = 60
	bloodPressureAxisMax = 180

	systolicColor  = "#E66F7F"
	diastolicColor = "#986BFF"
)

// generateBloodPressureChart renders the systolic/diastolic trend over an
// oldest-to-newest history window.
func generateBloodPressureChart(window []patient.DiagnosisHistoryEntry) (string, error) {
	if len(window) == 0 {
		return "", errEmptyChartWindow
	}

	xAxis := make([]string, 0, len(window))
	systolic := make([]opts.LineData, 0, len(window))
	diastolic := make([]opts.LineData, 0, len(window))

	for _, entry := range window {
		xAxis = append(xAxis, patient.ChartLabel(entry))
		systolic = append(systolic, linePoint(entry.Systolic()))
		diastolic = append(diastolic, linePoint(entry.Diastolic()))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "250px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		// The summary panel next to the chart acts as the legend.
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: bloodPressureAxisMin,
			Max: bloodPressureAxisMax,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
				LineStyle: &opts.LineStyle{
					Color: "rgba(0, 0, 0, 0.1)",
					Type:  "dashed",
				},
			},
		}),
	)

	line.SetXAxis(xAxis).
		AddSeries("Systolic", systolic,
			charts.WithLineStyleOpts(opts.LineStyle{Color: systolicColor}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: systolicColor}),
		).
		AddSeries("Diastolic", diastolic,
			charts.WithLineStyleOpts(opts.LineStyle{Color: diastolicColor}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: diastolicColor}),
		).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// linePoint maps a missing reading to echarts' gap marker.
func linePoint(v *patient.Vital) opts.LineData {
	if v == nil {
		return opts.LineData{Value: "-"}
	}
	return opts.LineData{Value: v.Value}
}
