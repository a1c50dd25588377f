// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-expense-sync/models"
)

const (
	sheetDateLayout = "2006-01-02"
	sheetTimeLayout = time.RFC3339
)

// csvMirror renders each table of a snapshot as a CSV sheet and hands it to
// a [SheetSink]. Amounts are printed in currency units, rates in percent.
type csvMirror struct {
	sink SheetSink
}

func NewCSVMirror(sink SheetSink) TabularMirror {
	return &csvMirror{sink: sink}
}

// Write puts every sheet even when one fails; the returned error joins all
// failures.
func (m *csvMirror) Write(ctx context.Context, userID string, snapshot models.Snapshot) error {
	var errs []error

	for _, table := range models.DependencyOrder {
		data, err := RenderSheet(snapshot.Dataset, table)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err = m.sink.PutSheet(ctx, userID, string(table), data); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// RenderSheet returns the CSV projection of one table: a header row, then
// one row per record in dataset order.
func RenderSheet(dataset models.Dataset, table models.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header, rows := sheetRows(dataset, table)
	if header == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func sheetRows(d models.Dataset, table models.Table) ([]string, [][]string) {
	switch table {
	case models.TableSettings:
		rows := make([][]string, 0, len(d.Settings))
		for _, s := range d.Settings {
			rows = append(rows, []string{s.Currency, s.DistanceUnit, s.VolumeUnit, formatTime(s.UpdatedAt)})
		}
		return []string{"Currency", "Distance Unit", "Volume Unit", "Updated At"}, rows

	case models.TableVehicles:
		rows := make([][]string, 0, len(d.Vehicles))
		for _, v := range d.Vehicles {
			rows = append(rows, []string{
				v.ID, v.Name, v.Make, v.Model, strconv.Itoa(v.Year), v.LicensePlate,
				strconv.FormatInt(v.InitialMileage, 10), formatTime(v.CreatedAt), formatTime(v.UpdatedAt),
			})
		}
		return []string{"ID", "Name", "Make", "Model", "Year", "License Plate", "Initial Mileage", "Created At", "Updated At"}, rows

	case models.TableFinancing:
		rows := make([][]string, 0, len(d.Financing))
		for _, f := range d.Financing {
			rows = append(rows, []string{
				f.ID, f.VehicleID, f.Lender, formatCents(f.PrincipalCents), formatCents(f.RateBasisPts),
				strconv.Itoa(f.TermMonths), formatDate(f.StartDate), formatTime(f.UpdatedAt),
			})
		}
		return []string{"ID", "Vehicle ID", "Lender", "Principal", "Rate %", "Term Months", "Start Date", "Updated At"}, rows

	case models.TableInsurance:
		rows := make([][]string, 0, len(d.Insurance))
		for _, i := range d.Insurance {
			end := ""
			if i.EndDate != nil {
				end = formatDate(*i.EndDate)
			}
			rows = append(rows, []string{
				i.ID, i.VehicleID, i.Provider, i.PolicyNumber, formatCents(i.PremiumCents),
				formatDate(i.StartDate), end, formatTime(i.UpdatedAt),
			})
		}
		return []string{"ID", "Vehicle ID", "Provider", "Policy Number", "Premium", "Start Date", "End Date", "Updated At"}, rows

	case models.TableExpenses:
		rows := make([][]string, 0, len(d.Expenses))
		for _, e := range d.Expenses {
			mileage := ""
			if e.Mileage != nil {
				mileage = strconv.FormatInt(*e.Mileage, 10)
			}
			rows = append(rows, []string{
				e.ID, e.VehicleID, formatDate(e.Date), e.Category, formatCents(e.AmountCents),
				mileage, e.Description, formatTime(e.UpdatedAt),
			})
		}
		return []string{"ID", "Vehicle ID", "Date", "Category", "Amount", "Mileage", "Description", "Updated At"}, rows
	}

	return nil, nil
}

// formatCents prints minor units with two decimals: 1250 -> "12.50".
// Basis points share the representation: 425 -> "4.25" percent.
func formatCents(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(sheetDateLayout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sheetTimeLayout)
}
