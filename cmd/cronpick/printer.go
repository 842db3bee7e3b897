package main

import (
	"encoding/json"
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	"github.com/osmike/cronpick/internal/store"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

// printer writes command results in the selected output format.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case outputText, outputYAML, outputJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
	}
	return &printer{w: w, format: format}, nil
}

// expressionResult is an expression together with the schedule it encodes.
type expressionResult struct {
	Key        string             `yaml:"key,omitempty" json:"key,omitempty"`
	Dialect    domain.Dialect     `yaml:"dialect" json:"dialect"`
	Expression string             `yaml:"expression" json:"expression"`
	Descriptor *domain.Descriptor `yaml:"descriptor,omitempty" json:"descriptor,omitempty"`
	Next       []time.Time        `yaml:"next,omitempty" json:"next,omitempty"`
}

func (p *printer) printExpression(r expressionResult) error {
	switch p.format {
	case outputYAML:
		return p.yaml(r)
	case outputJSON:
		return p.json(r)
	}

	if r.Key != "" {
		fmt.Fprintf(p.w, "%s: ", r.Key)
	}
	color.New(color.Bold).Fprintf(p.w, "%q\n", r.Expression)
	if r.Descriptor != nil {
		fmt.Fprintf(p.w, "%s\n", describe(*r.Descriptor))
	}
	for _, t := range r.Next {
		fmt.Fprintf(p.w, "  %s\n", t.Format(time.RFC1123))
	}
	return nil
}

func (p *printer) printDescriptor(d domain.Descriptor) error {
	if p.format == outputJSON {
		return p.json(d)
	}
	return p.yaml(d)
}

func (p *printer) printTimes(times []time.Time) error {
	switch p.format {
	case outputYAML:
		return p.yaml(times)
	case outputJSON:
		return p.json(times)
	}
	if len(times) == 0 {
		color.New(color.FgYellow).Fprintln(p.w, "expression never fires")
		return nil
	}
	for _, t := range times {
		fmt.Fprintln(p.w, t.Format(time.RFC1123))
	}
	return nil
}

func (p *printer) printEntries(entries []store.Entry) error {
	switch p.format {
	case outputYAML:
		return p.yaml(entries)
	case outputJSON:
		return p.json(entries)
	}

	table := tablewriter.NewWriter(p.w)
	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Key", "Dialect", "Expression", "Updated"})
	if !color.NoColor {
		table.SetHeaderColor(
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		)
	}
	for _, e := range entries {
		table.Append([]string{e.Key, e.Dialect, fmt.Sprintf("%q", e.Expression), e.UpdatedAt.Format(time.RFC3339)})
	}
	table.Render()
	return nil
}

func (p *printer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func (p *printer) json(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describe renders d as a sentence, e.g. "Weekly on MON, WED at 18:00".
func describe(d domain.Descriptor) string {
	at := fmt.Sprintf("at %02d:%02d", d.Hours, d.Minutes)
	switch d.Type {
	case domain.Weekly:
		days := d.SortedDaysOfWeek()
		if len(days) == 0 {
			return "Weekly on no day"
		}
		names := make([]string, 0, len(days))
		for _, day := range days {
			names = append(names, domain.WeekdayTokens[day])
		}
		return fmt.Sprintf("Weekly on %s %s", strings.Join(names, ", "), at)
	case domain.Monthly:
		every := fmt.Sprintf("every %d month(s)", d.MonthRepeater)
		if d.DayFilter == domain.DayFilterWeekday {
			return fmt.Sprintf("Monthly on the %s %s %s %s", ordinalName(d.OrdCondition), weekdayName(d.DayOfWeek), every, at)
		}
		return fmt.Sprintf("Monthly on day %d %s %s", d.DayNumber, every, at)
	}
	return fmt.Sprintf("Daily %s", at)
}

func ordinalName(o domain.Ordinal) string {
	switch o {
	case domain.First:
		return "first"
	case domain.Second:
		return "second"
	case domain.Third:
		return "third"
	case domain.Last:
		return "last"
	}
	return string(o)
}

func weekdayName(weekday string) string {
	n, err := strconv.Atoi(weekday)
	if err != nil || n < domain.MinWeekday || n > domain.MaxWeekday {
		return weekday
	}
	return domain.WeekdayTokens[n]
}
