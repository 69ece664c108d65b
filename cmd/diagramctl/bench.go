package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/otey247/diagram-creator/internal/client"
	"github.com/otey247/diagram-creator/internal/models"
	"github.com/otey247/diagram-creator/internal/templates"
	"github.com/spf13/cobra"
)

var defaultSubjects = []string{
	"an online checkout with card payments and refunds",
	"onboarding a new engineer in a small startup",
}

type benchResult struct {
	Template templates.ID
	Subject  string
	Duration time.Duration
	Size     int
	Err      error
}

type agg struct {
	Count      int
	Errors     int
	Total      time.Duration
	TotalBytes int
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	var (
		subjects []string
		only     []string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time one generation per template and subject, print a Markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := benchTemplates(only)
			if err != nil {
				return err
			}

			c := client.New(root.server, root.timeout)
			var results []benchResult
			for _, id := range ids {
				for _, subject := range subjects {
					res := benchOne(cmd.Context(), c, id, subject)
					if res.Err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "ERR %s %q: %v\n", id, subject, res.Err)
					} else {
						fmt.Fprintf(cmd.ErrOrStderr(), "OK %s %v\n", id, res.Duration.Round(time.Millisecond))
					}
					results = append(results, res)
				}
			}

			printMarkdown(cmd.OutOrStdout(), ids, results)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&subjects, "subject", defaultSubjects, "subjects to generate, repeatable")
	cmd.Flags().StringSliceVarP(&only, "template", "t", nil, "limit to these template ids (default all)")
	return cmd
}

func benchTemplates(only []string) ([]templates.ID, error) {
	if len(only) == 0 {
		var ids []templates.ID
		for _, t := range templates.List() {
			ids = append(ids, t.ID)
		}
		return ids, nil
	}

	ids := make([]templates.ID, 0, len(only))
	for _, s := range only {
		id, err := templates.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func benchOne(ctx context.Context, c *client.Client, id templates.ID, subject string) benchResult {
	start := time.Now()
	resp, err := c.Ask(ctx, models.AskRequest{Input: subject, SelectedTemplate: string(id)})
	res := benchResult{
		Template: id,
		Subject:  subject,
		Duration: time.Since(start),
		Err:      err,
	}
	if err == nil {
		res.Size = len(resp.Text)
		if resp.Text == "" {
			res.Err = fmt.Errorf("empty text")
		}
	}
	return res
}

func aggregate(results []benchResult) map[templates.ID]agg {
	m := map[templates.ID]agg{}
	for _, r := range results {
		a := m[r.Template]
		if r.Err != nil {
			a.Errors++
			m[r.Template] = a
			continue
		}
		a.Count++
		a.Total += r.Duration
		a.TotalBytes += r.Size
		m[r.Template] = a
	}
	return m
}

func printMarkdown(w io.Writer, order []templates.ID, results []benchResult) {
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Template | Requests | Errors | Avg Time | Total Time | Avg Size |")
	fmt.Fprintln(w, "|----------|----------|--------|----------|------------|----------|")

	m := aggregate(results)

	var (
		totalCount    int
		totalErrors   int
		totalDuration time.Duration
		totalBytes    int
	)

	for _, id := range order {
		a, ok := m[id]
		if !ok {
			continue
		}
		avg, avgSize := time.Duration(0), 0
		if a.Count > 0 {
			avg = a.Total / time.Duration(a.Count)
			avgSize = a.TotalBytes / a.Count
		}
		fmt.Fprintf(w, "| %s | %d | %d | %v | %v | %s |\n",
			id,
			a.Count,
			a.Errors,
			avg.Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			humanBytes(avgSize),
		)
		totalCount += a.Count
		totalErrors += a.Errors
		totalDuration += a.Total
		totalBytes += a.TotalBytes
	}

	if totalCount > 0 {
		fmt.Fprintf(w, "| **ALL** | %d | %d | %v | %v | %s |\n",
			totalCount,
			totalErrors,
			(totalDuration / time.Duration(totalCount)).Round(time.Millisecond),
			totalDuration.Round(time.Millisecond),
			humanBytes(totalBytes/totalCount),
		)
	}
}

func humanBytes(size int) string {
	const KB = 1024
	if size >= KB {
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	}
	return fmt.Sprintf("%d B", size)
}
