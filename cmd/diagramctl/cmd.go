package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/otey247/diagram-creator/internal/client"
	"github.com/otey247/diagram-creator/internal/templates"
	"github.com/otey247/diagram-creator/internal/view"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

type rootOptions struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "diagramctl",
		Short:         "Generate Mermaid diagrams from a plain-language description",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("DIAGRAM_SERVER")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", server, "diagram-creator server URL (env DIAGRAM_SERVER)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout, 0 waits for the server")

	cmd.AddCommand(newAskCmd(opts), newTemplatesCmd(opts), newBenchCmd(opts))
	return cmd
}

func newAskCmd(root *rootOptions) *cobra.Command {
	var (
		template string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "ask <subject...>",
		Short: "Generate a diagram and write its markup to a file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := templates.Parse(template)
			if err != nil {
				return err
			}

			v := view.New(client.New(root.server, root.timeout), nil)
			v.Select(id)
			v.SetInput(strings.Join(args, " "))

			fmt.Fprintf(cmd.ErrOrStderr(), "%s...\n", v.ButtonLabel())
			if !v.Submit(cmd.Context()) {
				return fmt.Errorf("nothing to submit")
			}

			st := v.State()
			if st.Phase != view.Shown {
				return fmt.Errorf("%s", st.Message)
			}

			if out == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), st.Chart)
				return err
			}
			if out == "" {
				out = v.Name() + ".mmd"
			}
			if err := os.WriteFile(out, []byte(st.Chart), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", string(templates.Default), "diagram template id")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default <subject>.mmd)")
	return cmd
}

func newTemplatesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the templates the server supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := client.New(root.server, root.timeout).Templates(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL")
			for _, t := range list {
				fmt.Fprintf(tw, "%s\t%s\n", t.ID, t.Label)
			}
			return tw.Flush()
		},
	}
}
