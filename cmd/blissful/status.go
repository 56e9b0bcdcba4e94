// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/blissfulweddings/blissful/internal/config"
)

// checkTimeout bounds each health check.
const checkTimeout = 2 * time.Second

// CheckStatus holds the result of one health check.
type CheckStatus struct {
	Check  string `json:"check"`
	URL    string `json:"url"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// statusConfig holds configuration for the status command.
type statusConfig struct {
	metricsAddr string
	jsonOutput  bool
	client      *http.Client
}

// NewStatusCmd creates the status subcommand.
func NewStatusCmd() *cobra.Command {
	return newStatusCmd(nil)
}

func newStatusCmd(client *http.Client) *cobra.Command {
	cfg := &statusConfig{client: client}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show health of a running blissful server",
		Long: `Check the liveness and readiness endpoints of a running server's
observability listener. Exits non-zero when the server is not ready.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, cfg)
		},
	}

	defaultAddr, _ := config.Defaults()["metrics.addr"].(string)
	cmd.Flags().StringVar(&cfg.metricsAddr, "metrics-addr", defaultAddr, "observability listener address")
	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output status as JSON")

	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, cfg *statusConfig) error {
	client := cfg.client
	if client == nil {
		client = &http.Client{Timeout: checkTimeout}
	}

	base := cfg.metricsAddr
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	base = strings.TrimSuffix(base, "/")

	statuses := []CheckStatus{
		check(cmd.Context(), client, "liveness", base+"/healthz/liveness"),
		check(cmd.Context(), client, "readiness", base+"/healthz/readiness"),
	}

	var output string
	if cfg.jsonOutput {
		data, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return oops.Code("STATUS_FORMAT_FAILED").Wrap(err)
		}
		output = string(data)
	} else {
		output = formatStatusTable(statuses)
	}
	cmd.Println(output)

	for _, s := range statuses {
		if !s.OK {
			return oops.Code("SERVER_NOT_READY").With("check", s.Check).Errorf("%s check failed", s.Check)
		}
	}
	return nil
}

// check issues a GET to url and reports whether it answered 200.
func check(ctx context.Context, client *http.Client, name, url string) CheckStatus {
	status := CheckStatus{Check: name, URL: url}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		status.Error = fmt.Sprintf("invalid url: %v", err)
		return status
	}
	resp, err := client.Do(req)
	if err != nil {
		status.Error = fmt.Sprintf("failed to connect: %v", err)
		return status
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	status.Detail = strings.TrimSpace(string(body))
	status.OK = resp.StatusCode == http.StatusOK
	if !status.OK {
		status.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return status
}

// formatStatusTable formats the checks as a human-readable table.
func formatStatusTable(statuses []CheckStatus) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "CHECK\tSTATUS\tDETAIL")
	_, _ = fmt.Fprintln(w, "-----\t------\t------")

	for _, s := range statuses {
		state := "ok"
		if !s.OK {
			state = "failing"
		}
		detail := s.Detail
		if s.Error != "" {
			detail = s.Error
			if s.Detail != "" {
				detail += ": " + s.Detail
			}
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.Check, state, detail)
	}

	_ = w.Flush()
	return buf.String()
}
