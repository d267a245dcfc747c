package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	apiv1 "github.com/SanjoDeundiak/process-metrics/api/v1"
	"github.com/spf13/cobra"
)

const promptText = "Enter metrics command: "

func newMetricsCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "metrics [-- <command> [args...]]",
		Short: "Run a command on the server and print its resource usage",
		Long: "Run a command on the server and print its resource usage after the observation window.\n" +
			"Without arguments the command is read from a prompt on stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			if len(args) == 0 {
				line, err := promptCommand(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				command = line
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			conn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewMetricsServiceClient(conn)
			resp, err := client.ReqMetrics(ctx, &apiv1.MetricsRequest{Command: command})
			if err != nil {
				return err
			}
			printMetricsTable(cmd.OutOrStdout(), command, resp)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout, must exceed the server observation window")

	return cmd
}

// promptCommand reads one line from in. A final line without a newline is accepted.
func promptCommand(in io.Reader, out io.Writer) (string, error) {
	_, _ = fmt.Fprint(out, promptText)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read command: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", errors.New("no command entered")
	}
	return strings.TrimSpace(line), nil
}
