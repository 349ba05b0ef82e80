package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vskvj3/vessel/internal/client"
	"github.com/vskvj3/vessel/internal/rpc"
)

const dialTimeout = 5 * time.Second

var (
	addr     string
	grpcAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "vessel-cli",
		Short:        "Command line client for the vessel container server",
		SilenceUsage: true,
		RunE:         runRepl,
	}
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "localhost:6379", "TCP address of the server")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}

	execCmd := &cobra.Command{
		Use:   "exec COMMAND [args...]",
		Short: "Run a single command over TCP",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := client.ParseCommand(strings.Join(args, " "))
			if err != nil {
				return err
			}
			c, err := client.Dial(addr, dialTimeout)
			if err != nil {
				return err
			}
			defer c.Close()

			response, err := c.Do(request)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), client.FormatResponse(response))
			return nil
		},
	}

	grpcCmd := &cobra.Command{
		Use:   "grpc COMMAND [args...]",
		Short: "Run a single command over gRPC",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := client.ParseCommand(strings.Join(args, " "))
			if err != nil {
				return err
			}
			c, err := rpc.NewClient(grpcAddr)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), dialTimeout)
			defer cancel()
			response, err := c.Execute(ctx, request)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), client.FormatResponse(response))
			return nil
		},
	}
	grpcCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "localhost:7379", "gRPC address of the server")

	rootCmd.AddCommand(replCmd, execCmd, grpcCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	c, err := client.Dial(addr, dialTimeout)
	if err != nil {
		return err
	}
	defer c.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Connected to server. Type commands (e.g., PING, LADDLAST key value, AGET key index) and press Enter.")
	reader := bufio.NewReader(cmd.InOrStdin())

	for {
		fmt.Fprint(out, ">> ")
		// Read user input
		input, err := reader.ReadString('\n')
		if err != nil {
			// EOF ends the session
			fmt.Fprintln(out)
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "quit") || strings.EqualFold(input, "exit") {
			return nil
		}

		// Parse and validate the input
		request, err := client.ParseCommand(input)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}

		response, err := c.Do(request)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, client.FormatResponse(response))
	}
}
