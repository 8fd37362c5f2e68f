package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/welcome"
	"github.com/3-lines-studio/welcome/internal/adapters/env"
)

var ErrUnhealthy = errors.New("unhealthy")

type healthcheckOptions struct {
	host    string
	port    string
	timeout time.Duration
}

func NewCmdHealthcheck(root *rootOptions) *cobra.Command {
	opts := &healthcheckOptions{}

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe a running server; exits non-zero when it is unhealthy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := root.cfg.Port
			overrideFromFlag(cmd.Flags(), "port", &port)
			return Probe(opts.host, port, opts.timeout)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "localhost", "Host to probe")
	cmd.Flags().StringVarP(&opts.port, "port", "p", env.DefaultPort, "Port to probe (overrides $PORT)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Second, "Request timeout")

	return cmd
}

func Probe(host, port string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}

	url := "http://" + net.JoinHostPort(host, port) + welcome.HealthPath
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrUnhealthy, url, resp.StatusCode)
	}
	return nil
}
