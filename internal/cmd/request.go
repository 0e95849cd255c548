package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lasso/internal/gateway"
)

//nolint:gochecknoglobals // Cobra CLI pattern for command flag variables
var (
	paramFlags  []string
	headerFlags []string
	timeoutSecs int
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Issue a GET request",
	Long:  `Issue a GET request; parameters are serialized into the URL query string.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodGet, args[0])
	},
}

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Issue a POST request",
	Long:  `Issue a POST request; parameters are sent as a form-encoded body.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodPost, args[0])
	},
}

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Issue a PUT request",
	Long:  `Issue a PUT request; parameters are attached as query parameters.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodPut, args[0])
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete URL",
	Short: "Issue a DELETE request",
	Long:  `Issue a DELETE request; only headers and the timeout apply.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodDelete, args[0])
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	for _, c := range []*cobra.Command{getCmd, postCmd, putCmd, deleteCmd} {
		c.Flags().StringArrayVarP(&paramFlags, "param", "p", nil,
			"request parameter as key=value; repeat a key to form a sequence; a bare key is dropped")
		c.Flags().StringArrayVarP(&headerFlags, "header", "H", nil,
			"request header as key:value")
		c.Flags().IntVarP(&timeoutSecs, "timeout", "t", 0,
			"request timeout in seconds (default from config, then 10)")
		rootCmd.AddCommand(c)
	}
}

func runRequest(cmd *cobra.Command, method, url string) error {
	params, err := parseParams(paramFlags)
	if err != nil {
		return err
	}

	headers, err := parseHeaders(headerFlags)
	if err != nil {
		return err
	}
	// Config defaults first, flag values override.
	merged := make(map[string]string, len(cfg.Headers)+len(headers))
	for k, v := range cfg.Headers {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}

	timeout := time.Duration(timeoutSecs) * time.Second
	if timeoutSecs <= 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	outcome, err := gw.Do(cmd.Context(), gateway.Call{
		URL:     cfg.ResolveURL(url),
		Method:  method,
		Timeout: timeout,
		Params:  params,
		Headers: merged,
	})
	if err != nil {
		return err
	}

	return printOutcome(cmd.OutOrStdout(), outcome)
}

// parseParams converts --param flags into a parameter mapping. A repeated
// key accumulates a sequence; "key=" yields an empty string; a bare key
// with no "=" yields a null value, which the encoder drops.
func parseParams(flags []string) (gateway.Params, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	params := gateway.Params{}
	for _, flag := range flags {
		key, value, found := strings.Cut(flag, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid parameter %q: empty key", flag)
		}
		if !found {
			if _, exists := params[key]; !exists {
				params[key] = nil
			}
			continue
		}

		switch existing := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{existing, value}
		case []string:
			params[key] = append(existing, value)
		}
	}
	return params, nil
}

// parseHeaders converts --header flags ("Key: Value") into a header map.
func parseHeaders(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	headers := make(map[string]string, len(flags))
	for _, flag := range flags {
		key, value, found := strings.Cut(flag, ":")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid header %q: expected key:value", flag)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}
