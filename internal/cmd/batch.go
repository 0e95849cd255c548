package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"lasso/internal/gateway"
)

const (
	// defaultBatchWorkers is the number of concurrent request workers.
	defaultBatchWorkers = 5
)

//nolint:gochecknoglobals // Cobra CLI pattern for command flag variables
var (
	batchConcurrency int
	batchRPS         float64
)

// batchTask represents one request line from the batch file.
type batchTask struct {
	line   int
	method string
	url    string
}

// batchResult contains the result of one batch request.
type batchResult struct {
	task    batchTask
	outcome gateway.Outcome
	err     error
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Issue many requests through the shared connection pool",
	Long: `Read one request per line ("METHOD URL") from FILE and issue them
concurrently. All workers share the process-wide connection pool; an
optional rate limit is applied on the caller side.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", defaultBatchWorkers,
		"number of concurrent request workers")
	batchCmd.Flags().Float64Var(&batchRPS, "rps", 0,
		"maximum requests per second (0 = unlimited)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = file.Close() }()

	tasks, err := parseBatchFile(file)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	results := executeBatch(cmd.Context(), tasks)

	failures := 0
	for _, result := range results {
		if result.err != nil {
			failures++
			logger.Error("Batch request failed",
				"line", result.task.line,
				"method", result.task.method,
				"url", result.task.url,
				"error", result.err)
			continue
		}
		if err := printOutcome(cmd.OutOrStdout(), result.outcome); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d requests failed", failures, len(tasks))
	}
	return nil
}

// parseBatchFile reads "METHOD URL" lines, skipping blanks and comments.
func parseBatchFile(r io.Reader) ([]batchTask, error) {
	var tasks []batchTask
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"METHOD URL\", got %q", line, text)
		}
		tasks = append(tasks, batchTask{line: line, method: fields[0], url: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return tasks, nil
}

// executeBatch fans tasks out to a fixed worker pool. Rate limiting is
// caller-side policy; the gateway itself never throttles.
func executeBatch(ctx context.Context, tasks []batchTask) []batchResult {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if batchRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(batchRPS), 1)
	}

	workers := batchConcurrency
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	taskCh := make(chan int)
	results := make([]batchResult, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskCh {
				task := tasks[i]
				if err := limiter.Wait(ctx); err != nil {
					results[i] = batchResult{task: task, err: err}
					continue
				}

				outcome, err := gw.Do(ctx, gateway.Call{
					URL:     cfg.ResolveURL(task.url),
					Method:  task.method,
					Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
					Headers: cfg.Headers,
				})
				results[i] = batchResult{task: task, outcome: outcome, err: err}
			}
		}()
	}

	for i := range tasks {
		taskCh <- i
	}
	close(taskCh)
	wg.Wait()

	return results
}
