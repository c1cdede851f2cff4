package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/oboegaki/receiptext/internal/extraction"
	"github.com/oboegaki/receiptext/internal/transcript"
)

const jobStoreTTL = time.Hour

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Extract fields from every transcript in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := opts.newExtractor()
			if err != nil {
				return err
			}

			paths, err := collectTranscripts(args[0])
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no transcripts found under %s", args[0])
			}

			store := extraction.NewJobStore(jobStoreTTL)
			defer store.Stop()

			queue := make(chan *extraction.Job)
			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for job := range queue {
						runJob(ex, store, job)
					}
				}()
			}

			for _, path := range paths {
				job := extraction.NewJob(path)
				if err := store.Create(job); err != nil {
					return err
				}
				queue <- job
			}
			close(queue)
			wg.Wait()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			for _, job := range store.List() {
				out := extractOutput{Source: job.Source, Error: job.Err}
				if job.Result != nil {
					out.Date = job.Result.Date
					out.Amount = job.Result.Amount
					out.Notes = job.Result.Notes
				}
				if err := enc.Encode(out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent extraction workers")
	return cmd
}

// runJob loads and extracts one transcript, recording the outcome.
// Extraction is pure, so workers need no coordination beyond the store.
func runJob(ex *extraction.Extractor, store *extraction.JobStore, job *extraction.Job) {
	job.Status = extraction.JobRunning
	_ = store.Update(job)

	tr, err := transcript.Load(job.Source)
	if err != nil {
		slog.Error("load transcript", "path", job.Source, "err", err)
		job.Status = extraction.JobFailed
		job.Err = err.Error()
		_ = store.Update(job)
		return
	}

	res := ex.Extract(tr.Text)
	job.Status = extraction.JobDone
	job.Result = &res
	_ = store.Update(job)
}

// collectTranscripts walks dir for supported transcript files.
func collectTranscripts(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".text", ".pdf":
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
