package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/reusee/taibf/histories"
	"gopkg.in/yaml.v3"
)

type report struct {
	ID          int64     `yaml:"id,omitempty"`
	Source      string    `yaml:"source"`
	Hash        string    `yaml:"hash"`
	Status      string    `yaml:"status"`
	Error       string    `yaml:"error,omitempty"`
	Steps       int64     `yaml:"steps"`
	Pointer     int       `yaml:"pointer"`
	Cells       int       `yaml:"cells"`
	OutputBytes int64     `yaml:"output_bytes"`
	StartedAt   time.Time `yaml:"started_at"`
	Duration    string    `yaml:"duration"`
}

func toReport(run *histories.Run) report {
	return report{
		ID:          run.ID,
		Source:      run.Source,
		Hash:        run.Hash,
		Status:      string(run.Status),
		Error:       run.Error,
		Steps:       run.Steps,
		Pointer:     run.Pointer,
		Cells:       run.Cells,
		OutputBytes: run.OutputBytes,
		StartedAt:   run.StartedAt,
		Duration:    run.Duration.String(),
	}
}

func writeReport(w io.Writer, run *histories.Run) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(toReport(run)); err != nil {
		return err
	}
	return encoder.Close()
}

var ErrHistoryDisabled = errors.New("history disabled, set -history-dsn or history.dsn")

func listHistory(ctx context.Context, getRecorder histories.GetRecorder, n int, w io.Writer) error {
	recorder, err := getRecorder(ctx)
	if err != nil {
		return err
	}
	if recorder == nil {
		return ErrHistoryDisabled
	}
	runs, err := recorder.Recent(ctx, n)
	if err != nil {
		return err
	}
	reports := make([]report, 0, len(runs))
	for i := range runs {
		reports = append(reports, toReport(&runs[i]))
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(reports); err != nil {
		return err
	}
	return encoder.Close()
}
