package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kolah/asyncmodel/asyncapi"
	"github.com/kolah/asyncmodel/internal/config"
	"github.com/kolah/asyncmodel/internal/loader"
	"github.com/kolah/asyncmodel/internal/render"
	"github.com/spf13/cobra"
)

// session carries what every inspect command needs: the resolved config,
// the loaded document and where to write.
type session struct {
	cfg    *config.Config
	doc    *asyncapi.Document
	logger *slog.Logger
	out    io.Writer
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	start := time.Now()
	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		logger.Warn("spec warning", "spec", cfg.Spec, "detail", w)
	}
	logger.Debug("loaded spec",
		"spec", cfg.Spec,
		"asyncapi", result.Version,
		"bytes", len(result.RawData),
		"elapsed", time.Since(start),
	)

	return &session{
		cfg:    cfg,
		doc:    result.Document,
		logger: logger,
		out:    cmd.OutOrStdout(),
	}, nil
}

func (s *session) format() render.Format {
	return render.Format(s.cfg.Output.Format)
}

func (s *session) structured() bool {
	return s.format() != render.FormatText
}

// fields writes label/value pairs as a two column table, skipping empty
// values, followed by the model's extensions when they were asked for.
func (s *session) fields(pairs [][2]string, m asyncapi.Model) error {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		rows = append(rows, []string{p[0], p[1]})
	}
	if s.cfg.Output.Extensions && m != nil {
		for k, v := range m.Extensions().FromOldest() {
			rows = append(rows, []string{k, render.Inline(v)})
		}
	}
	return render.Table(s.out, []string{"FIELD", "VALUE"}, rows)
}

func runWith(fn func(s *session, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		return fn(s, args)
	}
}
