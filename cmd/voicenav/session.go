package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/voicenav/internal/config"
	"github.com/dshills/voicenav/internal/config/notify"
	"github.com/dshills/voicenav/internal/config/registry"
	"github.com/dshills/voicenav/internal/engine"
	"github.com/dshills/voicenav/internal/homophones"
	"github.com/dshills/voicenav/internal/nav"
	"github.com/dshills/voicenav/internal/pattern"
)

// session holds the settings and compiler shared by one command run.
type session struct {
	cfg      *config.Config
	compiler *pattern.Compiler
}

// openSession loads settings, applies the log level and loads homophones.
// With watch set, changes to the settings file are applied while the
// session is open.
func openSession(ctx context.Context, flags *globalFlags, watch bool) (*session, error) {
	cfg := config.New(config.WithPath(flags.configPath), config.WithWatcher(watch))

	cfg.SubscribePath(registry.LogLevel, func(ch notify.Change) {
		if s, ok := ch.NewValue.(string); ok {
			applyLogLevel(s)
		}
	})

	if err := cfg.Load(ctx); err != nil {
		_ = cfg.Close()
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if flags.logLevel != "" {
		if err := cfg.Set(registry.LogLevel, flags.logLevel); err != nil {
			_ = cfg.Close()
			return nil, err
		}
	}
	if level, ok := cfg.StringValue(registry.LogLevel); ok {
		applyLogLevel(level)
	}

	files, _ := cfg.Strings(registry.HomophoneFiles)
	store, err := homophones.Load(files...)
	if err != nil {
		_ = cfg.Close()
		return nil, err
	}
	logger.Debug("homophones loaded", "files", len(files), "groups", store.Len())

	return &session{
		cfg:      cfg,
		compiler: pattern.NewCompiler(nil, store),
	}, nil
}

func (s *session) Close() error {
	return s.cfg.Close()
}

// newEditor builds the host editor from the buffer flags. Initial offsets
// must be inside the text and on character boundaries.
func (s *session) newEditor(text string, bf *bufferFlags) (*engine.Editor, error) {
	var opts []engine.Option

	useSystem, _ := s.cfg.Bool(registry.SystemClipboard)
	if bf.systemClipboard || useSystem {
		if !engine.SystemClipboardAvailable() {
			return nil, fmt.Errorf("system clipboard is not available")
		}
		opts = append(opts, engine.WithClipboard(engine.SystemClipboard{}))
	}

	ed := engine.New(text, opts...)
	if bf.selection != "" {
		anchor, head, err := parseSelection(bf.selection)
		if err != nil {
			return nil, err
		}
		if err := ed.SetSelection(anchor, head); err != nil {
			return nil, fmt.Errorf("--select %s: %w", bf.selection, err)
		}
		return ed, nil
	}
	if err := ed.SetCursor(bf.cursor); err != nil {
		return nil, fmt.Errorf("--cursor %d: %w", bf.cursor, err)
	}
	return ed, nil
}

func (s *session) newNavigator(ed *engine.Editor) *nav.Navigator {
	return nav.NewNavigator(ed, s.cfg, nav.WithCompiler(s.compiler))
}

// applyLogLevel sets every package logger to level.
func applyLogLevel(level string) {
	l, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("invalid log level", "level", level)
		return
	}
	logger.SetLevel(l)
	nav.SetLogLevel(l)
	config.SetLogLevel(l)
}

// bufferFlags describe the text and the initial selection.
type bufferFlags struct {
	cursor          int
	selection       string
	write           bool
	systemClipboard bool
}

func (bf *bufferFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&bf.cursor, "cursor", 0, "Initial cursor byte offset")
	cmd.Flags().StringVar(&bf.selection, "select", "", "Initial selection as ANCHOR:HEAD byte offsets")
	cmd.Flags().BoolVar(&bf.write, "write", false, "Write the changed buffer back to the file")
	cmd.Flags().BoolVar(&bf.systemClipboard, "system-clipboard", false, "Use the system clipboard for cut and copy")
	cmd.MarkFlagsMutuallyExclusive("cursor", "select")
}

// parseSelection parses "ANCHOR:HEAD".
func parseSelection(s string) (anchor, head int, err error) {
	a, h, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("selection %q: expected ANCHOR:HEAD", s)
	}
	if anchor, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, fmt.Errorf("selection %q: anchor: %w", s, err)
	}
	if head, err = strconv.Atoi(strings.TrimSpace(h)); err != nil {
		return 0, 0, fmt.Errorf("selection %q: head: %w", s, err)
	}
	if anchor < 0 || head < 0 {
		return 0, 0, fmt.Errorf("selection %q: offsets must not be negative", s)
	}
	return anchor, head, nil
}

// readBuffer reads the file to navigate in.
func readBuffer(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	return string(data), info.Mode().Perm(), nil
}

// finish prints the selection and writes the buffer back when asked.
func finish(cmd *cobra.Command, path, original string, mode os.FileMode, ed *engine.Editor, bf *bufferFlags) error {
	out := cmd.OutOrStdout()

	sel := ed.Selection()
	text, err := ed.SelectedText()
	if err != nil {
		return err
	}
	if sel.IsEmpty() {
		fmt.Fprintf(out, "%s\n", sel)
	} else {
		fmt.Fprintf(out, "%s %q\n", sel, text)
	}

	if bf.write && ed.Text() != original {
		if err := os.WriteFile(path, []byte(ed.Text()), mode); err != nil {
			return err
		}
		logger.Info("buffer written", "path", path, "bytes", ed.Len())
	}
	return nil
}
