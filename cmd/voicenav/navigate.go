package main

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/dshills/voicenav/internal/nav"
)

// Target kinds accepted by --kind.
const (
	kindString  = "string"
	kindWord    = "word"
	kindText    = "text"
	kindName    = "name"
	kindPattern = "pattern"
)

type navigateFlags struct {
	buffer bufferFlags

	kind       string
	action     string
	direction  string
	anchor     string
	class      string
	occurrence int
}

func newNavigateCmd(flags *globalFlags) *cobra.Command {
	nf := &navigateFlags{}

	cmd := &cobra.Command{
		Use:   "navigate FILE TARGET",
		Short: "Navigate to a target in a file",
		Long: heredoc.Doc(`
			Navigate loads FILE, places the cursor, finds the requested occurrence
			of TARGET in the given direction and performs the action there.

			The resulting selection is printed as Cursor(N) or Selection(A→B)
			followed by the selected text. Cut and copy also print the clipboard.
		`),
		Example: heredoc.Doc(`
			# select the second "cat" to the left of offset 40
			voicenav navigate notes.txt cat --cursor 40 --direction left --occurrence 2 --action select

			# delete the argument list after "run", writing the file back
			voicenav navigate main.go run --anchor after --class parens --action delete --write

			# copy a word or its homophones
			voicenav navigate letter.txt their --kind word --action copy
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNavigate(cmd, flags, nf, args[0], args[1])
		},
	}

	nf.buffer.register(cmd)
	cmd.Flags().StringVar(&nf.kind, "kind", kindString, "Target kind: string, word, text, name or pattern")
	cmd.Flags().StringVarP(&nf.action, "action", "a", "go", "Action: go, extend, select, delete, cut, copy")
	cmd.Flags().StringVarP(&nf.direction, "direction", "d", "right", "Direction: up, down, left, right")
	cmd.Flags().StringVar(&nf.anchor, "anchor", "", "Anchor: before or after the match")
	cmd.Flags().StringVar(&nf.class, "class", "", "Class or expression used by --anchor")
	cmd.Flags().IntVarP(&nf.occurrence, "occurrence", "n", 1, "Occurrence counted outward from the cursor")

	return cmd
}

// request parses the spoken fields into a request without a pattern.
func (nf *navigateFlags) request() (nav.Request, error) {
	action, err := nav.ParseAction(nf.action)
	if err != nil {
		return nav.Request{}, err
	}
	direction, err := nav.ParseDirection(nf.direction)
	if err != nil {
		return nav.Request{}, err
	}
	anchor, err := nav.ParseAnchorMode(nf.anchor)
	if err != nil {
		return nav.Request{}, err
	}
	if nf.occurrence < 1 {
		return nav.Request{}, fmt.Errorf("%w: %d", nav.ErrInvalidOccurrence, nf.occurrence)
	}
	return nav.Request{
		Action:      action,
		Direction:   direction,
		Anchor:      anchor,
		TargetClass: nf.class,
		Occurrence:  nf.occurrence,
	}, nil
}

func runNavigate(cmd *cobra.Command, flags *globalFlags, nf *navigateFlags, path, target string) error {
	req, err := nf.request()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := openSession(ctx, flags, false)
	if err != nil {
		return err
	}
	defer s.Close()

	text, mode, err := readBuffer(path)
	if err != nil {
		return err
	}
	ed, err := s.newEditor(text, &nf.buffer)
	if err != nil {
		return err
	}
	n := s.newNavigator(ed)

	switch strings.ToLower(nf.kind) {
	case kindString:
		err = n.NavigateByString(ctx, req, target)
	case kindWord:
		err = n.NavigateByWord(ctx, req, target)
	case kindText:
		err = n.NavigateByText(ctx, req, target)
	case kindName:
		err = n.NavigateByName(ctx, req, target)
	case kindPattern:
		t, cerr := n.Compiler().Expression(target)
		if cerr != nil {
			return fmt.Errorf("%w: %w", nav.ErrInvalidPattern, cerr)
		}
		req.Pattern = t
		err = n.Navigate(ctx, req)
	default:
		return fmt.Errorf("unknown target kind %q", nf.kind)
	}
	if err != nil {
		return err
	}

	if err := finish(cmd, path, text, mode, ed, &nf.buffer); err != nil {
		return err
	}
	if req.Action == nav.ActionCut || req.Action == nav.ActionCopy {
		clip, err := ed.Clipboard().ReadAll()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "clipboard %q\n", clip)
	}
	return nil
}
