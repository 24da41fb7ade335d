package module

import (
	"context"

	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/repo"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/view"
)

// ShowCommit renders a commit's overview synchronously and streams the
// rest of the diff in over a buffered channel without blocking input
// (SPEC_FULL.md §4.2 expansion).
type ShowCommit struct {
	Repo    repo.Repository
	handle  repo.Repo
	options repo.DiffOptions

	overview   repo.CommitInfo
	haveOverview bool
	files        []repo.FileStatusInfo
	hunks        []repo.DeltaInfo
	diffLines    []repo.LineInfo
	showFullDiff bool
	scrollTop    int

	parts <-chan repo.DiffPart
	errs  <-chan error
}

func NewShowCommit(r repo.Repository, h repo.Repo) *ShowCommit {
	return &ShowCommit{Repo: r, handle: h}
}

func (s *ShowCommit) Activate(prev State) ProcessResult { return noResult() }

// Start kicks off the asynchronous diff load for hash (spec §4.2: "the
// diff-load request is asynchronous"). Activate does not start a load,
// and the Router never calls Start.
func (s *ShowCommit) Start(ctx context.Context, hash string) {
	s.haveOverview = false
	s.files = nil
	s.hunks = nil
	s.diffLines = nil
	s.parts, s.errs = s.Repo.LoadCommitDiff(ctx, s.handle, hash, s.options)
}

// Drain pulls any DiffParts and errors currently available without
// blocking, called once per Process-thread tick (spec §4.2: "partial
// progress must render without blocking input").
func (s *ShowCommit) Drain() {
	for {
		select {
		case p, ok := <-s.parts:
			if !ok {
				s.parts = nil
				return
			}
			s.apply(p)
		default:
			return
		}
	}
}

func (s *ShowCommit) apply(p repo.DiffPart) {
	switch p.Kind {
	case repo.DiffCommit:
		s.overview = p.Commit
		s.haveOverview = true
	case repo.DiffFileStatus:
		s.files = append(s.files, p.FileStatus)
	case repo.DiffDelta:
		s.hunks = append(s.hunks, p.Delta)
	case repo.DiffLine:
		s.diffLines = append(s.diffLines, p.Line)
	}
}

func (s *ShowCommit) HandleEvent(ev events.Event, tf *todo.TodoFile) ProcessResult {
	if ev.Kind == events.KindMeta {
		switch ev.Meta {
		case events.MetaToggleDiffView:
			s.showFullDiff = !s.showFullDiff
		case events.MetaScrollUp:
			if s.scrollTop > 0 {
				s.scrollTop--
			}
		case events.MetaScrollDown:
			s.scrollTop++
		case events.MetaAbort:
			return stateResult(StateList)
		}
		return noResult()
	}
	if ev.Kind == events.KindKey && ev.KeyCode == events.KeyEsc {
		return stateResult(StateList)
	}
	return noResult()
}

func (s *ShowCommit) BuildViewData(tf *todo.TodoFile) *view.ViewData {
	s.Drain()

	var leading []view.ViewLine
	if s.haveOverview {
		leading = append(leading,
			view.NewViewLine(view.NewSegment(s.overview.Hash+" "+s.overview.Subject)),
			view.NewViewLine(view.NewSegment(s.overview.Author+" "+s.overview.Date)),
		)
	} else {
		leading = append(leading, view.NewViewLine(view.NewSegment("loading commit...")))
	}

	var body []view.ViewLine
	for _, f := range s.files {
		body = append(body, view.NewViewLine(view.NewSegment(f.ChangeKind+" "+f.Path)))
	}
	if s.showFullDiff {
		for _, h := range s.hunks {
			body = append(body, view.NewViewLine(view.NewSegment(h.Header)))
		}
		for _, l := range s.diffLines {
			color := view.ColorDefault
			switch l.Origin {
			case '+':
				color = view.ColorGreen
			case '-':
				color = view.ColorRed
			}
			body = append(body, view.NewViewLine(view.LineSegment{Text: string(l.Origin) + l.Content, Color: color}))
		}
	}

	row := s.scrollTop
	return &view.ViewData{
		Name:       "show-commit",
		Version:    tf.Version,
		Leading:    leading,
		Body:       body,
		VisibleRow: &row,
	}
}
