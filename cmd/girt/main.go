// Command girt is an interactive terminal editor for a rebase todo file
// (spec §1-§2): it loads the file named on the command line, lets the
// user reorder, reword, and otherwise edit the planned rebase, then
// writes the result back and exits with one of seven documented statuses.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/events"
	"github.com/akavel/girt/internal/logging"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/render"
	"github.com/akavel/girt/internal/runtime"
	"github.com/akavel/girt/internal/terminal"
	"github.com/akavel/girt/internal/todo"
)

func init() {
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: girt [OPTIONS] <todo-file>

girt is an interactive terminal editor for a git rebase --interactive
todo file. Point it at the file git hands your configured editor and it
opens a full-screen UI for reordering, rewording, squashing, dropping,
and otherwise rewriting the planned rebase before git continues.

KEYS

- Up/Down, k/j         - move the cursor
- Ctrl-Up/Ctrl-Down, K/J - swap the selected line with its neighbor
- p/r/e/s/f/d/b        - pick/reword/edit/squash/fixup/drop/break
- v                    - toggle visual range selection
- I                    - insert a new line (exec/label/reset/merge/update-ref/break)
- Delete, Ctrl-D       - delete / duplicate the selection
- Ctrl-Z, Ctrl-Y       - undo / redo
- !                    - open the todo file in an external editor
- /, n, N              - search, next match, previous match
- w, W                 - finish the rebase / finish, skipping confirmation
- q, Q                 - abort / abort without confirmation

OPTIONS
`)
		pflag.PrintDefaults()
	}
}

var (
	debugMode  = pflag.Bool("debug", false, "debug mode")
	noColors   = pflag.Bool("no-colors", false, "has no effect: interface colors are always drawn")
	undoLimit  = pflag.Int("undo-limit", config.DefaultUndoLimit, "maximum number of undo/redo history entries")
	commentCh  = pflag.String("comment-char", string(config.DefaultCommentChar), "character marking a comment line in the todo file")
	editorFlag = pflag.String("editor", config.DefaultEditor, "`command` used to open the todo file for free-form editing")
	postLine   = pflag.String("post-modified-line-command", "", "`command` invoked with a line's full text after it is edited")
)

func main() {
	pflag.Parse()

	cfg := config.New()
	if *debugMode {
		cfg.Debug = true
	}
	if *noColors {
		cfg.NoColors = true
	}
	if *undoLimit != config.DefaultUndoLimit {
		cfg.UndoLimit = *undoLimit
	}
	if *commentCh != string(config.DefaultCommentChar) {
		if len(*commentCh) != 1 {
			die(module.ExitConfigError, "comment-char must be exactly one byte")
		}
		cfg.CommentChar = (*commentCh)[0]
	}
	if *editorFlag != config.DefaultEditor {
		cfg.Editor = *editorFlag
	}
	if *postLine != "" {
		cfg.PostModifiedLineCommand = *postLine
	}

	if err := logging.Init(cfg.Debug, cfg.DebugLog); err != nil {
		die(module.ExitConfigError, err.Error())
	}

	args := pflag.Args()
	if len(args) != 1 {
		pflag.Usage()
		die(module.ExitConfigError, "expected exactly one positional argument: the todo file path")
	}
	cfg.TodoFilePath = args[0]

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		die(module.ExitConfigError, "girt requires an interactive terminal on standard output")
	}

	tf := todo.NewTodoFile(cfg.TodoFilePath, cfg.CommentChar, cfg.UndoLimit)
	if cfg.PostModifiedLineCommand != "" {
		tf.PostWriteLine = func(text string) error {
			return runPostModifiedLineCommand(cfg.PostModifiedLineCommand, text)
		}
	}
	if err := tf.Load(); err != nil {
		die(module.ExitFileReadError, err.Error())
	}

	tui, err := terminal.New()
	if err != nil {
		die(module.ExitConfigError, err.Error())
	}

	kb := events.WithOverrides(cfg.KeyBindings)
	confirmKB := events.ConfirmKeyBindings()
	router := module.NewRouter(map[module.State]module.Module{
		module.StateList:            module.NewList(kb, cfg.AutoSelectNext),
		module.StateConfirmAbort:    module.NewConfirm(confirmKB, module.ConfirmAbortKind),
		module.StateConfirmRebase:   module.NewConfirm(confirmKB, module.ConfirmRebaseKind),
		module.StateExternalEditor:  module.NewExternalEditor(cfg.Editor),
		module.StateInsert:          module.NewInsert(),
		module.StateError:           module.NewError(""),
		module.StateWindowSizeError: module.NewWindowSizeError(),
		// StateShowCommit is intentionally unwired: it needs a real
		// repo.Repository, and girt does not embed a VCS (spec §4.2,
		// Non-goals).
	})
	// Key translation is mode-scoped (internal/module.Router.SetBindings):
	// List gets its own movement/action table; Confirm, ExternalEditor,
	// Insert, and Error see raw key events and decide for themselves, so
	// none of their single-ASCII keys can be shadowed by an unrelated
	// List binding on the same physical key.
	router.SetBindings(module.StateList, kb)

	w, h := tui.Size()
	slice := render.New(w, h)
	queue := events.NewQueue(256)

	rt := runtime.New()
	view := runtime.NewView(tui, slice)
	input := runtime.NewInput(tui, queue)
	proc := runtime.NewProcess(queue, router, tf, view, nil)
	proc.OnDone = func() {
		view.Send(runtime.ViewAction{Kind: runtime.ViewStop})
		rt.End()
	}

	rt.Install(view)
	rt.Install(input)
	rt.Install(proc)

	view.Send(runtime.ViewAction{Kind: runtime.ViewStart})
	queue.Push(events.Resize(w, h))

	runErr := rt.Join()
	if runErr != nil {
		tui.End()
		die(module.ExitStateError, runErr.Error())
	}

	status := router.ExitStatus
	if status == module.ExitNone {
		status = module.ExitStateError
	}
	if status == module.ExitGood || status == module.ExitAbort {
		if err := tf.Write(); err != nil {
			die(module.ExitFileWriteError, err.Error())
		}
	}
	os.Exit(int(status))
}

func runPostModifiedLineCommand(template, lineText string) error {
	argv := append(strings.Fields(template), lineText)
	return runtime.ExecRunner{}.Run(argv)
}

// die prints message to stderr and exits with status, mirroring the
// teacher's terminal die() helper used for every startup failure.
func die(status module.ExitStatus, message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(int(status))
}
