package repo

import (
	"context"
	"testing"
)

func TestFake_LoadCommitDiff_ReplaysParts(t *testing.T) {
	f := &Fake{
		Parts: map[string][]DiffPart{
			"aaaaaaaa": {
				{Kind: DiffCommit, Commit: CommitInfo{Hash: "aaaaaaaa", Subject: "msg1"}},
				{Kind: DiffFileStatus, FileStatus: FileStatusInfo{Path: "a.go", ChangeKind: "modified"}},
				{Kind: DiffLine, Line: LineInfo{Origin: '+', Content: "x"}},
			},
		},
	}

	parts, errs := f.LoadCommitDiff(context.Background(), nil, "aaaaaaaa", DiffOptions{})

	var got []DiffPart
	for p := range parts {
		got = append(got, p)
	}
	if err, ok := <-errs; ok {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d parts, want 3", len(got))
	}
	if got[0].Kind != DiffCommit || got[0].Commit.Subject != "msg1" {
		t.Errorf("first part = %+v, want commit overview", got[0])
	}
}

func TestFake_OpenFromEnv_PropagatesError(t *testing.T) {
	wantErr := errTest{}
	f := &Fake{OpenErr: wantErr}
	if _, err := f.OpenFromEnv(context.Background()); err != wantErr {
		t.Errorf("OpenFromEnv error = %v, want %v", err, wantErr)
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }
