package repo

import "context"

// Fake is a Repository test double: LoadCommitDiff replays a fixed
// sequence of DiffParts over a buffered channel, matching the real
// adapter's "incremental stream" contract (spec §6) without touching any
// actual VCS.
type Fake struct {
	Config map[string]string
	Parts  map[string][]DiffPart // keyed by commit hash
	OpenErr error
}

func (f *Fake) OpenFromEnv(ctx context.Context) (Repo, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return struct{}{}, nil
}

func (f *Fake) ReadConfig(ctx context.Context, r Repo) (map[string]string, error) {
	return f.Config, nil
}

func (f *Fake) LoadCommitDiff(ctx context.Context, r Repo, hash string, opts DiffOptions) (<-chan DiffPart, <-chan error) {
	parts := make(chan DiffPart, len(f.Parts[hash]))
	errs := make(chan error, 1)
	for _, p := range f.Parts[hash] {
		parts <- p
	}
	close(parts)
	close(errs)
	return parts, errs
}
