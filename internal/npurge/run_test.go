package npurge

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file of the given size, making parent directories
// as needed.
func writeFile(t *testing.T, path string, size int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644))
}

// recordingRemover records removal calls without touching the filesystem.
type recordingRemover struct {
	calls []string
}

func (r *recordingRemover) RemoveAll(path string) error {
	r.calls = append(r.calls, path)
	return nil
}

// failingRemover fails removals whose path contains the given fragment.
type failingRemover struct {
	recordingRemover

	fragment string
}

func (r *failingRemover) RemoveAll(path string) error {
	_ = r.recordingRemover.RemoveAll(path)
	if strings.Contains(path, r.fragment) {
		return os.ErrPermission
	}
	return nil
}

func TestRun_FindsMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "node_modules", "pkg", "index.js"), 2048)
	writeFile(t, filepath.Join(root, "b", "c", "node_modules", "x.js"), 10)

	result, err := Run(context.Background(), Options{Path: root, Scan: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.MatchCount)
	assert.Len(t, result.Matches, 2)
	assert.Equal(t, int64(2048+10), result.TotalBytes)
	assert.Zero(t, result.Deleted)
	assert.Empty(t, result.Errors)

	// ReadDir lists lexicographically, so a/ comes before b/
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "a", "node_modules")), result.Matches[0].Path)
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "b", "c", "node_modules")), result.Matches[1].Path)
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "a")), result.Matches[0].Parent)
}

func TestRun_NeverDescendsIntoMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x", "node_modules", "sub", "node_modules", "y.js"), 64)

	var probed []string

	result, err := Run(context.Background(), Options{
		Path: root,
		Scan: true,
		Probe: func(path string) int64 {
			probed = append(probed, path)
			return DirSize(path)
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "x", "node_modules")), result.Matches[0].Path)

	// The inner node_modules is part of the outer match and must never
	// be probed on its own.
	require.Len(t, probed, 1)
	assert.Equal(t, filepath.Join(root, "x", "node_modules"), probed[0])
}

func TestRun_ScanNeverMutates(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "proj", "node_modules")
	writeFile(t, filepath.Join(target, "a.js"), 100)

	remover := &recordingRemover{}

	result, err := Run(context.Background(), Options{Path: root, Scan: true, Remover: remover})
	require.NoError(t, err)

	assert.Equal(t, 1, result.MatchCount)
	assert.Empty(t, remover.calls)
	assert.DirExists(t, target)
}

func TestRun_DryRunNeverMutates(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "proj", "node_modules")
	writeFile(t, filepath.Join(target, "a.js"), 100)

	remover := &recordingRemover{}

	result, err := Run(context.Background(), Options{Path: root, DryRun: true, Remover: remover})
	require.NoError(t, err)

	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, int64(100), result.TotalBytes)
	assert.Empty(t, remover.calls)
	assert.DirExists(t, target)
}

func TestRun_ActiveDeletes(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "proj", "node_modules")
	writeFile(t, filepath.Join(target, "a.js"), 1024)

	result, err := Run(context.Background(), Options{Path: root})
	require.NoError(t, err)

	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, int64(1024), result.TotalBytes)
	assert.Equal(t, 1, result.Deleted)
	assert.Empty(t, result.Errors)
	assert.NoDirExists(t, target)
}

func TestRun_ConfirmDeclineReversesAccounting(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "proj", "node_modules")
	writeFile(t, filepath.Join(target, "a.js"), 512)

	result, err := Run(context.Background(), Options{
		Path:        root,
		ConfirmEach: true,
		ConfirmFunc: func(string, int64) bool { return false },
	})
	require.NoError(t, err)

	assert.Zero(t, result.MatchCount)
	assert.Zero(t, result.TotalBytes)
	assert.Equal(t, 1, result.Declined)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, result.MatchCount, len(result.Matches)-result.Declined)
	assert.DirExists(t, target)
}

func TestRun_ConfirmAcceptDeletes(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "proj", "node_modules")
	writeFile(t, filepath.Join(target, "a.js"), 512)

	result, err := Run(context.Background(), Options{
		Path:        root,
		ConfirmEach: true,
		ConfirmFunc: func(string, int64) bool { return true },
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Deleted)
	assert.Zero(t, result.Declined)
	assert.NoDirExists(t, target)
}

func TestRun_DeleteFailureIsIsolated(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "node_modules", "x.js"), 10)
	writeFile(t, filepath.Join(root, "b", "node_modules", "y.js"), 20)

	remover := &failingRemover{fragment: filepath.Join("a", "node_modules")}

	result, err := Run(context.Background(), Options{Path: root, Remover: remover})
	require.NoError(t, err)

	// Both matches are still discovered and attempted.
	assert.Len(t, remover.calls, 2)
	assert.Equal(t, 2, result.MatchCount)
	assert.Equal(t, int64(30), result.TotalBytes)
	assert.Equal(t, 1, result.Deleted)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "a", "node_modules")), result.Errors[0].Path)
	assert.NotEmpty(t, result.Errors[0].Message)
}

func TestRun_MissingPath(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: filepath.Join(t.TempDir(), "nope"), Scan: true})
	assert.Error(t, err)
}

func TestRun_PathIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, 1)

	_, err := Run(context.Background(), Options{Path: file, Scan: true})
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestRun_InvalidExcludePattern(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Path:     t.TempDir(),
		Scan:     true,
		Excludes: []string{"["},
	})
	assert.Error(t, err)
}

func TestRun_ExcludeSkipsSubtree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vendor", "node_modules", "x.js"), 10)
	writeFile(t, filepath.Join(root, "app", "node_modules", "y.js"), 20)

	result, err := Run(context.Background(), Options{
		Path:     root,
		Scan:     true,
		Excludes: []string{`.*/vendor$`},
	})
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "app", "node_modules")), result.Matches[0].Path)
}

func TestRun_MinSizeFiltersSmallMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "big", "node_modules", "x.js"), 4096)
	writeFile(t, filepath.Join(root, "small", "node_modules", "y.js"), 16)

	result, err := Run(context.Background(), Options{Path: root, Scan: true, MinSize: 1024})
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "big", "node_modules")), result.Matches[0].Path)
	assert.Equal(t, int64(4096), result.TotalBytes)
	assert.Equal(t, 1, result.MatchCount)
}

func TestRun_MultipleTargets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "js", "node_modules", "x.js"), 10)
	writeFile(t, filepath.Join(root, "py", ".venv", "lib", "y.py"), 20)

	result, err := Run(context.Background(), Options{
		Path:    root,
		Scan:    true,
		Targets: []string{"node_modules", ".venv"},
	})
	require.NoError(t, err)

	assert.Len(t, result.Matches, 2)
	assert.Equal(t, int64(30), result.TotalBytes)
}

func TestRun_EmptyMatchRecordedWithZeroSize(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proj", "node_modules"), 0o755))

	result, err := Run(context.Background(), Options{Path: root, Scan: true})
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Zero(t, result.Matches[0].Size)
	assert.Equal(t, 1, result.MatchCount)
}

func TestRun_FileNamedLikeTargetIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "proj", "node_modules"), 10)

	result, err := Run(context.Background(), Options{Path: root, Scan: true})
	require.NoError(t, err)

	assert.Empty(t, result.Matches)
}

func TestRun_RescanIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "node_modules", "x.js"), 100)
	writeFile(t, filepath.Join(root, "b", "node_modules", "y.js"), 200)

	first, err := Run(context.Background(), Options{Path: root, Scan: true})
	require.NoError(t, err)

	second, err := Run(context.Background(), Options{Path: root, Scan: true})
	require.NoError(t, err)

	assert.Equal(t, first.Matches, second.Matches)
	assert.Equal(t, first.TotalBytes, second.TotalBytes)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Path: t.TempDir(), Scan: true})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CallbacksFire(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ok", "node_modules", "x.js"), 10)
	writeFile(t, filepath.Join(root, "stuck", "node_modules", "y.js"), 20)

	var matched, deleted, failed int

	remover := &failingRemover{fragment: filepath.Join("stuck", "node_modules")}

	_, err := Run(context.Background(), Options{
		Path:    root,
		Remover: remover,
		Callbacks: Callbacks{
			OnMatch:       func(MatchInfo) { matched++ },
			OnDeleted:     func(MatchInfo) { deleted++ },
			OnDeleteError: func(DeleteErrorInfo) { failed++ },
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, matched)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, 1, failed)
}
