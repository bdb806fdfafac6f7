package version

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// initRepo creates a repository in a temp dir with one commit holding the given files
func initRepo(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	for name, content := range files {
		writeFile(t, filepath.Join(dir, name), content)
		_, err = worktree.Add(name)
		require.NoError(t, err)
	}
	hash, err := worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "builder", Email: "builder@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir, hash.String()
}

func TestFindRepositoryRoot(t *testing.T) {
	dir, _ := initRepo(t, map[string]string{"go.mod": "module x\n"})
	nested := filepath.Join(dir, "store", "postgres", "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, err := FindRepositoryRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, dir, root)

	root, err = FindRepositoryRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindRepositoryRootNotFound(t *testing.T) {
	// temp dirs are normally not inside a repository
	dir := t.TempDir()
	if _, err := FindRepositoryRoot(filepath.Dir(dir)); err == nil {
		t.Skip("temp dir is inside a git repository")
	}
	_, err := FindRepositoryRoot(dir)
	require.ErrorIs(t, err, ErrRepositoryNotFound)
}

func TestGitStateClean(t *testing.T) {
	dir, commit := initRepo(t, map[string]string{
		"README":     "hello\n",
		".gitignore": "*.log\n",
	})
	writeFile(t, filepath.Join(dir, "build.log"), "ignored\n")

	got, dirty, err := GitState(dir)
	require.NoError(t, err)
	assert.Equal(t, commit, got)
	assert.False(t, dirty)
}

func TestGitStateDirty(t *testing.T) {
	dir, commit := initRepo(t, map[string]string{"README": "hello\n"})
	writeFile(t, filepath.Join(dir, "README"), "changed\n")

	got, dirty, err := GitState(filepath.Join(dir))
	require.NoError(t, err)
	assert.Equal(t, commit, got)
	assert.True(t, dirty)
}

func TestGitStateUntracked(t *testing.T) {
	dir, _ := initRepo(t, map[string]string{"README": "hello\n"})
	writeFile(t, filepath.Join(dir, "new.go"), "package x\n")

	_, dirty, err := GitState(dir)
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestGitStateEmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, _, err = GitState(dir)
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	dir, commit := initRepo(t, map[string]string{"README": "hello\n"})
	build, err := Detect(dir, "1.4.2-rc.3")
	require.NoError(t, err)
	assert.Equal(t, commit, build.GitCommitHash)
	assert.False(t, build.GitRepositoryDirty)
	assert.Equal(t, "1.4.2-rc.3", build.PackageVersion)
	assert.Equal(t, int32(1), build.Major)
	assert.Equal(t, int32(4), build.Minor)
	assert.Equal(t, int32(2), build.Patch)
	assert.Equal(t, "rc.3", build.PreRelease)
	assert.NotEmpty(t, build.CompilerVersion)

	_, err = Detect(dir, "not-a-version")
	require.Error(t, err)
}
