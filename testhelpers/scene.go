package testhelpers

import (
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene is a temporary directory holding a fresh git repository
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository in a temp dir that is removed when the test
// ends. Tests are skipped when git is not installed.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	// Resolve symlinks so paths match what git reports (macOS /var -> /private/var)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo}
	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// HistorySceneSetup returns a setup that commits one change per subject, in order
func HistorySceneSetup(subjects ...string) SceneSetup {
	return func(scene *Scene) error {
		for i, subject := range subjects {
			if err := scene.Repo.CreateChangeAndCommit(subject, string(rune('a'+i))); err != nil {
				return err
			}
		}
		return nil
	}
}
