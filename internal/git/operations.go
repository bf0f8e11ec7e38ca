package git

import (
	"errors"
	"strings"
)

// StageAll stages every change in dir, including untracked files.
func StageAll(dir string) error {
	_, err := run(dir, "add", "-A")
	return err
}

// Commit records the currently staged changes with the given message.
func Commit(dir, message string) error {
	_, err := run(dir, "commit", "-m", message)
	return err
}

// Push pushes the current branch to its upstream.
func Push(dir string) error {
	_, err := run(dir, "push")
	return err
}

// PushSetUpstream pushes the current branch to the first remote and records
// it as the upstream.
func PushSetUpstream(dir string) error {
	remote, err := FirstRemote(dir)
	if err != nil {
		return err
	}
	branch, err := run(dir, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil || branch == "" {
		return errors.New("cannot push: HEAD is detached")
	}
	_, err = run(dir, "push", "-u", remote, branch)
	return err
}

// Fetch updates remote-tracking branches from the first remote.
func Fetch(dir string) error {
	remote, err := FirstRemote(dir)
	if err != nil {
		return err
	}
	_, err = run(dir, "fetch", remote)
	return err
}

// Pull fast-forwards the current branch. A pull that would need a merge is
// refused with a stable message rather than leaving a merge in progress.
func Pull(dir string) error {
	if _, err := run(dir, "pull", "--ff-only"); err != nil {
		if strings.Contains(err.Error(), "fast-forward") {
			return errors.New("cannot fast-forward; manual merge required")
		}
		return err
	}
	return nil
}
