package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

const switchSpinnerDelay = 150 * time.Millisecond

var errReflogNotUTF8 = errors.New("reflog output is not valid UTF-8")

// gitNoticeOut receives what git printed during a successful checkout.
var gitNoticeOut io.Writer = os.Stderr

func gitOutputInDir(dir string, gitBin string, args ...string) (string, error) {
	cmd := exec.Command(gitBin, args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", commandErrorWithOutput(err, exitErr.Stderr)
		}
		return "", err
	}
	return string(output), nil
}

// gitCombinedOutputInDir returns stdout and stderr interleaved, the way git
// prints them to a terminal.
func gitCombinedOutputInDir(dir string, gitBin string, args ...string) (string, error) {
	cmd := exec.Command(gitBin, args...)
	cmd.Dir = dir
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return "", commandErrorWithOutput(err, output.Bytes())
	}
	return output.String(), nil
}

// commandErrorWithOutput prefers what git printed over the bare exit status.
func commandErrorWithOutput(err error, output []byte) error {
	msg := strings.TrimSpace(string(output))
	if msg == "" {
		return err
	}
	return errors.New(msg)
}

// runGit serves args through go-git when the adapter handles them and
// through the git binary otherwise.
func runGit(dir string, args ...string) (string, error) {
	out, handled, err := gitCommandOutputInDir(dir, args...)
	if handled {
		logger.Debug("served by go-git", "args", strings.Join(args, " "))
		return out, err
	}
	gitBin, err := requireGitPath()
	if err != nil {
		return "", err
	}
	return gitOutputInDir(dir, gitBin, args...)
}

func readReflog(dir string) (string, error) {
	done := logOp("reflog", "dir", dir)
	out, err := runGit(dir, "reflog")
	if err == nil && !utf8.ValidString(out) {
		err = errReflogNotUTF8
	}
	done(err)
	if err != nil {
		return "", fmt.Errorf("failed to read git reflog: %w", err)
	}
	return out, nil
}

func checkoutBranch(dir string, branch string) error {
	done := logOp("checkout", "branch", branch)
	stop := startSwitchSpinner(branch, switchSpinnerDelay)
	notice, err := switchBranch(dir, branch)
	stop()
	done(err)
	if err != nil {
		return fmt.Errorf("failed to switch to branch '%s': %w", branch, err)
	}
	if notice != "" {
		_, _ = io.WriteString(gitNoticeOut, notice)
	}
	return nil
}

// switchBranch uses the git binary when installed since go-git does not
// record reflog entries; the go-git path appends its own. The returned text
// is git's own report of the switch.
func switchBranch(dir string, branch string) (string, error) {
	if gitBin, err := requireGitPath(); err == nil {
		return gitCombinedOutputInDir(dir, gitBin, "checkout", branch)
	}
	out, handled, err := gitCommandOutputInDir(dir, "checkout", branch)
	if !handled {
		return "", errGitNotInstalled
	}
	return out, err
}
