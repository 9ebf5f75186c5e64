package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

const headReflogPath = "logs/HEAD"

const (
	fallbackReflogName  = "goback"
	fallbackReflogEmail = "goback@localhost"
)

// gitCommandOutputInDir emulates the git subcommands goback needs. handled is
// false when the caller should run the git binary instead.
func gitCommandOutputInDir(dir string, args ...string) (string, bool, error) {
	if len(args) == 0 {
		return "", false, nil
	}
	repoRoot, err := repoRootForDir(dir)
	if err != nil {
		return "", true, err
	}
	if isLinkedWorktreeDir(repoRoot) {
		// HEAD's reflog lives in the linked gitdir; let git resolve it.
		return "", false, nil
	}

	switch args[0] {
	case "reflog":
		return gitReflog(repoRoot, args[1:])
	case "checkout":
		return gitCheckout(repoRoot, args[1:])
	default:
		return "", false, nil
	}
}

func openRepo(repoRoot string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(repoRoot, &git.PlainOpenOptions{DetectDotGit: true})
}

func dotGitFilesystem(repo *git.Repository) (billy.Filesystem, bool) {
	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, false
	}
	return storage.Filesystem(), true
}

func gitReflog(repoRoot string, args []string) (string, bool, error) {
	if len(args) != 0 {
		return "", false, nil
	}
	repo, err := openRepo(repoRoot)
	if err != nil {
		return "", true, err
	}
	fs, ok := dotGitFilesystem(repo)
	if !ok {
		return "", false, nil
	}
	out, err := readHeadReflog(fs)
	if errors.Is(err, os.ErrNotExist) {
		// No logs/HEAD: either nothing was checked out yet or the refs are
		// not file backed. git knows which; without it the log is empty.
		if _, gitErr := requireGitPath(); gitErr == nil {
			return "", false, nil
		}
		return "", true, nil
	}
	return out, true, err
}

// readHeadReflog renders logs/HEAD the way `git reflog` prints it: newest
// entry first, one "<hash> HEAD@{n}: <message>" line each.
func readHeadReflog(fs billy.Filesystem) (string, error) {
	f, err := fs.Open(headReflogPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return formatReflog(string(data)), nil
}

type reflogEntry struct {
	newHash string
	message string
}

func (e reflogEntry) shortHash() string {
	if len(e.newHash) > 7 {
		return e.newHash[:7]
	}
	return e.newHash
}

// parseReflogLine reads "<old> <new> <ident> <time> <tz>\t<message>".
func parseReflogLine(line string) (reflogEntry, bool) {
	head, message, ok := strings.Cut(strings.TrimSuffix(line, "\r"), "\t")
	if !ok {
		return reflogEntry{}, false
	}
	fields := strings.Fields(head)
	if len(fields) < 2 {
		return reflogEntry{}, false
	}
	return reflogEntry{newHash: fields[1], message: message}, true
}

func formatReflog(raw string) string {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	var b strings.Builder
	n := 0
	for i := len(lines) - 1; i >= 0; i-- {
		entry, ok := parseReflogLine(lines[i])
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s HEAD@{%d}: %s\n", entry.shortHash(), n, entry.message)
		n++
	}
	return b.String()
}

// gitCheckout switches to an existing local branch on a clean worktree.
// Anything else (remote-tracking guesses, dirty trees, options) is left to git.
func gitCheckout(repoRoot string, args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, nil
	}
	branch := strings.TrimSpace(args[0])
	if branch == "" || strings.HasPrefix(branch, "-") {
		return "", false, nil
	}
	repo, err := openRepo(repoRoot)
	if err != nil {
		return "", true, err
	}
	target := plumbing.NewBranchReferenceName(branch)
	targetRef, err := repo.Reference(target, true)
	if err != nil {
		return "", false, nil
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", true, err
	}
	status, err := wt.Status()
	if err != nil {
		return "", true, err
	}
	if !status.IsClean() {
		return "", false, nil
	}

	head, err := repo.Head()
	if err != nil {
		return "", true, err
	}
	from := head.Hash().String()
	if head.Name().IsBranch() {
		from = head.Name().Short()
	}

	if err := wt.Checkout(&git.CheckoutOptions{Branch: target}); err != nil {
		return "", true, err
	}
	message := fmt.Sprintf("checkout: moving from %s to %s", from, branch)
	if err := appendHeadReflog(repo, head.Hash(), targetRef.Hash(), message); err != nil {
		return "", true, err
	}
	return "", true, nil
}

func appendHeadReflog(repo *git.Repository, oldHash plumbing.Hash, newHash plumbing.Hash, message string) error {
	fs, ok := dotGitFilesystem(repo)
	if !ok {
		return nil
	}
	name, email := reflogIdentity(repo)
	line := formatReflogLine(oldHash, newHash, name, email, time.Now(), message)
	f, err := fs.OpenFile(headReflogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func formatReflogLine(oldHash plumbing.Hash, newHash plumbing.Hash, name string, email string, when time.Time, message string) string {
	return fmt.Sprintf("%s %s %s <%s> %d %s\t%s\n",
		oldHash, newHash, name, email, when.Unix(), when.Format("-0700"), message)
}

func reflogIdentity(repo *git.Repository) (string, string) {
	name, email := fallbackReflogName, fallbackReflogEmail
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return name, email
	}
	if v := strings.TrimSpace(cfg.User.Name); v != "" {
		name = v
	}
	if v := strings.TrimSpace(cfg.User.Email); v != "" {
		email = v
	}
	return name, email
}
