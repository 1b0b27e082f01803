// Package bootstrap provisions a host whose installed CUDA libraries carry
// different sonames than the grasp inference binaries expect. It creates
// symlinks aliasing the expected sonames to the installed files and makes
// sure the shell profile exports LD_LIBRARY_PATH with the library
// directories.
package bootstrap

import (
	"os"
	"strings"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
)

// Link is one symlink mapping: Alias is the soname path a dependent binary
// expects, Target the file actually installed.
type Link struct {
	Target string
	Alias  string
}

// Plan is everything one provisioning run does: the links to create, the
// directories LD_LIBRARY_PATH must contain, and the profile file to export
// it from.
type Plan struct {
	Links      []Link
	SearchDirs []string
	Profile    string
}

// LinkStatus is the outcome of one link entry.
type LinkStatus int

const (
	LinkCreated LinkStatus = iota
	LinkAlreadyLinked
	LinkFailed
)

func (s LinkStatus) String() string {
	switch s {
	case LinkCreated:
		return "created"
	case LinkAlreadyLinked:
		return "already linked"
	case LinkFailed:
		return "failed"
	}
	return "unknown"
}

// LinkResult records what happened to one link.
type LinkResult struct {
	Link   Link
	Status LinkStatus
	Err    error
}

// Result is the outcome of a full Apply.
type Result struct {
	Links           []LinkResult
	ProfileAppended bool
}

// Failed returns the entries that could not be linked.
func (r *Result) Failed() []LinkResult {
	var failed []LinkResult
	for _, lr := range r.Links {
		if lr.Status == LinkFailed {
			failed = append(failed, lr)
		}
	}
	return failed
}

// Bootstrapper applies a Plan to the filesystem.
type Bootstrapper struct {
	plan   Plan
	dryRun bool
	logger *modular.ModuleLogger
}

func New(plan Plan, logger *modular.ModuleLogger) *Bootstrapper {
	return &Bootstrapper{plan: plan, logger: logger}
}

// SetDryRun makes Apply log what it would do without touching the
// filesystem.
func (b *Bootstrapper) SetDryRun(on bool) {
	b.dryRun = on
}

// Apply creates every missing symlink of the plan and ensures the profile
// export line. A link that already points at its target is skipped, so a
// second run on a provisioned host is a no-op. Individual link failures do
// not stop the remaining entries; they are collected into the returned
// aggregate error.
func (b *Bootstrapper) Apply() (*Result, error) {
	logger := *b.logger
	result := &Result{}

	for _, link := range b.plan.Links {
		lr := b.applyLink(link)
		switch lr.Status {
		case LinkCreated:
			logger.Infof("linked %s -> %s", link.Alias, link.Target)
		case LinkAlreadyLinked:
			logger.Debugf("%s already links to %s", link.Alias, link.Target)
		case LinkFailed:
			logger.Errorf("linking %s: %v", link.Alias, lr.Err)
		}
		result.Links = append(result.Links, lr)
	}

	var profileErr error
	if b.dryRun {
		logger.Infof("dry run: would ensure %q in %s",
			ExportLine(b.plan.SearchDirs), b.plan.Profile)
	} else {
		appended, err := EnsureProfileLine(b.plan.Profile, b.plan.SearchDirs)
		if err != nil {
			profileErr = err
			logger.Errorf("profile: %v", err)
		} else {
			result.ProfileAppended = appended
			if appended {
				logger.Infof("appended LD_LIBRARY_PATH export to %s", b.plan.Profile)
			} else {
				logger.Debugf("%s already exports LD_LIBRARY_PATH", b.plan.Profile)
			}
		}
	}

	if failed := result.Failed(); len(failed) > 0 {
		aliases := make([]string, 0, len(failed))
		for _, lr := range failed {
			aliases = append(aliases, lr.Link.Alias)
		}
		err := errors.Errorf("%d of %d links failed: %s",
			len(failed), len(b.plan.Links), strings.Join(aliases, ", "))
		if profileErr != nil {
			err = errors.Errorf("%s; profile: %s", err, profileErr)
		}
		return result, err
	}
	return result, profileErr
}

func (b *Bootstrapper) applyLink(link Link) LinkResult {
	lr := LinkResult{Link: link}

	if existing, err := os.Lstat(link.Alias); err == nil {
		if existing.Mode()&os.ModeSymlink == 0 {
			lr.Status = LinkFailed
			lr.Err = errors.Errorf("%s exists and is not a symlink", link.Alias)
			return lr
		}
		dest, err := os.Readlink(link.Alias)
		if err != nil {
			lr.Status = LinkFailed
			lr.Err = errors.Wrapf(err, "reading link %s", link.Alias)
			return lr
		}
		if dest == link.Target {
			lr.Status = LinkAlreadyLinked
			return lr
		}
		lr.Status = LinkFailed
		lr.Err = errors.Errorf("%s already links to %s", link.Alias, dest)
		return lr
	} else if !os.IsNotExist(err) {
		lr.Status = LinkFailed
		lr.Err = errors.Wrapf(err, "stat %s", link.Alias)
		return lr
	}

	if _, err := os.Stat(link.Target); err != nil {
		lr.Status = LinkFailed
		lr.Err = errors.Wrapf(err, "target of %s", link.Alias)
		return lr
	}

	if b.dryRun {
		lr.Status = LinkCreated
		return lr
	}
	if err := os.Symlink(link.Target, link.Alias); err != nil {
		lr.Status = LinkFailed
		lr.Err = err
		return lr
	}
	lr.Status = LinkCreated
	return lr
}

// ExportLine is the profile line exporting LD_LIBRARY_PATH with dirs.
func ExportLine(dirs []string) string {
	return "export LD_LIBRARY_PATH=$LD_LIBRARY_PATH:" + strings.Join(dirs, ":")
}

// EnsureProfileLine appends the LD_LIBRARY_PATH export to the profile file
// unless an identical line is already present. It reports whether the line
// was appended. A missing profile file is created.
func EnsureProfileLine(profile string, dirs []string) (bool, error) {
	line := ExportLine(dirs)

	data, err := os.ReadFile(profile)
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "reading %s", profile)
	}
	for _, existing := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(existing) == line {
			return false, nil
		}
	}

	f, err := os.OpenFile(profile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", profile)
	}
	defer f.Close()

	content := line + "\n"
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		content = "\n" + content
	}
	if _, err := f.WriteString(content); err != nil {
		return false, errors.Wrapf(err, "appending to %s", profile)
	}
	return true, nil
}
