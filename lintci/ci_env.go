package lintci

import (
	"strings"
)

// commitRangeSep separates the base and head commits in the commit range
// that CI provides for pull request builds.
const commitRangeSep = "..."

// buildEnv captures the CI-provided values that a lint run reports against.
type buildEnv struct {
	owner string
	repo  string

	jobID       string
	event       string
	commit      string
	commitRange string
}

// readBuildEnv reads the CI environment of the current job. The repository
// slug is split into owner and repo; both are empty when the slug is absent
// or malformed.
func readBuildEnv(envs Envs) *buildEnv {
	b := &buildEnv{
		jobID:       getEnv(envs, "TRAVIS_JOB_ID"),
		event:       getEnv(envs, "TRAVIS_EVENT_TYPE"),
		commit:      getEnv(envs, "TRAVIS_COMMIT"),
		commitRange: getEnv(envs, "TRAVIS_COMMIT_RANGE"),
	}

	slug := getEnv(envs, "TRAVIS_REPO_SLUG")
	if owner, repo, ok := strings.Cut(slug, "/"); ok {
		b.owner = owner
		b.repo = repo
	}

	return b
}

// statusCommit resolves the commit that the status should be attached to.
// Push builds report the literal commit. Pull request builds report the head
// of the commit range; when the range has no separator, the whole range
// value is used. Other event types have no commit to report on, and ok is
// false.
func (b *buildEnv) statusCommit() (commit string, ok bool) {
	switch b.event {
	case "push":
		return b.commit, true
	case "pull_request":
		if _, head, found := strings.Cut(b.commitRange, commitRangeSep); found {
			return head, true
		}
		return b.commitRange, true
	}
	return "", false
}
