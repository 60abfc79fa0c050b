package lintci

import (
	"bytes"
	"context"
	"testing"
)

type stubRunner struct {
	report *Report
}

func (r *stubRunner) run(dir string) (*Report, error) {
	return r.report, nil
}

type recordingPoster struct {
	posted []*Status
}

func (p *recordingPoster) post(_ context.Context, s *Status) error {
	p.posted = append(p.posted, s)
	return nil
}

func pushEnvs(extra map[string]string) Envs {
	m := map[string]string{
		"TRAVIS_REPO_SLUG":  "siteci/siteci",
		"TRAVIS_JOB_ID":     "777",
		"TRAVIS_EVENT_TYPE": "push",
		"TRAVIS_COMMIT":     "abc123",
		"GITHUB_TOKEN":      "t0ken",
	}
	for k, v := range extra {
		m[k] = v
	}
	return newEnvsMap(m)
}

func runForTest(
	t *testing.T, report *Report, envs Envs, noStatus bool,
) *recordingPoster {
	t.Helper()

	poster := &recordingPoster{}
	runner := &stubRunner{report: report}
	out := new(bytes.Buffer)
	config := &Config{}

	if err := run(
		config, envs, runner, poster, out, "test", noStatus,
	); err != nil {
		t.Fatalf("run: %v", err)
	}
	return poster
}

func TestRunPushEvent(t *testing.T) {
	report := &Report{ErrorCount: 0, WarningCount: 2}
	poster := runForTest(t, report, pushEnvs(nil), false)

	if len(poster.posted) != 1 {
		t.Fatalf("posted %d statuses, want 1", len(poster.posted))
	}

	s := poster.posted[0]
	if s.SHA != "abc123" {
		t.Errorf("SHA = %q, want %q", s.SHA, "abc123")
	}
	if s.Owner != "siteci" || s.Repo != "siteci" {
		t.Errorf("owner/repo = %q/%q, want siteci/siteci", s.Owner, s.Repo)
	}
	if s.State != "success" {
		t.Errorf("State = %q, want %q", s.State, "success")
	}
	if s.Context != "ci/lint" {
		t.Errorf("Context = %q, want %q", s.Context, "ci/lint")
	}
	if s.Description != "2 warnings" {
		t.Errorf("Description = %q, want %q", s.Description, "2 warnings")
	}

	const wantURL = "https://travis-ci.org/siteci/siteci/jobs/777"
	if s.TargetURL != wantURL {
		t.Errorf("TargetURL = %q, want %q", s.TargetURL, wantURL)
	}
}

func TestRunPullRequestEvent(t *testing.T) {
	tests := []struct {
		name        string
		commitRange string
		want        string
	}{{
		name:        "range with separator",
		commitRange: "base111...head222",
		want:        "head222",
	}, {
		name:        "range without separator",
		commitRange: "head222",
		want:        "head222",
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			envs := pushEnvs(map[string]string{
				"TRAVIS_EVENT_TYPE":   "pull_request",
				"TRAVIS_COMMIT_RANGE": test.commitRange,
			})
			poster := runForTest(t, &Report{}, envs, false)

			if len(poster.posted) != 1 {
				t.Fatalf("posted %d statuses, want 1", len(poster.posted))
			}
			if got := poster.posted[0].SHA; got != test.want {
				t.Errorf("SHA = %q, want %q", got, test.want)
			}
		})
	}
}

func TestRunUnsupportedEvent(t *testing.T) {
	envs := pushEnvs(map[string]string{"TRAVIS_EVENT_TYPE": "cron"})
	poster := runForTest(t, &Report{}, envs, false)

	if len(poster.posted) != 0 {
		t.Errorf("posted %d statuses, want 0", len(poster.posted))
	}
}

func TestRunMissingSlug(t *testing.T) {
	envs := newEnvsMap(map[string]string{
		"TRAVIS_EVENT_TYPE": "push",
		"TRAVIS_COMMIT":     "abc123",
	})
	poster := runForTest(t, &Report{}, envs, false)

	if len(poster.posted) != 0 {
		t.Errorf("posted %d statuses, want 0", len(poster.posted))
	}
}

func TestRunNoStatus(t *testing.T) {
	poster := runForTest(t, &Report{}, pushEnvs(nil), true)

	if len(poster.posted) != 0 {
		t.Errorf("posted %d statuses, want 0", len(poster.posted))
	}
}

func TestRunStatusState(t *testing.T) {
	tests := []struct {
		errs, warns int
		want        string
	}{
		{0, 0, "success"},
		{0, 7, "success"},
		{1, 0, "failure"},
		{3, 2, "failure"},
	}

	for _, test := range tests {
		report := &Report{
			ErrorCount:   test.errs,
			WarningCount: test.warns,
		}
		poster := runForTest(t, report, pushEnvs(nil), false)

		if len(poster.posted) != 1 {
			t.Fatalf("posted %d statuses, want 1", len(poster.posted))
		}
		if got := poster.posted[0].State; got != test.want {
			t.Errorf(
				"state for (%d, %d) = %q, want %q",
				test.errs, test.warns, got, test.want,
			)
		}
	}
}
