// Package lintci implements a CI helper command that runs a lint engine
// over a directory, prints a human-readable report, and posts a commit
// status to GitHub based on the CI job's environment variables.
package lintci

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
)

// Flags is the structure for all the command line flags of lintci.
type Flags struct {
	ConfigFile string // flag -config
	Dir        string // flag -dir
	NoStatus   bool   // flag -nostatus
}

// Main runs the main function of the lintci command.
func Main(flags *Flags, envs Envs) error {
	if envs == nil {
		envs = &osEnvs{}
	}

	configFile := flags.ConfigFile
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	config, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir := flags.Dir
	if dir == "" {
		dir = config.lintDir()
	}

	runner := &execLintRunner{command: config.lintCommand()}
	poster := newGitHubPoster(getEnv(envs, "GITHUB_TOKEN"))

	return run(config, envs, runner, poster, os.Stdout, dir, flags.NoStatus)
}

func run(
	config *Config, envs Envs, runner lintRunner, poster statusPoster,
	out io.Writer, dir string, noStatus bool,
) error {
	ctx := context.Background()

	report, err := runner.run(dir)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	printReport(out, report)

	build := readBuildEnv(envs)
	state := stateFor(report.ErrorCount)

	// History and annotations are best effort; a broken side channel
	// must not fail the job.
	if path := config.History.Path; path != "" {
		if err := recordRun(ctx, path, build, report, state); err != nil {
			log.Printf("record lint run: %v", err)
		}
	}
	if a := readAnnotation(envs); a != nil {
		if err := a.post(ctx, report); err != nil {
			log.Printf("annotate build: %v", err)
		}
	}

	if noStatus {
		return nil
	}

	commit, ok := build.statusCommit()
	if !ok {
		log.Printf(
			"unsupported CI event type %q; skipping commit status",
			build.event,
		)
		return nil
	}
	if build.owner == "" || build.repo == "" {
		log.Print("no repository slug; skipping commit status")
		return nil
	}

	status := &Status{
		Owner: build.owner,
		Repo:  build.repo,
		SHA:   commit,

		State:       state,
		TargetURL:   config.targetURL(build.owner, build.repo, build.jobID),
		Description: describe(report.ErrorCount, report.WarningCount),
		Context:     config.statusContext(),
	}
	if err := poster.post(ctx, status); err != nil {
		return fmt.Errorf("report status: %w", err)
	}

	log.Printf("reported %s for commit %s", state, commit)
	return nil
}

func recordRun(
	ctx context.Context, path string, build *buildEnv,
	report *Report, state string,
) error {
	h, err := openHistory(path)
	if err != nil {
		return err
	}
	defer h.close()

	return h.record(ctx, &runRecord{
		Commit:   build.commit,
		Event:    build.event,
		State:    state,
		Errors:   report.ErrorCount,
		Warnings: report.WarningCount,
	})
}
