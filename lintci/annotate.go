package lintci

import (
	"context"
	"fmt"
	"strings"

	"github.com/buildkite/go-buildkite/v4"
)

// annotation identifies the Buildkite build to annotate with the lint
// summary.
type annotation struct {
	Org      string
	Pipeline string
	Build    string

	token string
}

// readAnnotation reads the Buildkite job environment. Returns nil when the
// run is not a Buildkite job or has no API token to annotate with.
func readAnnotation(envs Envs) *annotation {
	a := &annotation{
		Org:      getEnv(envs, "BUILDKITE_ORGANIZATION_SLUG"),
		Pipeline: getEnv(envs, "BUILDKITE_PIPELINE_SLUG"),
		Build:    getEnv(envs, "BUILDKITE_BUILD_NUMBER"),
		token:    getEnv(envs, "BUILDKITE_API_TOKEN"),
	}
	if a.Org == "" || a.Pipeline == "" || a.Build == "" || a.token == "" {
		return nil
	}
	return a
}

func annotationStyle(errs, warns int) string {
	switch {
	case errs > 0:
		return "error"
	case warns > 0:
		return "warning"
	}
	return "success"
}

// annotationBody renders the lint summary as Buildkite annotation markdown.
func annotationBody(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**lint**: %s\n", describe(r.ErrorCount, r.WarningCount))
	for _, f := range r.Files {
		if f.ErrorCount == 0 && f.WarningCount == 0 {
			continue
		}
		fmt.Fprintf(&b, "- `%s`: %s\n", f.FilePath,
			describe(f.ErrorCount, f.WarningCount))
	}
	return b.String()
}

// post creates the annotation on the Buildkite build.
func (a *annotation) post(ctx context.Context, r *Report) error {
	client, err := buildkite.NewOpts(buildkite.WithTokenAuth(a.token))
	if err != nil {
		return fmt.Errorf("create buildkite client: %w", err)
	}

	create := buildkite.AnnotationCreate{
		Body:    annotationBody(r),
		Style:   annotationStyle(r.ErrorCount, r.WarningCount),
		Context: "lintci",
	}

	if _, _, err := client.Annotations.Create(
		ctx, a.Org, a.Pipeline, a.Build, create,
	); err != nil {
		return fmt.Errorf("create annotation: %w", err)
	}
	return nil
}
