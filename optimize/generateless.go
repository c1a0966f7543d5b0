package optimize

import (
	"context"

	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// generateLessSkip reports whether composing r with s (both relations over
// base's doubling) can be skipped outright: project r's post-image and s's
// pre-domain down to base's plain dimensions, rename both onto a shared
// name set, and check whether their intersection is empty. If it is, no
// middle value r can produce is ever accepted by s, so the full Compose
// (rename, intersect, project) is guaranteed to return the empty set and
// can be replaced by it directly — intersecting the current relation's
// post-image with the successor's pre-domain as a short-circuit, rather
// than recomputed work Compose would redo internally anyway.
func generateLessSkip(ctx context.Context, oracle semilinear.Oracle, base *schema.Schema, r, s semilinear.Set) (bool, error) {
	preNames := dimNames(base, "pre:")
	postNames := dimNames(base, "post:")

	rPost, err := semilinear.Project(ctx, oracle, r, preNames)
	if err != nil {
		return false, err
	}
	sPre, err := semilinear.Project(ctx, oracle, s, postNames)
	if err != nil {
		return false, err
	}

	rRenamed, err := renameTo(rPost, "post:", "mid:")
	if err != nil {
		return false, err
	}
	sRenamed, err := renameTo(sPre, "pre:", "mid:")
	if err != nil {
		return false, err
	}

	joined, err := semilinear.Intersect(ctx, oracle, rRenamed, sRenamed)
	if err != nil {
		return false, err
	}

	return semilinear.IsEmpty(ctx, oracle, joined)
}

func dimNames(base *schema.Schema, prefix string) []string {
	names := make([]string, base.Len())
	for i, d := range base.Dims() {
		names[i] = prefix + d.Name
	}

	return names
}

func renameTo(s semilinear.Set, from, to string) (semilinear.Set, error) {
	rename := make(map[string]string, s.Schema.Len())
	for _, d := range s.Schema.Dims() {
		if len(d.Name) >= len(from) && d.Name[:len(from)] == from {
			rename[d.Name] = to + d.Name[len(from):]
		}
	}
	renamed, err := schema.Rename(s.Schema, rename)
	if err != nil {
		return semilinear.Set{}, err
	}

	return semilinear.New(renamed, s.Linears...)
}
