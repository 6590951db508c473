// Package feed holds the small amount of real logic behind the social
// feed: collapsing duplicate posts that arrive from multiple sources.
package feed

import (
	"sort"
	"strings"

	"github.com/vlinks/planner/internal/model"
)

// Fingerprint is the dedup key for a post: the id when present, padded
// with author, trimmed title and first image so locally drafted posts
// without ids still collapse.
func Fingerprint(p *model.Post) string {
	first := ""
	if len(p.Images) > 0 {
		first = p.Images[0]
	}
	return p.ID + "|" + p.AuthorID + "|" + strings.TrimSpace(p.Title) + "|" + first
}

// Dedupe keeps the first occurrence of each fingerprint and returns the
// survivors newest first.
func Dedupe(posts []*model.Post) []*model.Post {
	seen := make(map[string]struct{}, len(posts))
	out := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		k := Fingerprint(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
