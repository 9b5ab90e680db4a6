// Package merge combines two letter bodies into one using a positional
// heuristic: the new content contributes the introduction and conclusion,
// the existing content contributes the middle paragraphs.
package merge

import (
	"github.com/motivationletter/plume/model"
)

// Content merges existing and new letter bodies. The result is
// [introduction, middle paragraphs, conclusion] joined by blank lines:
//
//   - introduction: first paragraph of newContent, falling back to the
//     first paragraph of existingContent;
//   - middle: every paragraph of existingContent except the first and last;
//   - conclusion: last paragraph of newContent, falling back to the last
//     paragraph of existingContent.
//
// Content never fails; empty inputs simply contribute nothing.
func Content(existingContent, newContent string) string {
	existing := model.SplitParagraphs(existingContent)
	fresh := model.SplitParagraphs(newContent)

	var parts []string

	if intro := firstOf(fresh, existing); intro != "" {
		parts = append(parts, intro)
	}

	if len(existing) > 2 {
		parts = append(parts, existing[1:len(existing)-1]...)
	}

	if conclusion := lastOf(fresh, existing); conclusion != "" {
		parts = append(parts, conclusion)
	}

	return model.JoinParagraphs(parts)
}

func firstOf(primary, fallback []string) string {
	if len(primary) > 0 {
		return primary[0]
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

func lastOf(primary, fallback []string) string {
	if len(primary) > 0 {
		return primary[len(primary)-1]
	}
	if len(fallback) > 0 {
		return fallback[len(fallback)-1]
	}
	return ""
}
