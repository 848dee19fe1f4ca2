package resolve

import "github.com/diggsweden/devbase/pkg/platform"

// TagSkipWSL excludes an entry when resolving inside WSL
const TagSkipWSL = "@skip-wsl"

// excludedByTags evaluates the exclusion predicates of an entry against
// the execution context. Unrecognized tags are ignored, never errors, so
// manifests may carry tags this version does not know yet.
func excludedByTags(tags []string, ctx platform.Context) bool {
	for _, tag := range tags {
		if tag == TagSkipWSL && ctx.IsWSL {
			return true
		}
	}
	return false
}
