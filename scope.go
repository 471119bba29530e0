package scopedcss

import "strings"

// RewriteScope replaces every & in content with a class selector for id.
//
// The substitution is textual. Markers inside comments, strings or nested
// blocks such as @media are rewritten too.
func RewriteScope(content, id string) string {
	return strings.ReplaceAll(content, ScopeMarker, "."+id)
}
