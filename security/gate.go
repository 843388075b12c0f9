// Package security screens generated script text before execution. The check
// is purely lexical: a lowercased substring scan against a fixed denylist.
// A passing verdict is a necessary condition, not a sufficient one — trivial
// obfuscation (indirect string construction, aliasing) evades it. Stronger
// guarantees require real sandboxing, which this gate deliberately does not
// claim to provide.
package security

import "strings"

// denylist, in scan order. Categories: the os package (generated scripts
// never need it; the quoted form catches the import without matching paths
// like "sheetflow/ops"), process and module access, dynamic evaluation of
// code, direct file-handle opening, filesystem-mutation verbs. The first
// containment match rejects the script.
var denylist = []string{
	"\"os\"",
	"os/exec",
	"syscall",
	"plugin.open",
	"unsafe",
	"yaegi",
	"eval(",
	"exec(",
	"compile(",
	"os.open",
	"os.create",
	"os.openfile",
	"rmdir",
	"remove",
	"delete",
	"unlink",
}

// protectedDir is the input directory name; scripts that mention it together
// with a deletion verb are rejected regardless of the general denylist.
const protectedDir = "uploads"

var deletionVerbs = []string{"remove", "delete"}

// Verdict is the outcome of screening one script.
type Verdict struct {
	Passed  bool
	Pattern string // the violated denylist entry, when Passed is false
}

// Screen checks scriptText against the denylist and the protected-directory
// rule. Verdicts are computed fresh for every script and never cached.
func Screen(scriptText string) Verdict {
	lowered := strings.ToLower(scriptText)

	for _, pattern := range denylist {
		if strings.Contains(lowered, pattern) {
			return Verdict{Passed: false, Pattern: pattern}
		}
	}

	if strings.Contains(lowered, protectedDir) {
		for _, verb := range deletionVerbs {
			if strings.Contains(lowered, verb) {
				return Verdict{Passed: false, Pattern: protectedDir + "+" + verb}
			}
		}
	}

	return Verdict{Passed: true}
}
