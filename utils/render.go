package utils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
)

// RenderScript prints the generated script with Go syntax highlighting so the
// user can read it before it runs. Falls back to plain text when highlighting
// fails (e.g. unknown theme).
func RenderScript(script string, theme string) {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, script+"\n", "go", "terminal256", theme); err != nil {
		fmt.Println(script)
		return
	}
	_, _ = buf.WriteTo(os.Stdout)
}
