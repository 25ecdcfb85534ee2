// Package codefmt post-processes model-generated React source. Every
// transform here is a best-effort string heuristic: there is no parser, no
// AST, and no correctness guarantee. Bracket counting breaks on strings or
// comments containing brackets, and import injection is substring matching.
// Callers must not treat the output as verified code.
package codefmt

import (
	"fmt"
	"regexp"
	"strings"
)

const indentSize = 2

var (
	leadingFenceRe  = regexp.MustCompile(`(?i)^` + "```" + `(?:tsx|typescript|javascript|jsx|js|ts)?\n?`)
	trailingFenceRe = regexp.MustCompile(`\n?` + "```" + `$`)
	innerFenceRe    = regexp.MustCompile(`(?is)` + "```" + `(?:tsx|typescript|javascript|jsx|js|ts)?\n?(.*?)\n?` + "```")
	codeStartRe     = regexp.MustCompile(`^(import|export|interface|type|function|const|class)\b`)
	blankRunRe      = regexp.MustCompile(`\n\s*\n\s*\n`)
	hookNameRe      = regexp.MustCompile(`use[A-Z]\w*`)

	funcNameRe          = regexp.MustCompile(`function\s+(\w+)`)
	constNameRe         = regexp.MustCompile(`const\s+(\w+)\s*[:=]`)
	classNameRe         = regexp.MustCompile(`class\s+(\w+)`)
	exportDefaultFuncRe = regexp.MustCompile(`export\s+default\s+function\s+(\w+)`)
)

// StripFences removes markdown code fencing from a model reply. When the
// remainder still does not look like code, it falls back to extracting the
// first fenced block found inside the text.
func StripFences(reply string) string {
	code := strings.TrimSpace(reply)
	code = leadingFenceRe.ReplaceAllString(code, "")
	code = trailingFenceRe.ReplaceAllString(code, "")

	if !codeStartRe.MatchString(code) {
		if m := innerFenceRe.FindStringSubmatch(code); m != nil {
			code = m[1]
		}
	}
	return strings.TrimSpace(code)
}

// EnsureReactImports prepends a React import when none is present, guessing
// the hook list by scanning for hook-name substrings. This is naive on
// purpose: a hook name inside a string literal still triggers the import.
func EnsureReactImports(code string) string {
	if strings.Contains(code, "import React") {
		return code
	}

	var hooks []string
	if strings.Contains(code, "useState") {
		hooks = append(hooks, "useState")
	}
	if strings.Contains(code, "useEffect") {
		hooks = append(hooks, "useEffect")
	}

	stmt := "import React"
	if len(hooks) > 0 {
		stmt += ", { " + strings.Join(hooks, ", ") + " }"
	} else if hookNameRe.MatchString(code) {
		stmt += ", { /* add other hooks as needed */ }"
	}
	stmt += " from 'react';\n\n"

	return stmt + code
}

// Cleanup collapses runs of blank lines, strips trailing whitespace, and
// guarantees a final newline.
func Cleanup(code string) string {
	for blankRunRe.MatchString(code) {
		code = blankRunRe.ReplaceAllString(code, "\n\n")
	}

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	code = strings.Join(lines, "\n")

	if code != "" && !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	return code
}

// Format re-indents line by line by counting brace/bracket/paren nesting
// depth. It is not a formatter in any real sense and mangles code whose
// strings or comments contain brackets.
func Format(code string) string {
	if code == "" {
		return ""
	}

	lines := strings.Split(code, "\n")
	depth := 0
	out := make([]string, len(lines))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out[i] = ""
			continue
		}

		if strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, "]") || strings.HasPrefix(trimmed, ")") {
			if depth > 0 {
				depth--
			}
		}

		out[i] = strings.Repeat(" ", depth*indentSize) + trimmed

		if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "[") || strings.HasSuffix(trimmed, "(") {
			depth++
		}
	}

	return strings.Join(out, "\n")
}

// Validate runs the acceptance heuristics. A missing import or export is a
// hard failure; everything else is a warning only.
func Validate(code string) ([]string, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("code is empty")
	}

	var errs, warnings []string

	if !strings.Contains(code, "import React") &&
		!strings.Contains(code, "import { ") &&
		!strings.Contains(code, "import * as React") {
		errs = append(errs, "missing React import statement")
	}
	if !strings.Contains(code, "export default") &&
		!strings.Contains(code, "export {") &&
		!strings.Contains(code, "module.exports") {
		errs = append(errs, "missing export statement")
	}
	if !strings.Contains(code, "<") || !strings.Contains(code, ">") {
		warnings = append(warnings, "no JSX elements found")
	}

	hasFunc := strings.Contains(code, "function ") || strings.Contains(code, "const ") || strings.Contains(code, "let ")
	hasClass := strings.Contains(code, "class ") && strings.Contains(code, "extends")
	if !hasFunc && !hasClass {
		errs = append(errs, "no component declaration found")
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, ", "))
	}
	return warnings, nil
}

// ComponentName extracts the component's name, defaulting to
// "GeneratedComponent" when no declaration pattern matches.
func ComponentName(code string) string {
	if m := exportDefaultFuncRe.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	if m := funcNameRe.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	if m := constNameRe.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	if m := classNameRe.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	return "GeneratedComponent"
}
