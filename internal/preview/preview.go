// Package preview turns generated JSX text into a standalone HTML document
// for a sandboxed iframe. The source is rewritten by literal string
// substitution — no grammar, no transpiler — and handed to Babel standalone
// in the browser, which compiles and mounts the component at runtime.
// Failures surface as an error box rendered inside the frame.
package preview

import (
	"regexp"
	"strings"

	"github.com/appforge/appforge-api/internal/codefmt"
)

var (
	importLineRe = regexp.MustCompile(`(?m)^import.*$`)
	// The default-export prefix is dropped but the declaration it was
	// attached to is kept, so the component stays defined for the render
	// call below.
	exportDefaultRe = regexp.MustCompile(`(?m)^export\s+default\s+`)
	exportLineRe    = regexp.MustCompile(`(?m)^export\s.*$`)
)

// attrReplacer maps the few JSX attributes the transform understands onto
// their HTML equivalents.
var attrReplacer = strings.NewReplacer(
	"className", "class",
	"onClick", "onclick",
	"onChange", "onchange",
)

// Render builds the HTML document embedding the transformed source in a
// text/babel script that mounts the component with ReactDOM.
func Render(code string) string {
	doc := strings.Replace(documentTemplate, "__COMPONENT__", transform(code), 1)
	return strings.Replace(doc, "__NAME__", codefmt.ComponentName(code), 1)
}

// transform strips module syntax and rewrites the known JSX attributes.
func transform(code string) string {
	t := importLineRe.ReplaceAllString(code, "")
	t = exportDefaultRe.ReplaceAllString(t, "")
	t = exportLineRe.ReplaceAllString(t, "")
	t = attrReplacer.Replace(t)
	return strings.TrimSpace(t)
}

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Preview</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script src="https://unpkg.com/react@18/umd/react.development.js"></script>
    <script src="https://unpkg.com/react-dom@18/umd/react-dom.development.js"></script>
    <script src="https://unpkg.com/@babel/standalone/babel.min.js"></script>
    <style>
        body {
            margin: 0;
            padding: 16px;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto',
                'Helvetica Neue', sans-serif;
            -webkit-font-smoothing: antialiased;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }
        .preview-wrapper {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 12px;
            padding: 24px;
            min-height: 400px;
        }
        .error {
            color: #ef4444;
            background: #fee2e2;
            padding: 12px;
            border-radius: 6px;
            border: 1px solid #fecaca;
        }
    </style>
</head>
<body>
    <div class="preview-wrapper">
        <div id="root"></div>
    </div>
    <script type="text/babel">
        const { useState, useEffect } = React;

        try {
            __COMPONENT__

            const root = ReactDOM.createRoot(document.getElementById('root'));
            root.render(<__NAME__ />);
        } catch (error) {
            document.getElementById('root').innerHTML =
                '<div class="error">' +
                '<h3>Preview Error</h3>' +
                '<p>' + error.message + '</p>' +
                '<small>Please check your code syntax and try again.</small>' +
                '</div>';
        }
    </script>
</body>
</html>
`
