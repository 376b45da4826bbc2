package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

const (
	helpTemplate = `Commands: {{ join ", " .Verbs }}`

	aboutTemplate = `=== {{ .Title }} ===
A console adventure game.
Explore the rooms, collect items and fight monsters!
Type 'help' for the list of commands.`

	scoresTemplate = `=== High scores ===
{{- range $i, $e := .Entries }}
{{ add1 $i }}. {{ $e.Player }}: {{ $e.Score }} ({{ $e.Reason }}, {{ date "2006-01-02 15:04" $e.RecordedAt }})
{{- end }}`
)

// deathTemplate is shown when the hero dies.
var deathTemplate = `You died! Game over.
Final score: {{ .Score }}`

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct or map - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
