// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"
)

// htmlTemplate renders comparison rows as a table. Emphasis tags map
// to CSS classes so a style sheet can mirror the terminal colors.
var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(
	template.MakeTrustedTemplate(`
{{- if .Title}}<h3 class='callgrind-title'>{{.Title}}</h3>
{{end -}}
<table class='callgrind'>
<tr><th>event<th>new<th>old<th>delta<th>factor
{{- range .Rows}}
<tr><td>{{.Label}}<td class='{{.New.Emphasis}}'>{{.New.Text}}<td class='{{.Old.Emphasis}}'>{{.Old.Text}}<td class='{{.Delta.Emphasis}}'>{{.Delta.Text}}<td class='{{.Factor.Emphasis}}'>{{.Factor.Text}}
{{- end}}
</table>
`)))

// FormatHTML writes the comparison rows to w as an HTML table,
// preceded by title when non-empty. Cell contents are escaped by the
// template engine.
func FormatHTML(w io.Writer, title string, rows []Row) error {
	data := struct {
		Title string
		Rows  []Row
	}{title, rows}
	return htmlTemplate.Execute(w, data)
}
