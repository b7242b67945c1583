package split

import "text/template"

//nolint:lll
const tmplText = `{{range .Splits}}
// {{.Method}} moves the first {{.Plan.K}} elements of {{$.Recv}} into {{$.Left}} and the remaining {{.Plan.L}} into {{$.Right}}.
// Every element of {{$.Recv}} is zeroed afterwards.
func ({{$.Recv}} *{{$.Name}}{{$.TypeParams}}) {{.Method}}() ({{$.Left}} [{{.Plan.K}}]{{$.Elem}}, {{$.Right}} [{{.Plan.L}}]{{$.Elem}}) {
	{{$.Src}} := (*[{{.Plan.K}} + {{.Plan.L}}]{{$.Elem}})({{$.Recv}})

	{{$.Own}}.Relocate({{$.Left}}[:], {{$.Src}}[:{{.Plan.K}}])
	{{$.Own}}.Relocate({{$.Right}}[:], {{$.Src}}[{{.Plan.K}}:])

	return {{$.Left}}, {{$.Right}}
}
{{end}}`

var tmpl = template.Must(template.New("split").Parse(tmplText))
