package gen

// templateText holds every file template. Output is formatted afterwards,
// so blank-line runs and alignment need not be exact here.
const templateText = `
{{- define "package"}}{{.Header}}

{{if .Comments}}// Package {{.Package}} holds the {{.Version}} message records, their
// MsgType registry and handler dispatch.
{{end}}package {{.Package}}

import (
	"context"

	{{if .Runtime.Named}}{{.Runtime.Alias}} {{end}}{{quote .Runtime.Path}}
)

{{if .Comments}}// BeginString is the protocol identifier of {{.Version}}.
{{end}}const BeginString = {{quote .BeginString}}

{{if .Comments}}// Version is BeginString plus the service pack, if any.
{{end}}const Version = {{quote .Version}}

{{if .Comments}}// Registry maps every {{.Version}} MsgType to its record and handler method.
{{end}}var Registry = {{.Runtime.Alias}}.NewRegistry(BeginString,
{{- range .Routes}}
	{{$.Runtime.Alias}}.Route{
		MsgType: {{quote .MsgType}},
		Name:    {{quote .Name}},
		Handler: {{quote .HandlerMethod}},
		New:     func() {{$.Runtime.Alias}}.Record { return new({{.TypeName}}) },
		Dispatch: func(ctx context.Context, h any, rec {{$.Runtime.Alias}}.Record) (bool, error) {
			handler, ok := h.({{.Handler}})
			if !ok {
				return false, nil
			}

			return true, handler.{{.HandlerMethod}}(ctx, rec.(*{{.TypeName}}))
		},
	},
{{- end}}
)

{{if .Comments}}// Decode builds the record registered for the MsgType of msg.
{{end}}func Decode(msg {{.Runtime.Alias}}.MessageView) ({{.Runtime.Alias}}.Record, error) {
	return Registry.Decode(msg)
}

{{if .Comments}}// Crack decodes msg and calls the matching handler method of h. Messages
// with an unknown MsgType, or that h has no method for, go to fallback.
{{end}}func Crack(ctx context.Context, h any, msg {{.Runtime.Alias}}.MessageView, fallback {{.Runtime.Alias}}.DefaultHandler) error {
	return Registry.Crack(ctx, h, msg, fallback)
}
{{end}}

{{- define "message"}}{{.Header}}

package {{.Package}}

import (
	"context"
{{- if .UsesTime}}
	"time"
{{- end}}

	{{if .Runtime.Named}}{{.Runtime.Alias}} {{end}}{{quote .Runtime.Path}}
{{- if .UsesEnum}}
	{{quote .EnumImport}}
{{- end}}
)
{{with .Message}}
{{template "struct" .}}
{{if .Comments}}// MsgType returns {{quote .MsgType}}.
{{end}}func (m *{{.TypeName}}) MsgType() string {
	return {{quote .MsgType}}
}
{{template "decode" .}}
{{template "encode" .}}
{{if .Comments}}// ToMessage encodes m into a new {{.RT}}.Message.
{{end}}func (m *{{.TypeName}}) ToMessage() *{{.RT}}.Message {
	msg := {{.RT}}.NewMessage()
	m.Encode(msg)

	return msg
}

{{if .Comments}}// {{.Handler}} receives decoded {{.Name}} messages.
{{end}}type {{.Handler}} interface {
	{{.HandlerMethod}}(ctx context.Context, msg *{{.TypeName}}) error
}
{{- end}}
{{- range .Groups}}

{{template "struct" .}}
{{template "decode" .}}
{{template "encode" .}}
{{- end}}
{{end}}

{{- define "struct"}}
{{- if .Comments}}
{{- if .IsMessage}}// {{.TypeName}} is the {{.Name}} message, MsgType {{.MsgType}}{{if .MsgCategory}} ({{.MsgCategory}}){{end}}.
{{else}}// {{.TypeName}} is an entry of the {{.Name}} repeating group of {{.Parent}}.
{{end}}
{{- end}}type {{.TypeName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.Type}} // tag {{.Tag}}
{{- end}}
}
{{end}}

{{- define "decode"}}
{{if .Comments}}// Decode reads m from v, replacing its previous contents.
{{end}}func (m *{{.TypeName}}) Decode(v {{.RT}}.View) error {
	*m = {{.TypeName}}{}
{{- if .Decode}}

	var err error
{{- range .Decode}}
{{- if .IsGroup}}
	if m.{{.GoName}}, err = {{$.RT}}.DecodeGroup[{{.ElemType}}](v, {{.Tag}}, {{.Required}}); err != nil {
		return err
	}
{{- else}}
	if m.{{.GoName}}, err = {{$.RT}}.{{if .Required}}Require{{else}}Optional{{end}}(v, {{.Tag}}, {{.Parse}}); err != nil {
		return err
	}
{{- end}}
{{- end}}
{{- end}}

	return nil
}
{{end}}

{{- define "encode"}}
{{if .Comments}}// Encode writes m to v{{if .IsMessage}}, starting with its MsgType{{end}}.
{{end}}func (m *{{.TypeName}}) Encode(v {{.RT}}.{{if .IsMessage}}MessageView{{else}}View{{end}}) {
{{- if .IsMessage}}
	v.SetMsgType({{quote .MsgType}})
{{- end}}
{{- range .Scalars}}
{{- if .Required}}
	v.SetField({{.Tag}}, {{.FormatExpr}})
{{- else}}
	if m.{{.GoName}} != nil {
		v.SetField({{.Tag}}, {{.FormatExpr}})
	}
{{- end}}
{{- end}}
{{- range .Groups}}
	{{$.RT}}.EncodeGroup(v, {{.Tag}}, m.{{.GoName}}, {{.Required}})
{{- end}}
}
{{end}}

{{- define "enums"}}{{.Header}}

{{if .Comments}}// Package enum holds the enumerated field values of {{.Version}}.
{{end}}package enum
{{- if .Enums}}

import {{if .Runtime.Named}}{{.Runtime.Alias}} {{end}}{{quote .Runtime.Path}}
{{- end}}
{{- range $e := .Enums}}

{{if $.Comments}}// {{$e.Name}} enumerates the values of field {{$e.FieldName}} (tag {{$e.Tag}}, {{$e.RawType}}).
{{end}}type {{$e.Name}} {{$e.Underlying}}

const (
{{- range $e.Members}}
	{{.Const}} {{$e.Name}} = {{.Literal}}
{{- end}}
)

{{if $.Comments}}// Parse{{$e.Name}} converts a wire value into a {{$e.Name}}.
{{end}}func Parse{{$e.Name}}(s string) ({{$e.Name}}, error) {
	v, err := {{$.Runtime.Alias}}.Parse{{$e.Converter}}(s)
	e := {{$e.Name}}(v)
	if err != nil {
		return e, err
	}

	if !e.IsValid() {
		return e, &{{$.Runtime.Alias}}.UnknownEnumValueError{Type: {{quote $e.Name}}, Value: s}
	}

	return e, nil
}

{{if $.Comments}}// IsValid reports whether e is a declared {{$e.Name}} value.
{{end}}func (e {{$e.Name}}) IsValid() bool {
	switch e {
	case {{$e.Distinct}}:
		return true
	}

	return false
}

{{if $.Comments}}// String returns the wire form of e.
{{end}}func (e {{$e.Name}}) String() string {
	return {{$.Runtime.Alias}}.Format{{$e.Converter}}({{$e.Underlying}}(e))
}
{{- end}}
{{end}}
`
