package genmsgs

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

var msgTemplate = `
// Automatically generated from the message definition "{{ .FullName }}.msg"
package {{ .Package }}

import (
    "bytes"
{{- if .BinaryRequired }}
    "encoding/binary"
{{- end }}

    "{{ .RuntimeImport }}"
{{- range .Imports }}
    "{{ . }}"
{{- end }}
)

{{- if gt (len .Constants) 0 }}

const (
{{- range .Constants }}
{{- if eq .Type "string" }}
    {{ $.GoName }}_{{ .Name }} {{ .Type }} = "{{ .Value }}"
{{- else }}
    {{ $.GoName }}_{{ .Name }} {{ .Type }} = {{ .Value }}
{{- end }}
{{- end }}
)
{{- end }}

type _Msg{{ .GoName }} struct {
    text   string
    name   string
    md5sum string
}

func (t *_Msg{{ .GoName }}) Text() string {
    return t.text
}

func (t *_Msg{{ .GoName }}) Name() string {
    return t.name
}

func (t *_Msg{{ .GoName }}) MD5Sum() string {
    return t.md5sum
}

func (t *_Msg{{ .GoName }}) NewMessage() msgs.Message {
    m := new({{ .GoName }})
{{- range .Fields }}
{{-     if .IsArray }}
{{-         if eq .ArrayLen -1 }}
    m.{{ .GoName }} = []{{ .GoType }}{}
{{-         else }}
    for i := 0; i < {{ .ArrayLen }}; i++ {
        m.{{ .GoName }}[i] = {{ .ZeroValue }}
    }
{{-         end }}
{{-     else }}
    m.{{ .GoName }} = {{ .ZeroValue }}
{{-     end }}
{{- end }}
    return m
}

var (
    Msg{{ .GoName }} = &_Msg{{ .GoName }}{
        ` + "`" + `{{ .Text }}` + "`" + `,
        "{{ .FullName }}",
        "{{ .MD5Sum }}",
    }
)

type {{ .GoName }} struct {
{{- range .Fields }}
{{-     if .IsArray }}
{{-         if eq .ArrayLen -1 }}
    {{ .GoName }} []{{ .GoType }}` + " `rosmsg:\"{{ .Name }}:{{ .Type }}[]\"`" + `
{{-         else }}
    {{ .GoName }} [{{ .ArrayLen }}]{{ .GoType }}` + " `rosmsg:\"{{ .Name }}:{{ .Type }}[{{ .ArrayLen }}]\"`" + `
{{-         end }}
{{-     else }}
    {{ .GoName }} {{ .GoType }}` + " `rosmsg:\"{{ .Name }}:{{ .Type }}\"`" + `
{{-     end }}
{{- end }}
}

func (m *{{ .GoName }}) Type() msgs.MessageType {
    return Msg{{ .GoName }}
}

func (m *{{ .GoName }}) Serialize(buf *bytes.Buffer) error {
    var err error = nil
{{- range .Fields }}
{{-     if .IsArray }}
{{-        if lt .ArrayLen 0 }}
    binary.Write(buf, binary.LittleEndian, uint32(len(m.{{ .GoName }})))
{{-        end }}
    for _, e := range m.{{ .GoName }} {
{{-         if .IsBuiltin }}
{{-             if eq .Type "string" }}
        binary.Write(buf, binary.LittleEndian, uint32(len([]byte(e))))
        buf.Write([]byte(e))
{{-             else if or (eq .Type "time") (eq .Type "duration") }}
        binary.Write(buf, binary.LittleEndian, e.Sec)
        binary.Write(buf, binary.LittleEndian, e.NSec)
{{-             else }}
        binary.Write(buf, binary.LittleEndian, e)
{{-             end }}
{{-         else }}
        if err = e.Serialize(buf); err != nil {
            return err
        }
{{-         end }}
    }
{{-     else }}
{{-         if .IsBuiltin }}
{{-             if eq .Type "string" }}
    binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.{{ .GoName }}))))
    buf.Write([]byte(m.{{ .GoName }}))
{{-             else if or (eq .Type "time") (eq .Type "duration") }}
    binary.Write(buf, binary.LittleEndian, m.{{ .GoName }}.Sec)
    binary.Write(buf, binary.LittleEndian, m.{{ .GoName }}.NSec)
{{-             else }}
    binary.Write(buf, binary.LittleEndian, m.{{ .GoName }})
{{-             end }}
{{-         else }}
    if err = m.{{ .GoName }}.Serialize(buf); err != nil {
        return err
    }
{{-         end }}
{{-     end }}
{{- end }}
    return err
}

func (m *{{ .GoName }}) Deserialize(buf *bytes.Reader) error {
    var err error = nil
{{- range .Fields }}
{{-    if .IsArray }}
    {
{{-        if lt .ArrayLen 0 }}
        var size uint32
        if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
            return err
        }
        m.{{ .GoName }} = make([]{{ .GoType }}, int(size))
        for i := 0; i < int(size); i++ {
{{-        else }}
        for i := 0; i < {{ .ArrayLen }}; i++ {
{{-        end }}
{{-        if .IsBuiltin }}
{{-            if eq .Type "string" }}
            {
                var size uint32
                if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
                    return err
                }
                data := make([]byte, int(size))
                if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
                    return err
                }
                m.{{ .GoName }}[i] = string(data)
            }
{{-            else if or (eq .Type "time") (eq .Type "duration") }}
            {
                if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}[i].Sec); err != nil {
                    return err
                }
                if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}[i].NSec); err != nil {
                    return err
                }
            }
{{-            else }}
            if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}[i]); err != nil {
                return err
            }
{{-            end }}
{{-        else }}
            if err = m.{{ .GoName }}[i].Deserialize(buf); err != nil {
                return err
            }
{{-        end }}
        }
    }
{{-    else }}
{{-        if .IsBuiltin }}
{{-            if eq .Type "string" }}
    {
        var size uint32
        if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
            return err
        }
        data := make([]byte, int(size))
        if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
            return err
        }
        m.{{ .GoName }} = string(data)
    }
{{-            else if or (eq .Type "time") (eq .Type "duration") }}
    {
        if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}.Sec); err != nil {
            return err
        }
        if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}.NSec); err != nil {
            return err
        }
    }
{{-            else }}
    if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}); err != nil {
        return err
    }
{{-            end }}
{{-        else }}
    if err = m.{{ .GoName }}.Deserialize(buf); err != nil {
        return err
    }
{{-        end }}
{{-    end }}
{{- end }}
    return err
}
`

var srvTemplate = `
// Automatically generated from the service definition "{{ .Spec.FullName }}.srv"
package {{ .Spec.Package }}

import (
    "{{ .RuntimeImport }}"
)

// Service type metadata
type _Srv{{ .Spec.GoName }} struct {
    name    string
    md5sum  string
    text    string
    reqType msgs.MessageType
    resType msgs.MessageType
}

func (t *_Srv{{ .Spec.GoName }}) Name() string                   { return t.name }
func (t *_Srv{{ .Spec.GoName }}) MD5Sum() string                 { return t.md5sum }
func (t *_Srv{{ .Spec.GoName }}) Text() string                   { return t.text }
func (t *_Srv{{ .Spec.GoName }}) RequestType() msgs.MessageType  { return t.reqType }
func (t *_Srv{{ .Spec.GoName }}) ResponseType() msgs.MessageType { return t.resType }
func (t *_Srv{{ .Spec.GoName }}) NewService() msgs.Service {
    return new({{ .Spec.GoName }})
}

var (
    Srv{{ .Spec.GoName }} = &_Srv{{ .Spec.GoName }}{
        "{{ .Spec.FullName }}",
        "{{ .Spec.MD5Sum }}",
        ` + "`" + `{{ .Spec.Text }}` + "`" + `,
        Msg{{ .Spec.GoName }}Request,
        Msg{{ .Spec.GoName }}Response,
    }
)

type {{ .Spec.GoName }} struct {
    Request  {{ .Spec.GoName }}Request
    Response {{ .Spec.GoName }}Response
}

func (s *{{ .Spec.GoName }}) ReqMessage() msgs.Message { return &s.Request }
func (s *{{ .Spec.GoName }}) ResMessage() msgs.Message { return &s.Response }
`

// MsgGen carries a message spec plus everything the template needs that is
// not part of the schema itself.
type MsgGen struct {
	MsgSpec
	BinaryRequired bool
	Imports        []string
	RuntimeImport  string
}

type srvGen struct {
	Spec          *SrvSpec
	RuntimeImport string
}

func (gen *MsgGen) analyzeImports(importPrefix string) {
	for i, field := range gen.Fields {
		if len(field.Package) == 0 {
			// Builtin scalars read and write through encoding/binary.
			gen.BinaryRequired = true
		} else if gen.Package == field.Package {
			// Same-package types are referenced without qualifier.
			gen.Fields[i].GoType = field.Type
			gen.Fields[i].ZeroValue = field.Type + "{}"
		} else {
			gen.addImport(importPrefix + "/" + field.Package)
		}
		if field.IsArray {
			gen.BinaryRequired = true
		}
	}
}

func (gen *MsgGen) addImport(imp string) {
	for _, existing := range gen.Imports {
		if existing == imp {
			return
		}
	}
	gen.Imports = append(gen.Imports, imp)
}

// GenerateMessage renders the Go binding for spec. importPrefix is the
// import path under which the runtime package and all generated schema
// packages live.
func GenerateMessage(spec *MsgSpec, importPrefix string) (string, error) {
	gen := MsgGen{MsgSpec: *spec, RuntimeImport: importPrefix}
	gen.Fields = append([]Field(nil), spec.Fields...)
	gen.analyzeImports(importPrefix)

	tmpl, err := template.New("msg").Parse(msgTemplate)
	if err != nil {
		return "", err
	}
	var buffer bytes.Buffer
	if err := tmpl.Execute(&buffer, gen); err != nil {
		return "", errors.Wrapf(err, "rendering message %s", spec.FullName)
	}
	return buffer.String(), nil
}

// GenerateService renders the Go bindings for spec: the service metadata
// file plus the request and response message files.
func GenerateService(spec *SrvSpec, importPrefix string) (srvCode string, reqCode string, resCode string, err error) {
	reqCode, err = GenerateMessage(spec.Request, importPrefix)
	if err != nil {
		return "", "", "", err
	}
	resCode, err = GenerateMessage(spec.Response, importPrefix)
	if err != nil {
		return "", "", "", err
	}

	tmpl, err := template.New("srv").Parse(srvTemplate)
	if err != nil {
		return "", "", "", err
	}
	var buffer bytes.Buffer
	if err := tmpl.Execute(&buffer, srvGen{Spec: spec, RuntimeImport: importPrefix}); err != nil {
		return "", "", "", errors.Wrapf(err, "rendering service %s", spec.FullName)
	}
	return buffer.String(), reqCode, resCode, nil
}
