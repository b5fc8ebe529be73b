package formgen

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Arquivo is a file handed to the form by the user: display name plus raw
// content. MimeType may be empty; DataURL falls back to a generic type.
type Arquivo struct {
	Nome     string
	Conteudo []byte
	MimeType string
}

// DataURL encodes the file as a base64 data URL, the inline format the
// portal stores in imagem/documento columns.
func (a Arquivo) DataURL() string {
	mime := a.MimeType
	if mime == "" {
		mime = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(a.Conteudo))
}

// Form holds the mutable state of one dynamic event form: the string-keyed
// value map fed by the generic fields, plus the two side channels the value
// map does not carry (the image preview and the selected attachment files).
type Form struct {
	fields []Field

	Values       map[string]string
	ImagePreview string
	AnexosFiles  []Arquivo
}

// NewForm creates an empty form over the given schema.
func NewForm(fields []Field) *Form {
	return &Form{
		fields: fields,
		Values: make(map[string]string),
	}
}

// Fields returns the schema the form was built over.
func (f *Form) Fields() []Field {
	return f.fields
}

// SetValue records an edit for a non-file field.
func (f *Form) SetValue(header, value string) {
	f.Values[header] = value
}

// SelectFiles reports a file-picker change for the given field. Behavior
// depends on how the header classified:
//   - image headers take the first file only, store its data URL in the
//     image-preview slot and the file name in the value map;
//   - anexo headers keep the file list aside and store the comma-joined
//     names; the first file's bytes become the event documento at build time;
//   - generic file fields store the comma-joined names and drop the bytes.
func (f *Form) SelectFiles(header string, files ...Arquivo) {
	if len(files) == 0 {
		return
	}

	if IsImageHeader(header) {
		first := files[0]
		f.ImagePreview = first.DataURL()
		f.Values[header] = first.Nome
		return
	}

	names := make([]string, len(files))
	for i, file := range files {
		names[i] = file.Nome
	}

	if IsAnexoHeader(header) {
		f.AnexosFiles = files
	}
	f.Values[header] = strings.Join(names, ", ")
}

// AnexoNomes returns the names of the selected attachment files.
func (f *Form) AnexoNomes() []string {
	names := make([]string, len(f.AnexosFiles))
	for i, file := range f.AnexosFiles {
		names[i] = file.Nome
	}
	return names
}

// Documento returns the base64 data URL for the event documento column: the
// bytes of the first selected attachment. The remaining attachments only
// contribute their names (legacy first-file-wins behavior, kept on purpose).
func (f *Form) Documento() string {
	if len(f.AnexosFiles) == 0 {
		return ""
	}
	return f.AnexosFiles[0].DataURL()
}
