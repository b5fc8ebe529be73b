package formgen

// Input control types the front end knows how to render.
const (
	InputFile   = "file"
	InputSelect = "select"
	InputDate   = "date"
	InputTime   = "time"
	InputNumber = "number"
	InputText   = "text"
)

// Field describes one form control derived from a spreadsheet header.
type Field struct {
	Header   string    `json:"header"`
	Kind     FieldKind `json:"kind"`
	Input    string    `json:"input"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
	Multiple bool      `json:"multiple,omitempty"`
	Image    bool      `json:"image,omitempty"`
	Anexo    bool      `json:"anexo,omitempty"`
}

// BuildSchema classifies each header and resolves it into a renderable field.
// Suppressed headers (modalidade, link/local) are dropped entirely; the
// bespoke modality fields own them. responsaveis feeds the select-responsavel
// option list with all known user display names.
func BuildSchema(headers []string, responsaveis []string) []Field {
	fields := make([]Field, 0, len(headers))

	for _, header := range headers {
		if header == "" || Suppressed(header) {
			continue
		}

		kind := Classify(header)
		field := Field{Header: header, Kind: kind}

		switch {
		case kind == KindFile || IsImageHeader(header) || IsAnexoHeader(header):
			field.Input = InputFile
			field.Image = IsImageHeader(header)
			field.Anexo = IsAnexoHeader(header)
			// Image pickers take a single file; every other file field is
			// a multi-select.
			field.Multiple = !field.Image
		case kind == KindSelectStatus:
			field.Input = InputSelect
			field.Options = StatusOptions
		case kind == KindSelectResponsavel:
			field.Input = InputSelect
			field.Options = responsaveis
		default:
			if opts, ok := StaticOptions(header); ok {
				field.Input = InputSelect
				field.Options = opts
				break
			}
			switch kind {
			case KindDate:
				field.Input = InputDate
				field.Required = true
			case KindTime:
				field.Input = InputTime
			case KindNumber:
				field.Input = InputNumber
			default:
				field.Input = InputText
			}
		}

		fields = append(fields, field)
	}

	return fields
}
