package formgen

import "strings"

// StatusOptions are the fixed choices for select-status fields.
var StatusOptions = []string{"Confirmado", "Pendente", "Cancelado"}

// fieldOptions maps lower-cased headers to their fixed option sets, taken
// from the event registration spreadsheet.
var fieldOptions = map[string][]string{
	"realizado pela puc minas?":   {"Sim", "Não"},
	"modalidade":                  {"Online", "Presencial", "Híbrido"},
	"participação do público?":    {"Sim", "Não"},
	"houve colaboração externa?":  {"Sim", "Não"},
	"houve colaboração interna?":  {"Sim", "Não"},
	"classificação":               {"Seminar", "Workshop", "Palestra", "Conferência", "Minicurso", "Mesa Redonda", "Outro"},
	"tipo de atividade":           {"Acadêmica", "Científica", "Cultural", "Esportiva", "Social", "Outra"},
	"odss associadas":             {"ODS 1", "ODS 2", "ODS 3", "ODS 4", "ODS 5", "ODS 6", "ODS 7", "ODS 8", "ODS 9", "ODS 10", "ODS 11", "ODS 12", "ODS 13", "ODS 14", "ODS 15", "ODS 16", "ODS 17"},
	"tipo de evento":              {"Projeto de Extensão", "Pesquisa"},
}

// StaticOptions returns the fixed option set for a header, if it has one.
func StaticOptions(header string) ([]string, bool) {
	opts, ok := fieldOptions[strings.ToLower(header)]
	return opts, ok
}

// Suppressed reports whether the header is excluded from the generic field
// loop. Modalidade and the combined link/local column are owned by bespoke
// modality-conditional fields; rendering them twice would duplicate the
// logical field.
func Suppressed(header string) bool {
	h := strings.ToLower(header)
	if strings.Contains(h, "modalidade") {
		return true
	}
	return strings.Contains(h, "link") && strings.Contains(h, "local")
}

// IsImageHeader reports whether a file field should behave as a single image
// picker with preview.
func IsImageHeader(header string) bool {
	h := strings.ToLower(header)
	return strings.Contains(h, "imagem") || strings.Contains(h, "foto")
}

// IsAnexoHeader reports whether a file field collects event attachments.
func IsAnexoHeader(header string) bool {
	return strings.Contains(strings.ToLower(header), "anexo")
}
