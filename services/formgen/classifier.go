package formgen

import (
	"regexp"
	"strings"
)

// FieldKind is the semantic input kind inferred from a column header.
type FieldKind string

const (
	KindFile              FieldKind = "file"
	KindText              FieldKind = "text"
	KindDate              FieldKind = "date"
	KindTime              FieldKind = "time"
	KindSelectStatus      FieldKind = "select-status"
	KindSelectResponsavel FieldKind = "select-responsavel"
	KindNumber            FieldKind = "number"
)

var (
	reArquivo = regexp.MustCompile(`anexo|anexos|arquivo`)
	reContato = regexp.MustCompile(`email|e-mail|telefone|celular|whatsapp`)
	reData    = regexp.MustCompile(`data`)
	reAudit   = regexp.MustCompile(`atualiza|cria`)
	reHora    = regexp.MustCompile(`hora|horário|horario`)
	reStatus  = regexp.MustCompile(`status|situação|situacao`)
	reResp    = regexp.MustCompile(`responsável|responsavel|professor`)
	reNumero  = regexp.MustCompile(`qtd|quantidade|num|n°|nº`)
)

// classifierRule pairs a predicate with the kind it yields.
type classifierRule struct {
	match func(h string) bool
	kind  FieldKind
}

// classifierRules is evaluated top to bottom and the first match wins. The
// ordering encodes precedence: contact columns stay text even when they also
// mention "data", and audit-timestamp columns (atualiza/cria) never become
// user-facing date inputs. Do not reorder.
var classifierRules = []classifierRule{
	{func(h string) bool { return reArquivo.MatchString(h) }, KindFile},
	{func(h string) bool { return reContato.MatchString(h) }, KindText},
	{func(h string) bool { return reData.MatchString(h) && !reAudit.MatchString(h) }, KindDate},
	{func(h string) bool { return reHora.MatchString(h) }, KindTime},
	{func(h string) bool { return reStatus.MatchString(h) }, KindSelectStatus},
	{func(h string) bool { return reResp.MatchString(h) }, KindSelectResponsavel},
	{func(h string) bool { return reNumero.MatchString(h) }, KindNumber},
}

// Classify maps a free-text column header (natural language, mixed case,
// Portuguese) to exactly one field kind.
func Classify(header string) FieldKind {
	h := strings.ToLower(header)
	for _, rule := range classifierRules {
		if rule.match(h) {
			return rule.kind
		}
	}
	return KindText
}
