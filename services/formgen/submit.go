package formgen

import (
	"errors"
	"strings"

	"github.com/icei-ads/portal-eventos/model"
)

// Validation failures surface as a single field-agnostic Portuguese message.
var (
	ErrCamposObrigatorios = errors.New("Por favor, preencha os campos obrigatórios: Título, Data, Responsável, Tipo de Evento e Modalidade")
	ErrLocalPresencial    = errors.New("Por favor, preencha o campo Local para eventos Presenciais")
	ErrLinkOnline         = errors.New("Por favor, preencha o campo Link para eventos Online ou Híbridos")
	ErrLocalHibrido       = errors.New("Por favor, preencha o campo Local para eventos Híbridos")
)

// CursoPadrao is the single program the portal serves.
const CursoPadrao = "Análise e Desenvolvimento de Sistemas"

// EventoSubmissao is the payload assembled from the dynamic form plus the
// bespoke modality fields at submit time.
type EventoSubmissao struct {
	Titulo        string   `json:"titulo"`
	Data          string   `json:"data"`
	Responsavel   string   `json:"responsavel"`
	Status        string   `json:"status"`
	Local         string   `json:"local,omitempty"`
	Link          string   `json:"link,omitempty"`
	Curso         string   `json:"curso"`
	TipoEvento    string   `json:"tipoEvento"`
	Modalidade    string   `json:"modalidade"`
	Descricao     string   `json:"descricao,omitempty"`
	Imagem        string   `json:"imagem,omitempty"`
	Documento     string   `json:"documento,omitempty"`
	OdsAssociadas []int    `json:"odsAssociadas,omitempty"`
	Anexos        []string `json:"anexos,omitempty"`
}

// Bespoke carries the form inputs handled outside the generic field loop.
type Bespoke struct {
	TipoEvento string
	Modalidade string
	Local      string
	Link       string
	Descricao  string
	Ods        []int
}

// BuildSubmissao scans the form values for the core event columns, merges the
// bespoke fields and the file side channels, and returns the payload to post.
// Status defaults to Pendente when the column is empty or absent.
func (f *Form) BuildSubmissao(b Bespoke) EventoSubmissao {
	s := EventoSubmissao{
		Status:     model.StatusPendente,
		Curso:      CursoPadrao,
		TipoEvento: b.TipoEvento,
		Modalidade: b.Modalidade,
		Descricao:  b.Descricao,
	}

	for header, value := range f.Values {
		lower := strings.ToLower(header)
		switch {
		case strings.Contains(lower, "título"):
			s.Titulo = value
		case strings.Contains(lower, "data de início"):
			s.Data = value
		case strings.Contains(lower, "responsável"):
			s.Responsavel = value
		case strings.Contains(lower, "status"):
			if value != "" {
				s.Status = value
			}
		}
	}

	// Local never applies to Online events, link never to Presencial ones.
	if b.Modalidade != model.ModalidadeOnline {
		s.Local = b.Local
	}
	if b.Modalidade != model.ModalidadePresencial {
		s.Link = b.Link
	}

	if f.ImagePreview != "" {
		s.Imagem = f.ImagePreview
	}
	if doc := f.Documento(); doc != "" {
		s.Documento = doc
	}
	if len(f.AnexosFiles) > 0 {
		s.Anexos = f.AnexoNomes()
	}
	s.OdsAssociadas = b.Ods

	return s
}

// Validate applies the submit-time checks: presence of the required columns
// and the modality/local/link cross-field rules. The first violation aborts
// the submission.
func (s EventoSubmissao) Validate() error {
	if strings.TrimSpace(s.Titulo) == "" ||
		strings.TrimSpace(s.Data) == "" ||
		strings.TrimSpace(s.Responsavel) == "" ||
		strings.TrimSpace(s.TipoEvento) == "" ||
		strings.TrimSpace(s.Modalidade) == "" {
		return ErrCamposObrigatorios
	}
	return ValidateModalidade(s.Modalidade, s.Local, s.Link)
}

// ValidateModalidade enforces the delivery-mode invariant: Presencial needs a
// local, Online needs a link, Híbrido needs both.
func ValidateModalidade(modalidade, local, link string) error {
	local = strings.TrimSpace(local)
	link = strings.TrimSpace(link)

	if modalidade == model.ModalidadePresencial && local == "" {
		return ErrLocalPresencial
	}
	if (modalidade == model.ModalidadeOnline || modalidade == model.ModalidadeHibrido) && link == "" {
		return ErrLinkOnline
	}
	if modalidade == model.ModalidadeHibrido && local == "" {
		return ErrLocalHibrido
	}
	return nil
}
