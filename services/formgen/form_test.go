package formgen

import (
	"errors"
	"strings"
	"testing"
)

func TestSelectFilesImageHeader(t *testing.T) {
	f := NewForm(nil)
	f.SelectFiles("Imagem do evento",
		Arquivo{Nome: "banner.png", Conteudo: []byte("png-bytes"), MimeType: "image/png"},
		Arquivo{Nome: "ignorada.png", Conteudo: []byte("x"), MimeType: "image/png"},
	)

	if f.Values["Imagem do evento"] != "banner.png" {
		t.Errorf("value = %q, want file name of the first file", f.Values["Imagem do evento"])
	}
	if !strings.HasPrefix(f.ImagePreview, "data:image/png;base64,") {
		t.Errorf("image preview = %q, want a png data URL", f.ImagePreview)
	}
	if len(f.AnexosFiles) != 0 {
		t.Error("image selection must not touch the attachment list")
	}
}

func TestSelectFilesAnexoHeader(t *testing.T) {
	f := NewForm(nil)
	f.SelectFiles("Anexos",
		Arquivo{Nome: "edital.pdf", Conteudo: []byte("pdf-1"), MimeType: "application/pdf"},
		Arquivo{Nome: "cronograma.pdf", Conteudo: []byte("pdf-2"), MimeType: "application/pdf"},
	)

	if f.Values["Anexos"] != "edital.pdf, cronograma.pdf" {
		t.Errorf("value = %q, want comma-joined names", f.Values["Anexos"])
	}
	if len(f.AnexosFiles) != 2 {
		t.Fatalf("attachment list = %d files, want 2", len(f.AnexosFiles))
	}

	// Only the first attachment's bytes become the documento.
	doc := f.Documento()
	if !strings.HasPrefix(doc, "data:application/pdf;base64,") {
		t.Errorf("documento = %q, want a pdf data URL", doc)
	}
	if doc != f.AnexosFiles[0].DataURL() {
		t.Error("documento must carry the first file's bytes")
	}
}

func TestSelectFilesGenericHeader(t *testing.T) {
	f := NewForm(nil)
	f.SelectFiles("Arquivo de apoio",
		Arquivo{Nome: "a.txt", Conteudo: []byte("a")},
		Arquivo{Nome: "b.txt", Conteudo: []byte("b")},
	)

	if f.Values["Arquivo de apoio"] != "a.txt, b.txt" {
		t.Errorf("value = %q, want comma-joined names", f.Values["Arquivo de apoio"])
	}
	// Bytes are not retained for the generic path.
	if len(f.AnexosFiles) != 0 || f.Documento() != "" {
		t.Error("generic file selection must not retain bytes")
	}
}

func TestBuildSubmissao(t *testing.T) {
	f := NewForm(nil)
	f.SetValue("Título do evento", "Semana de Sistemas")
	f.SetValue("Data de início", "2025-05-10")
	f.SetValue("Responsável", "Prof. Ana")
	f.SetValue("Status", "")
	f.SelectFiles("Anexos", Arquivo{Nome: "edital.pdf", Conteudo: []byte("pdf"), MimeType: "application/pdf"})

	s := f.BuildSubmissao(Bespoke{
		TipoEvento: "Pesquisa",
		Modalidade: "Híbrido",
		Local:      "Auditório A",
		Link:       "https://meet.example.com/x",
		Descricao:  "Semana acadêmica",
		Ods:        []int{4, 9},
	})

	if s.Titulo != "Semana de Sistemas" || s.Data != "2025-05-10" || s.Responsavel != "Prof. Ana" {
		t.Errorf("core columns not scanned from the value map: %+v", s)
	}
	if s.Status != "Pendente" {
		t.Errorf("status = %q, want default Pendente", s.Status)
	}
	if s.Local != "Auditório A" || s.Link != "https://meet.example.com/x" {
		t.Errorf("hybrid event must keep both local and link: %+v", s)
	}
	if s.Curso != CursoPadrao {
		t.Errorf("curso = %q, want %q", s.Curso, CursoPadrao)
	}
	if len(s.Anexos) != 1 || s.Anexos[0] != "edital.pdf" {
		t.Errorf("anexos = %v, want the selected file names", s.Anexos)
	}
	if !strings.HasPrefix(s.Documento, "data:application/pdf;base64,") {
		t.Errorf("documento = %q, want the first attachment's data URL", s.Documento)
	}
}

func TestBuildSubmissaoModalityDropsFields(t *testing.T) {
	f := NewForm(nil)

	online := f.BuildSubmissao(Bespoke{Modalidade: "Online", Local: "Sala 1", Link: "https://x"})
	if online.Local != "" {
		t.Errorf("online event must drop local, got %q", online.Local)
	}

	presencial := f.BuildSubmissao(Bespoke{Modalidade: "Presencial", Local: "Sala 1", Link: "https://x"})
	if presencial.Link != "" {
		t.Errorf("presencial event must drop link, got %q", presencial.Link)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	s := EventoSubmissao{
		Titulo:      "X",
		Data:        "2025-01-01",
		Responsavel: "Y",
		TipoEvento:  "Pesquisa",
		Modalidade:  "Presencial",
		Local:       "Sala 1",
	}
	if err := s.Validate(); err != nil {
		t.Errorf("valid submission rejected: %v", err)
	}

	missing := s
	missing.Titulo = "  "
	if err := missing.Validate(); !errors.Is(err, ErrCamposObrigatorios) {
		t.Errorf("missing titulo: got %v, want ErrCamposObrigatorios", err)
	}
}

func TestValidateModalidade(t *testing.T) {
	tests := []struct {
		name       string
		modalidade string
		local      string
		link       string
		want       error
	}{
		{"presencial with local", "Presencial", "Sala 1", "", nil},
		{"presencial without local", "Presencial", "", "", ErrLocalPresencial},
		{"online with link, no local", "Online", "", "https://x", nil},
		{"online without link", "Online", "Sala 1", "", ErrLinkOnline},
		{"hybrid with both", "Híbrido", "Sala 1", "https://x", nil},
		{"hybrid without link", "Híbrido", "Sala 1", "", ErrLinkOnline},
		{"hybrid without local", "Híbrido", "", "https://x", ErrLocalHibrido},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModalidade(tt.modalidade, tt.local, tt.link)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateModalidade(%q, %q, %q) = %v, want %v",
					tt.modalidade, tt.local, tt.link, err, tt.want)
			}
		})
	}
}
