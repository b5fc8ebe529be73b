package database

import (
	"fmt"
	"log"
	"time"

	"github.com/icei-ads/portal-eventos/model"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// RunSeeds is the entry point used by cmd/seed
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedUsuarios(); err != nil {
		return fmt.Errorf("failed to seed usuarios: %w", err)
	}

	if err := s.SeedProfessores(); err != nil {
		return fmt.Errorf("failed to seed professores: %w", err)
	}

	if err := s.SeedMaterias(); err != nil {
		return fmt.Errorf("failed to seed materias: %w", err)
	}

	if err := s.SeedProjetos(); err != nil {
		return fmt.Errorf("failed to seed projetos: %w", err)
	}

	if err := s.SeedEventos(); err != nil {
		return fmt.Errorf("failed to seed eventos: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

func date(value string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", value, time.Local)
	return t
}

func ptr(s string) *string {
	return &s
}

// SeedUsuarios creates the demo portal accounts
func (s *Seeder) SeedUsuarios() error {
	var count int64
	if err := s.db.Model(&model.Usuario{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Usuarios already exist, skipping...")
		return nil
	}

	usuarios := []model.Usuario{
		{Nome: "Prof. Ana", Email: "ana@pucminas.br", Senha: "senha123", Cargo: "Professora"},
		{Nome: "Prof. Carlos", Email: "carlos@pucminas.br", Senha: "senha123", Cargo: "Professor"},
		{Nome: "Coord. Júlia", Email: "julia@pucminas.br", Senha: "senha123", Cargo: "Coordenadora"},
		{Nome: "João Silva", Email: "joao.silva@pucminas.br", Senha: "senha123", Cargo: "Aluno"},
	}

	if err := s.db.Create(&usuarios).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d usuarios\n", len(usuarios))
	return nil
}

// SeedProfessores creates the coordinator registry
func (s *Seeder) SeedProfessores() error {
	var count int64
	if err := s.db.Model(&model.ProfessorCoordenador{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Professores already exist, skipping...")
		return nil
	}

	curso := "Análise e Desenvolvimento de Sistemas"
	professores := []model.ProfessorCoordenador{
		{Nome: "Prof. Ana Silva", Email: "ana.silva@pucminas.br", Senha: "senha123", Curso: curso},
		{Nome: "Prof. Carlos Oliveira", Email: "carlos.oliveira@pucminas.br", Senha: "senha123", Curso: curso},
		{Nome: "Prof. Júlia Costa", Email: "julia.costa@pucminas.br", Senha: "senha123", Curso: curso},
		{Nome: "Prof. Marcos Santos", Email: "marcos.santos@pucminas.br", Senha: "senha123", Curso: curso},
	}

	if err := s.db.Create(&professores).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d professores\n", len(professores))
	return nil
}

// SeedMaterias creates the course program entry
func (s *Seeder) SeedMaterias() error {
	var count int64
	if err := s.db.Model(&model.Materia{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Materias already exist, skipping...")
		return nil
	}

	materia := model.Materia{
		Nome:      "Análise e Desenvolvimento de Sistemas",
		Descricao: "Programa de análise e desenvolvimento de sistemas computacionais",
	}

	if err := s.db.Create(&materia).Error; err != nil {
		return err
	}

	log.Println("✅ Created materia")
	return nil
}

// SeedProjetos creates sample research and extension projects tied to the
// seeded coordinators
func (s *Seeder) SeedProjetos() error {
	var count int64
	if err := s.db.Model(&model.ProjetoPesquisa{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Projetos already exist, skipping...")
		return nil
	}

	var professores []model.ProfessorCoordenador
	if err := s.db.Order("id").Find(&professores).Error; err != nil {
		return err
	}
	if len(professores) < 3 {
		return fmt.Errorf("expected at least 3 seeded professores, found %d", len(professores))
	}

	pesquisa := []model.ProjetoPesquisa{
		{
			Titulo:                 "Análise de Padrões de Segurança em Aplicações Web",
			AreaTematica:           "Segurança da Informação",
			Descricao:              "Pesquisa sobre vulnerabilidades e padrões de segurança em aplicações web modernas",
			MomentoOcorre:          date("2025-03-15"),
			ProblemaPesquisa:       "Quais são os padrões de vulnerabilidade mais comuns em aplicações web?",
			Metodologia:            "Análise de código-fonte, testes de penetração e revisão de literatura",
			ResultadosEsperados:    "Documentação de vulnerabilidades comuns e recomendações de segurança",
			ProfessorCoordenadorID: professores[0].ID,
		},
		{
			Titulo:                 "Otimização de Algoritmos em Computação em Nuvem",
			AreaTematica:           "Computação em Nuvem",
			Descricao:              "Estudo sobre otimização de recursos em ambientes de nuvem",
			MomentoOcorre:          date("2025-04-20"),
			ProblemaPesquisa:       "Como otimizar a distribuição de recursos em computação em nuvem?",
			Metodologia:            "Simulação computacional e análise de dados",
			ResultadosEsperados:    "Algoritmos otimizados e métricas de desempenho",
			ProfessorCoordenadorID: professores[1].ID,
		},
	}
	if err := s.db.Create(&pesquisa).Error; err != nil {
		return err
	}

	extensao := []model.ProjetoExtensao{
		{
			Titulo:                 "Workshop: Desenvolvimento Mobile para Iniciantes",
			AreaTematica:           "Desenvolvimento Mobile",
			Descricao:              "Workshop prático de desenvolvimento de aplicações mobile para a comunidade local",
			MomentoOcorre:          date("2025-03-15"),
			TipoPessoasProcuram:    "Estudantes de programação e desenvolvedores iniciantes",
			ComunidadeEnvolvida:    "Comunidade de tecnologia local da região de Belo Horizonte",
			ProfessorCoordenadorID: professores[0].ID,
		},
		{
			Titulo:                 "Programa de Mentoria em Desenvolvimento Full Stack",
			AreaTematica:           "Desenvolvimento Full Stack",
			Descricao:              "Programa de mentoria oferecido para a comunidade externa em desenvolvimento full stack",
			MomentoOcorre:          date("2025-04-01"),
			TipoPessoasProcuram:    "Profissionais em transição de carreira e autodidatas",
			ComunidadeEnvolvida:    "Agências de desenvolvimento local e startups",
			ProfessorCoordenadorID: professores[2].ID,
		},
	}
	if err := s.db.Create(&extensao).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d projetos de pesquisa and %d projetos de extensão\n",
		len(pesquisa), len(extensao))
	return nil
}

// SeedEventos creates sample events with their ODS tags
func (s *Seeder) SeedEventos() error {
	var count int64
	if err := s.db.Model(&model.Evento{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Eventos already exist, skipping...")
		return nil
	}

	curso := "Análise e Desenvolvimento de Sistemas"
	eventos := []model.Evento{
		{
			Titulo:      "Workshop: Desenvolvimento Mobile",
			Data:        date("2025-03-15"),
			Responsavel: "Prof. Ana",
			Status:      model.StatusConfirmado,
			Modalidade:  model.ModalidadePresencial,
			Local:       ptr("Auditório A"),
			Curso:       curso,
			TipoEvento:  "Projeto de Extensão",
			Descricao:   ptr("Workshop prático de desenvolvimento de aplicações mobile usando as melhores práticas da indústria."),
			OdsAssociadas: []model.OdsEvento{
				{OdsNumero: 4}, {OdsNumero: 9}, {OdsNumero: 17},
			},
		},
		{
			Titulo:      "Palestra: Arquitetura de Software",
			Data:        date("2025-03-22"),
			Responsavel: "Prof. Carlos",
			Status:      model.StatusPendente,
			Modalidade:  model.ModalidadePresencial,
			Local:       ptr("Sala 204"),
			Curso:       curso,
			TipoEvento:  "Pesquisa",
			Documento:   ptr("https://cdn.builder.io/o/assets%2F737d34773afb48d69db7c942a61ff110%2Fpalestra-arquitetura.pdf"),
			Descricao:   ptr("Exploração aprofundada de padrões e princípios de arquitetura de software."),
			OdsAssociadas: []model.OdsEvento{
				{OdsNumero: 9},
			},
		},
		{
			Titulo:      "Hackathon de Sistemas",
			Data:        date("2025-04-05"),
			Responsavel: "Prof. Júlia",
			Status:      model.StatusCancelado,
			Modalidade:  model.ModalidadePresencial,
			Local:       ptr("Auditório B"),
			Curso:       curso,
			TipoEvento:  "Projeto de Extensão",
			Descricao:   ptr("Competição de programação onde equipes desenvolvem soluções inovadoras para problemas reais."),
			OdsAssociadas: []model.OdsEvento{
				{OdsNumero: 4}, {OdsNumero: 8}, {OdsNumero: 9}, {OdsNumero: 17},
			},
		},
		{
			Titulo:      "Seminário: DevOps e CI/CD",
			Data:        date("2025-04-18"),
			Responsavel: "Prof. Marcos",
			Status:      model.StatusConfirmado,
			Modalidade:  model.ModalidadeHibrido,
			Local:       ptr("Hall Principal"),
			Link:        ptr("https://meet.google.com/abc-defg-hij"),
			Curso:       curso,
			TipoEvento:  "Pesquisa",
			Documento:   ptr("https://cdn.builder.io/o/assets%2F737d34773afb48d69db7c942a61ff110%2Fseminario-devops.docx"),
			Descricao:   ptr("Seminário sobre práticas modernas de DevOps, automação de deployment e integração contínua."),
			OdsAssociadas: []model.OdsEvento{
				{OdsNumero: 9}, {OdsNumero: 12},
			},
		},
	}

	if err := s.db.Create(&eventos).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d eventos\n", len(eventos))
	return nil
}
