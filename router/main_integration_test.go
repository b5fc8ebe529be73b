package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/icei-ads/portal-eventos/model"
)

// testStore adapts a test database connection to the Storage interface.
type testStore struct {
	db *gorm.DB
}

func (s *testStore) Init() error        { return nil }
func (s *testStore) Close() error       { return nil }
func (s *testStore) HealthCheck() error { return nil }
func (s *testStore) GetDB() interface{} { return s.db }

// setupTestApp connects to the database named by TEST_DATABASE_DSN, resets
// the schema and mounts the full route table. Tests are skipped when no test
// database is available.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}

	models := []interface{}{
		&model.ComentarioEvento{},
		&model.AnexoEvento{},
		&model.OdsEvento{},
		&model.Evento{},
		&model.ProjetoPesquisa{},
		&model.ProjetoExtensao{},
		&model.Materia{},
		&model.ProfessorCoordenador{},
		&model.Usuario{},
	}
	if err := db.Migrator().DropTable(models...); err != nil {
		t.Fatalf("dropping tables: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.ProfessorCoordenador{},
		&model.Evento{},
		&model.OdsEvento{},
		&model.AnexoEvento{},
		&model.ComentarioEvento{},
		&model.ProjetoPesquisa{},
		&model.ProjetoExtensao{},
		&model.Materia{},
	); err != nil {
		t.Fatalf("migrating tables: %v", err)
	}

	t.Setenv("JWT_SECRET", "integration-test-secret")

	app := fiber.New()
	SetupRoutes(app, &testStore{db: db})
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	resp.Body.Close()
	return resp, raw
}

func TestEventoLifecycle(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, raw := doJSON(t, app, "POST", "/api/eventos", map[string]interface{}{
		"titulo":      "X",
		"data":        "2025-01-01",
		"responsavel": "Y",
		"status":      "Pendente",
		"tipoEvento":  "Pesquisa",
		"modalidade":  "Presencial",
		"local":       "Sala 1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, raw)
	}

	var created model.Evento
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decoding created evento: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected created evento to have an id")
	}
	if len(created.OdsAssociadas) != 0 || created.OdsAssociadas == nil {
		t.Errorf("odsAssociadas = %v, want empty non-nil", created.OdsAssociadas)
	}
	if len(created.Anexos) != 0 || created.Anexos == nil {
		t.Errorf("anexos = %v, want empty non-nil", created.Anexos)
	}

	resp, raw = doJSON(t, app, "GET", fmt.Sprintf("/api/eventos/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var fetched model.Evento
	if err := json.Unmarshal(raw, &fetched); err != nil {
		t.Fatalf("decoding fetched evento: %v", err)
	}
	if fetched.Titulo != "X" || fetched.Responsavel != "Y" {
		t.Errorf("fetched = %q/%q, want X/Y", fetched.Titulo, fetched.Responsavel)
	}

	// Replace the tag set wholesale.
	resp, raw = doJSON(t, app, "PUT", fmt.Sprintf("/api/eventos/%d", created.ID), map[string]interface{}{
		"odsAssociadas": []int{4, 9},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, body %s", resp.StatusCode, raw)
	}

	_, raw = doJSON(t, app, "GET", fmt.Sprintf("/api/eventos/%d", created.ID), nil)
	if err := json.Unmarshal(raw, &fetched); err != nil {
		t.Fatalf("decoding updated evento: %v", err)
	}
	got := make([]int, 0, len(fetched.OdsAssociadas))
	for _, ods := range fetched.OdsAssociadas {
		got = append(got, ods.OdsNumero)
	}
	if len(got) != 2 || got[0] != 4 || got[1] != 9 {
		t.Errorf("tags after replace = %v, want [4 9]", got)
	}

	resp, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/eventos/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/eventos/%d", created.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestEventoListOrdering(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, e := range []map[string]interface{}{
		{"titulo": "Antigo", "data": "2025-01-10", "responsavel": "A", "status": "Pendente", "tipoEvento": "Pesquisa", "modalidade": "Online", "link": "https://meet.example.com/a"},
		{"titulo": "Recente", "data": "2025-05-20", "responsavel": "B", "status": "Confirmado", "tipoEvento": "Pesquisa", "modalidade": "Online", "link": "https://meet.example.com/b"},
	} {
		resp, raw := doJSON(t, app, "POST", "/api/eventos", e)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("create status = %d, body %s", resp.StatusCode, raw)
		}
	}

	_, raw := doJSON(t, app, "GET", "/api/eventos", nil)
	var eventos []model.Evento
	if err := json.Unmarshal(raw, &eventos); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(eventos) != 2 {
		t.Fatalf("len(eventos) = %d, want 2", len(eventos))
	}
	if eventos[0].Titulo != "Recente" || eventos[1].Titulo != "Antigo" {
		t.Errorf("order = [%s %s], want newest first", eventos[0].Titulo, eventos[1].Titulo)
	}
}

func TestComentarioEventoMismatch(t *testing.T) {
	app, db := setupTestApp(t)

	_, raw := doJSON(t, app, "POST", "/api/eventos", map[string]interface{}{
		"titulo": "Com Comentário", "data": "2025-02-01", "responsavel": "A",
		"status": "Pendente", "tipoEvento": "Pesquisa", "modalidade": "Online",
		"link": "https://meet.example.com/x",
	})
	var evento model.Evento
	if err := json.Unmarshal(raw, &evento); err != nil {
		t.Fatalf("decoding evento: %v", err)
	}

	resp, raw := doJSON(t, app, "POST", fmt.Sprintf("/api/eventos/%d/comentarios", evento.ID), map[string]interface{}{
		"autor": "João", "conteudo": "Ótimo evento",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("comment create status = %d, body %s", resp.StatusCode, raw)
	}
	var comentario model.ComentarioEvento
	if err := json.Unmarshal(raw, &comentario); err != nil {
		t.Fatalf("decoding comentario: %v", err)
	}

	// Deleting through the wrong event returns 400 and keeps the row.
	resp, raw = doJSON(t, app, "DELETE",
		fmt.Sprintf("/api/eventos/%d/comentarios/%d", evento.ID+1, comentario.ID), nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("mismatched delete status = %d, body %s", resp.StatusCode, raw)
	}

	var count int64
	db.Model(&model.ComentarioEvento{}).Where("id = ?", comentario.ID).Count(&count)
	if count != 1 {
		t.Errorf("comment row count = %d, want 1", count)
	}

	resp, _ = doJSON(t, app, "DELETE",
		fmt.Sprintf("/api/eventos/%d/comentarios/%d", evento.ID, comentario.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("matched delete status = %d, want 200", resp.StatusCode)
	}
}

func TestUsuarioDuplicateEmail(t *testing.T) {
	app, db := setupTestApp(t)

	body := map[string]interface{}{
		"nome": "Ana", "email": "ana@pucminas.br", "senha": "senha123", "cargo": "Professora",
	}
	resp, raw := doJSON(t, app, "POST", "/api/usuarios", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first create status = %d, body %s", resp.StatusCode, raw)
	}

	resp, raw = doJSON(t, app, "POST", "/api/usuarios", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, body %s", resp.StatusCode, raw)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &errBody); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if errBody.Error != "Email já cadastrado" {
		t.Errorf("error = %q", errBody.Error)
	}

	var count int64
	db.Model(&model.Usuario{}).Where("email = ?", "ana@pucminas.br").Count(&count)
	if count != 1 {
		t.Errorf("usuario rows = %d, want 1", count)
	}
}

func TestLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	doJSON(t, app, "POST", "/api/usuarios", map[string]interface{}{
		"nome": "Carlos", "email": "carlos@pucminas.br", "senha": "senha123", "cargo": "Professor",
	})

	resp, raw := doJSON(t, app, "POST", "/api/login", map[string]interface{}{
		"email": "carlos@pucminas.br", "senha": "senha123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body %s", resp.StatusCode, raw)
	}
	var login struct {
		ID    uint   `json:"id"`
		Nome  string `json:"nome"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &login); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if login.Nome != "Carlos" || login.Token == "" {
		t.Errorf("login = %+v, want nome Carlos and a token", login)
	}

	resp, raw = doJSON(t, app, "POST", "/api/login", map[string]interface{}{
		"email": "carlos@pucminas.br", "senha": "errada",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", resp.StatusCode)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	json.Unmarshal(raw, &errBody)
	if errBody.Error != "Senha incorreta" {
		t.Errorf("error = %q", errBody.Error)
	}
}
