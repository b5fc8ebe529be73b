package formgen

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildPlanilha(t *testing.T, row []interface{}) *bytes.Buffer {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetRow("Sheet1", "A1", &row); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func TestReadHeaders(t *testing.T) {
	row := []interface{}{"Título", "  Data de Início  ", "", "Responsável", "Status"}
	buf := buildPlanilha(t, row)

	headers, err := ReadHeaders(buf)
	if err != nil {
		t.Fatalf("ReadHeaders: %v", err)
	}

	want := []string{"Título", "Data de Início", "Responsável", "Status"}
	if !reflect.DeepEqual(headers, want) {
		t.Errorf("headers = %v, want %v", headers, want)
	}
}

func TestReadHeadersNotXLSX(t *testing.T) {
	if _, err := ReadHeaders(bytes.NewBufferString("not a spreadsheet")); err == nil {
		t.Error("expected error for non-xlsx input")
	}
}

func TestFetchHeaders(t *testing.T) {
	buf := buildPlanilha(t, []interface{}{"Título", "Modalidade"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	headers, err := FetchHeaders(t.Context(), srv.URL)
	if err != nil {
		t.Fatalf("FetchHeaders: %v", err)
	}
	want := []string{"Título", "Modalidade"}
	if !reflect.DeepEqual(headers, want) {
		t.Errorf("headers = %v, want %v", headers, want)
	}
}

func TestFetchHeadersHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := FetchHeaders(t.Context(), srv.URL); err == nil {
		t.Error("expected error for 404 response")
	}
}
