package formgen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadHeaders extracts the first row of the first sheet of an .xlsx stream,
// trimming whitespace and dropping blank cells.
func ReadHeaders(r io.Reader) ([]string, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("planilha vazia")
	}

	headers := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		header := strings.TrimSpace(cell)
		if header != "" {
			headers = append(headers, header)
		}
	}
	return headers, nil
}

// FetchHeaders downloads the registration spreadsheet and returns its column
// headers. The event form schema is rebuilt from these on every request; the
// spreadsheet is the source of truth for which fields exist.
func FetchHeaders(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("falha ao baixar planilha: %d", resp.StatusCode)
	}

	return ReadHeaders(resp.Body)
}
