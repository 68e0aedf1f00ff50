package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportOutput is the Huma output carrying the workbook bytes.
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ledgerLoader is the interface for loading the full ledger.
type ledgerLoader interface {
	Load(ctx context.Context) (*report.Ledger, error)
}

// ExportHandler handles GET /v1/export.
type ExportHandler struct {
	Loader ledgerLoader
	Clock  func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(loader ledgerLoader) *ExportHandler {
	return &ExportHandler{Loader: loader, Clock: time.Now}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-ledger",
		Method:      http.MethodGet,
		Path:        "/v1/export",
		Summary:     "Export ledger",
		Description: "Downloads every account, category, transaction and transfer as an xlsx workbook.",
		Tags:        []string{"Export"},
	}, h.handle)
}

func (h *ExportHandler) handle(ctx context.Context, _ *struct{}) (*ExportOutput, error) {
	stopTimer := logging.Timed(ctx, "loadLedgerMs")
	ledger, err := h.Loader.Load(ctx)
	stopTimer()
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load ledger", err)
	}

	var buf bytes.Buffer
	stopTimer = logging.Timed(ctx, "writeWorkbookMs")
	err = report.WriteWorkbook(&buf, ledger)
	stopTimer()
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to write workbook", err)
	}

	logging.AddData(ctx, "exportBytes", buf.Len())

	return &ExportOutput{
		ContentType:        xlsxContentType,
		ContentDisposition: fmt.Sprintf(`attachment; filename="ledger-%s.xlsx"`, h.Clock().Format("2006-01-02")),
		Body:               buf.Bytes(),
	}, nil
}
