package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kaagaz/internal/domain"
	"kaagaz/internal/gstr"
	"kaagaz/internal/handler"
	"kaagaz/internal/middleware"
	"kaagaz/internal/service"
	"kaagaz/mocks"
)

func authedContext(t *testing.T, w *httptest.ResponseRecorder, userID uuid.UUID, method, path string, body []byte) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextKeyUserID, userID)
	return c
}

func TestFilingHandler_PrepareGSTR1_Success(t *testing.T) {
	filingSvc := new(mocks.MockFilingService)
	exportSvc := new(mocks.MockExportService)
	clientSvc := new(mocks.MockClientService)
	h := handler.NewFilingHandler(filingSvc, exportSvc, clientSvc)

	userID, clientID := uuid.New(), uuid.New()
	result := &service.GSTR1Result{
		Document: &gstr.GSTR1Document{Gstin: "27AAPFU0939F1ZV", Fp: "052024", Gt: 5000000, CurGt: 1770, B2B: []gstr.B2BGroup{}},
		Summary:  service.GSTR1Summary{FilingPeriod: "052024", PeriodTurnover: 1770},
	}
	filingSvc.On("PrepareGSTR1", mock.Anything, userID, clientID, service.GSTR1Request{
		Year: 2024, Month: 5, GrossTurnover: 5000000,
	}).Return(result, nil)

	body, _ := json.Marshal(map[string]any{"year": 2024, "month": 5, "gross_turnover": 5000000})

	w := httptest.NewRecorder()
	c := authedContext(t, w, userID, http.MethodPost, "/api/v1/clients/"+clientID.String()+"/filings/gstr1", body)
	c.Params = gin.Params{{Key: "id", Value: clientID.String()}}

	h.PrepareGSTR1(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	filingSvc.AssertExpectations(t)
}

func TestFilingHandler_PrepareGSTR1_InvalidPeriod(t *testing.T) {
	filingSvc := new(mocks.MockFilingService)
	h := handler.NewFilingHandler(filingSvc, new(mocks.MockExportService), new(mocks.MockClientService))

	userID, clientID := uuid.New(), uuid.New()
	filingSvc.On("PrepareGSTR1", mock.Anything, userID, clientID, mock.AnythingOfType("service.GSTR1Request")).
		Return(nil, domain.ErrInvalidPeriod)

	body, _ := json.Marshal(map[string]any{"year": 2024, "month": 13})

	w := httptest.NewRecorder()
	c := authedContext(t, w, userID, http.MethodPost, "/api/v1/clients/"+clientID.String()+"/filings/gstr1", body)
	c.Params = gin.Params{{Key: "id", Value: clientID.String()}}

	h.PrepareGSTR1(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilingHandler_PrepareGSTR1_MissingAuth(t *testing.T) {
	h := handler.NewFilingHandler(new(mocks.MockFilingService), new(mocks.MockExportService), new(mocks.MockClientService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/clients/abc/filings/gstr1", bytes.NewReader(nil))

	h.PrepareGSTR1(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFilingHandler_ParseITCWorkbook_MissingFile(t *testing.T) {
	h := handler.NewFilingHandler(new(mocks.MockFilingService), new(mocks.MockExportService), new(mocks.MockClientService))

	w := httptest.NewRecorder()
	c := authedContext(t, w, uuid.New(), http.MethodPost, "/api/v1/filings/itc-workbook", nil)

	h.ParseITCWorkbook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilingHandler_ParseITCWorkbook_Success(t *testing.T) {
	filingSvc := new(mocks.MockFilingService)
	h := handler.NewFilingHandler(filingSvc, new(mocks.MockExportService), new(mocks.MockClientService))

	result := &service.ITCWorkbookResult{
		Suppliers: []gstr.ITCSupplierRow{
			{GSTIN: "24AAACM1234A1Z5", Name: "Mehta Supplies", TotalITC: 200, IsClaimed: true},
		},
		TotalClaimed: 200,
	}
	filingSvc.On("ParseITCWorkbook", mock.Anything).Return(result, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "gstr2b.xlsx")
	require.NoError(t, err)
	_, _ = part.Write([]byte("stub workbook bytes"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/filings/itc-workbook", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.Request = req
	c.Set(middleware.ContextKeyUserID, uuid.New())

	h.ParseITCWorkbook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	filingSvc.AssertExpectations(t)
}

func TestFilingHandler_ParseITCWorkbook_SheetNotFound(t *testing.T) {
	filingSvc := new(mocks.MockFilingService)
	h := handler.NewFilingHandler(filingSvc, new(mocks.MockExportService), new(mocks.MockClientService))

	filingSvc.On("ParseITCWorkbook", mock.Anything).Return(nil, domain.ErrSheetNotFound)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "wrong.xlsx")
	_, _ = part.Write([]byte("stub"))
	_ = mw.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/filings/itc-workbook", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.Request = req
	c.Set(middleware.ContextKeyUserID, uuid.New())

	h.ParseITCWorkbook(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFilingHandler_ExportGSTR1_Success(t *testing.T) {
	filingSvc := new(mocks.MockFilingService)
	exportSvc := new(mocks.MockExportService)
	clientSvc := new(mocks.MockClientService)
	h := handler.NewFilingHandler(filingSvc, exportSvc, clientSvc)

	userID, clientID := uuid.New(), uuid.New()
	client := &domain.Client{ID: clientID, UserID: userID, Name: "Sharma Traders", GSTIN: "27AAPFU0939F1ZV"}
	doc := &gstr.GSTR1Document{Gstin: "27AAPFU0939F1ZV", Fp: "052024", B2B: []gstr.B2BGroup{}}

	clientSvc.On("GetByID", mock.Anything, userID, clientID).Return(client, nil)
	filingSvc.On("PrepareGSTR1", mock.Anything, userID, clientID, mock.AnythingOfType("service.GSTR1Request")).
		Return(&service.GSTR1Result{Document: doc}, nil)
	exportSvc.On("ExportDocument", mock.Anything, userID, mock.MatchedBy(func(in service.ExportInput) bool {
		return in.ReturnType == "GSTR-1" && in.FileName == "GSTR1_27AAPFU0939F1ZV_052024.json" && in.ClientName == "Sharma Traders"
	})).Return(&service.ExportResult{DownloadURL: "https://signed.example.com/doc"}, nil)

	body, _ := json.Marshal(map[string]any{"year": 2024, "month": 5, "notify": true})

	w := httptest.NewRecorder()
	c := authedContext(t, w, userID, http.MethodPost, "/api/v1/clients/"+clientID.String()+"/filings/gstr1/export", body)
	c.Params = gin.Params{{Key: "id", Value: clientID.String()}}

	h.ExportGSTR1(c)

	assert.Equal(t, http.StatusOK, w.Code)
	exportSvc.AssertExpectations(t)
}
