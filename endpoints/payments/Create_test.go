package payments

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentStoresAndReturnsRecord(t *testing.T) {
	art, mock := newTestRuntime(t)
	r := newTestRouter(art)

	mock.ExpectBegin()
	mock.ExpectQuery(insertPayments).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := postJSON(r, `{"payee":"Alice","amount":10.50,"currency":"USD","description":"lunch"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var rsp struct {
		ID          int     `json:"id"`
		Payee       string  `json:"payee"`
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency"`
		Description *string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))

	assert.Equal(t, 1, rsp.ID)
	assert.Equal(t, "Alice", rsp.Payee)
	assert.Equal(t, 10.50, rsp.Amount)
	assert.Equal(t, "USD", rsp.Currency)
	require.NotNil(t, rsp.Description)
	assert.Equal(t, "lunch", *rsp.Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRejectsZeroAmount(t *testing.T) {
	art, mock := newTestRuntime(t)
	r := newTestRouter(art)

	raw := `{"payee":"Bob","amount":0,"currency":"USD"}`
	w := postJSON(r, raw)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var rsp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))

	require.Len(t, rsp.Errors, 1)
	assert.Equal(t, "amount", rsp.Errors[0].Field)
	assert.Equal(t, raw, rsp.Body)

	// nothing reached the store
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRejectsUnknownCurrency(t *testing.T) {
	art, mock := newTestRuntime(t)
	r := newTestRouter(art)

	w := postJSON(r, `{"payee":"Carl","amount":5,"currency":"XXX"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var rsp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))

	require.Len(t, rsp.Errors, 1)
	assert.Equal(t, "currency", rsp.Errors[0].Field)
	assert.Equal(t, "must be a valid ISO currency code", rsp.Errors[0].Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRejectsMalformedBody(t *testing.T) {
	art, _ := newTestRuntime(t)
	r := newTestRouter(art)

	raw := `{"payee":"Alice","amount":"ten"}`
	w := postJSON(r, raw)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var rsp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))

	require.Len(t, rsp.Errors, 1)
	assert.Equal(t, "body", rsp.Errors[0].Field)
	assert.Equal(t, raw, rsp.Body)
}

func TestCreatePaymentStorageFailure(t *testing.T) {
	art, mock := newTestRuntime(t)
	r := newTestRouter(art)

	mock.ExpectBegin()
	mock.ExpectQuery(insertPayments).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	w := postJSON(r, `{"payee":"Alice","amount":10.50,"currency":"USD"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var rsp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))
	assert.Contains(t, rsp["error"], "failed to store payment")
	assert.Contains(t, rsp, "traceId")
}
