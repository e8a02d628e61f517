package onchain_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"devcred-backend/internal/eth"
	"devcred-backend/internal/http/api"
	"devcred-backend/internal/http/handlers"
	"devcred-backend/internal/http/handlers/mocks"
	handler "devcred-backend/internal/http/handlers/onchain"
	chain "devcred-backend/internal/onchain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const wallet = "0x52908400098527886E0F7030069857D2E4169EE7"

func requestWithAddress(address string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/onchain/stats/"+address, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("address", address)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestOnchainHandler_Stats_Success(t *testing.T) {
	mockFetcher := mocks.NewMockStatsFetcher(t)
	h := handler.NewOnchainHandler(handlers.NewLogger(), mockFetcher)

	req := requestWithAddress(wallet)
	w := httptest.NewRecorder()

	stats := &chain.Stats{Address: wallet, ChainID: 1, EthBalance: "1.5", TxCount: 42}
	mockFetcher.On("Fetch", mock.Anything, wallet).Return(stats, nil)

	h.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOnchainHandler_Stats_InvalidAddress(t *testing.T) {
	mockFetcher := mocks.NewMockStatsFetcher(t)
	h := handler.NewOnchainHandler(handlers.NewLogger(), mockFetcher)

	req := requestWithAddress("0xnope")
	w := httptest.NewRecorder()

	mockFetcher.On("Fetch", mock.Anything, "0xnope").Return(nil, eth.ErrInvalidAddress)

	h.Stats(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInvalidAddress, resp.Error.Code)
}

func TestOnchainHandler_Stats_Upstream(t *testing.T) {
	mockFetcher := mocks.NewMockStatsFetcher(t)
	h := handler.NewOnchainHandler(handlers.NewLogger(), mockFetcher)

	req := requestWithAddress(wallet)
	w := httptest.NewRecorder()

	mockFetcher.On("Fetch", mock.Anything, wallet).Return(nil, chain.ErrUpstream)

	h.Stats(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeUpstream, resp.Error.Code)
}
