package gstapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaagaz/internal/domain"
	"kaagaz/internal/gstapi"
)

func TestClient_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getGSTStatus/27AAPFU0939F1ZV", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sts":"Active"}`))
	}))
	defer srv.Close()

	client := gstapi.NewClientWithEndpoint(srv.URL)
	body, err := client.Status(context.Background(), "27AAPFU0939F1ZV")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sts":"Active"}`, string(body))
}

func TestClient_Status_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream broke"}`))
	}))
	defer srv.Close()

	client := gstapi.NewClientWithEndpoint(srv.URL)
	_, err := client.Status(context.Background(), "27AAPFU0939F1ZV")
	assert.ErrorIs(t, err, domain.ErrGSTUpstream)
}

func TestClient_ReturnFilingStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getGSTReturnFilingStatusSpecificYear/27AAPFU0939F1ZV/2024-2025", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"fillingData": {
					"2024-2025": [
						{"returnPeriod":"042024","returnType":"GSTR1","status":"Filed","dateOfFiling":"11-05-2024","modeOfFiling":"ONLINE"}
					]
				}
			}
		}`))
	}))
	defer srv.Close()

	client := gstapi.NewClientWithEndpoint(srv.URL)
	events, err := client.ReturnFilingStatus(context.Background(), "27AAPFU0939F1ZV", "2024-2025")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "042024", events[0].ReturnPeriod)
	assert.Equal(t, "GSTR1", events[0].ReturnType)
	assert.Equal(t, "11-05-2024", events[0].DateOfFiling)
}

func TestClient_ReturnFilingStatus_YearAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"fillingData":{}}}`))
	}))
	defer srv.Close()

	client := gstapi.NewClientWithEndpoint(srv.URL)
	events, err := client.ReturnFilingStatus(context.Background(), "27AAPFU0939F1ZV", "2019-2020")
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestClient_ReturnFilingStatus_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := gstapi.NewClientWithEndpoint(srv.URL)
	_, err := client.ReturnFilingStatus(context.Background(), "27AAPFU0939F1ZV", "2024-2025")
	assert.ErrorIs(t, err, domain.ErrGSTUpstream)
}
