package bondapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/common"
	"github.com/folaolaitan/bondctl/internal/model"
)

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bonds/issuer/Acme", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Acme 2030","issuer":"Acme","faceValue":1000,"couponRate":5.25,"rating":"AA","issueDate":"2020-01-15","maturityDate":"2030-01-15","status":"Active","currency":"USD"},
			{"id":2,"name":"Acme Perp","issuer":"Acme","faceValue":null,"couponRate":null,"rating":"","issueDate":"","maturityDate":"","status":"","currency":""}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	bonds, err := client.Fetch(context.Background(), catalog.Resolve(model.Criteria{Issuer: "Acme"}))
	require.NoError(t, err)
	require.Len(t, bonds, 2)

	assert.Equal(t, int64(1), *bonds[0].ID)
	assert.Equal(t, "Acme 2030", bonds[0].Name)
	assert.True(t, bonds[0].FaceValue.Valid)
	assert.Equal(t, "1000", bonds[0].FaceValue.Decimal.String())
	assert.Equal(t, "5.25", bonds[0].CouponRate.Decimal.String())

	assert.False(t, bonds[1].FaceValue.Valid)
	assert.False(t, bonds[1].CouponRate.Valid)
	assert.True(t, bonds[1].MaturityTime().IsZero())
}

func TestClient_Fetch_NonArrayCoercedToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"unexpected shape"}`))
	}))
	defer server.Close()

	bonds, err := NewClient(server.URL).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bonds)
	assert.NotNil(t, bonds)
}

func TestClient_Fetch_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).FetchAll(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, "500 Internal Server Error", statusErr.Error())
}

func TestClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Get(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.EqualError(t, err, "404 Not Found")
}

func TestClient_CreateAndUpdate(t *testing.T) {
	var lastMethod, lastPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastMethod, lastPath = r.Method, r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var bond model.Bond
		require.NoError(t, json.NewDecoder(r.Body).Decode(&bond))
		if bond.ID == nil {
			id := int64(42)
			bond.ID = &id
		}
		_ = json.NewEncoder(w).Encode(bond)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	created, err := client.Create(context.Background(), &model.Bond{Name: "New Bond", Issuer: "Initech"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, lastMethod)
	assert.Equal(t, "/api/bonds", lastPath)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(42), *created.ID)

	created.Name = "Renamed"
	updated, err := client.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, lastMethod)
	assert.Equal(t, "/api/bonds/42", lastPath)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestClient_Create_ValidatesFirst(t *testing.T) {
	client := NewClient("http://unused.invalid")
	_, err := client.Create(context.Background(), &model.Bond{Issuer: "Initech"})
	require.ErrorContains(t, err, "name is required")

	_, err = client.Update(context.Background(), &model.Bond{Name: "x", Issuer: "y"})
	require.ErrorContains(t, err, "without an id")
}

func TestClient_Delete(t *testing.T) {
	deleted := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/bonds/7", r.URL.Path)
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, NewClient(server.URL).Delete(context.Background(), 7))
	assert.True(t, deleted)
}

func TestClient_FXRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/external/fx", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "NGN", r.URL.Query().Get("to"))
		_, _ = w.Write([]byte(`1530.25`))
	}))
	defer server.Close()

	rate, err := NewClient(server.URL).FXRate(context.Background(), "usd", "ngn")
	require.NoError(t, err)
	assert.Equal(t, "1530.25", rate.String())
}

func TestClient_ValueIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/external/bonds/3/value-in", r.URL.Path)
		assert.Equal(t, "EUR", r.URL.Query().Get("currency"))
		_, _ = w.Write([]byte(`{
			"bondId":3,"bondName":"Acme 2030","fromCurrency":"USD","toCurrency":"EUR",
			"rate":0.92,"originalFaceValue":1000,"convertedFaceValue":920
		}`))
	}))
	defer server.Close()

	conv, err := NewClient(server.URL).ValueIn(context.Background(), 3, "eur")
	require.NoError(t, err)
	assert.Equal(t, "Acme 2030", conv.BondName)
	assert.Equal(t, "0.92", conv.Rate.String())
	assert.Equal(t, "920", conv.ConvertedFaceValue.String())
}

func TestClient_Macro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/external/macro/USA/gdp":
			assert.Equal(t, "2022", r.URL.Query().Get("year"))
			_, _ = w.Write([]byte(`{"country":"USA","year":"2022","indicator":"GDP (current US$)","value":25460000000000}`))
		case "/api/external/macro/NGA/inflation":
			_, _ = w.Write([]byte(`{"country":"NGA","year":"2022","indicator":"Inflation, CPI (%)","value":null}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	gdp, err := client.GDP(context.Background(), "usa", "2022")
	require.NoError(t, err)
	assert.Equal(t, "USA", gdp.Country)
	require.NotNil(t, gdp.Value)

	infl, err := client.Inflation(context.Background(), "nga", "")
	require.NoError(t, err)
	assert.Nil(t, infl.Value, "missing observation stays nil")
}
