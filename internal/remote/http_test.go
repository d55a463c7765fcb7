package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractpad/internal/common"
	"contractpad/internal/content"
)

func wireDoc(id string) WireDocument {
	return WireDocument{
		ID:            id,
		Title:         "Contrato",
		Content:       content.Default("Contrato"),
		UserID:        "u1",
		CreatedAt:     "2025-03-10T12:00:00Z",
		UpdatedAt:     "2025-03-10T12:00:00Z",
		VersionNumber: 1,
	}
}

func TestUpsertDocument_SendsMergeDuplicates(t *testing.T) {
	var gotPath, gotPrefer, gotKey string
	var gotBody []WireDocument

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPrefer = r.Header.Get("Prefer")
		gotKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key123")
	require.NoError(t, s.UpsertDocument(context.Background(), wireDoc("d1")))

	assert.Equal(t, "/rest/v1/documents", gotPath)
	assert.Equal(t, "resolution=merge-duplicates", gotPrefer)
	assert.Equal(t, "key123", gotKey)
	require.Len(t, gotBody, 1)
	assert.Equal(t, "d1", gotBody[0].ID)
}

func TestUpsertVersion_TargetsContractVersions(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	err := s.UpsertVersion(context.Background(), WireVersion{ID: "v1", ContractID: "d1"})
	require.NoError(t, err)
	assert.Equal(t, "/rest/v1/contract_versions", gotPath)
}

func TestUpsert_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	err := s.UpsertDocument(context.Background(), wireDoc("d1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestUpsert_ClientErrorIsNotUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad row", http.StatusConflict)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	err := s.UpsertDocument(context.Background(), wireDoc("d1"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrUnavailable)
}

func TestDocumentsByUser_FiltersByOwner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/documents", r.URL.Path)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		_ = json.NewEncoder(w).Encode([]WireDocument{wireDoc("d1"), wireDoc("d2")})
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	docs, err := s.DocumentsByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestVersionsByDocuments_InFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/contract_versions", r.URL.Path)
		assert.Equal(t, "in.(d1,d2)", r.URL.Query().Get("contract_id"))
		_ = json.NewEncoder(w).Encode([]WireVersion{{ID: "v1", ContractID: "d1"}})
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	vs, err := s.VersionsByDocuments(context.Background(), []string{"d1", "d2"})
	require.NoError(t, err)
	require.Len(t, vs, 1)
}

func TestVersionsByDocuments_EmptySetSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	vs, err := s.VersionsByDocuments(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vs)
	assert.False(t, called)
}

func TestSetAccessToken_UsedAsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]WireDocument{})
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	s.SetAccessToken("tok")
	_, err := s.DocumentsByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, "key")
	assert.NoError(t, s.Ping(context.Background()))

	down := NewHTTPStore("http://127.0.0.1:1", "key")
	assert.ErrorIs(t, down.Ping(context.Background()), common.ErrUnavailable)
}
