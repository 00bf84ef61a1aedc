package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"truebond/models"
	"truebond/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBiodataStore struct {
	byEmail   map[string]*models.Biodata
	seq       int64
	nextIDErr error
	findErr   error
}

func newFakeBiodataStore() *fakeBiodataStore {
	return &fakeBiodataStore{byEmail: map[string]*models.Biodata{}}
}

func (f *fakeBiodataStore) FindByContactEmail(_ context.Context, email string) (*models.Biodata, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if b, ok := f.byEmail[email]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeBiodataStore) FindByBiodataID(_ context.Context, id int64) (*models.Biodata, error) {
	for _, b := range f.byEmail {
		if b.BiodataID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBiodataStore) NextID(_ context.Context) (int64, error) {
	if f.nextIDErr != nil {
		return 0, f.nextIDErr
	}
	f.seq++
	return f.seq, nil
}

func (f *fakeBiodataStore) Insert(_ context.Context, b *models.Biodata) error {
	copied := *b
	f.byEmail[b.ContactEmail] = &copied
	return nil
}

func (f *fakeBiodataStore) Update(_ context.Context, b *models.Biodata) error {
	existing, ok := f.byEmail[b.ContactEmail]
	if !ok {
		return errors.New("no document to update")
	}
	copied := *b
	copied.BiodataID = existing.BiodataID
	copied.CreatedAt = existing.CreatedAt
	f.byEmail[b.ContactEmail] = &copied
	return nil
}

func (f *fakeBiodataStore) All(_ context.Context, _ store.Filter) ([]models.Biodata, error) {
	out := []models.Biodata{}
	for _, b := range f.byEmail {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBiodataStore) Similar(_ context.Context, biodataType string, excludeID int64, limit int64) ([]models.Biodata, error) {
	out := []models.Biodata{}
	for _, b := range f.byEmail {
		if b.BiodataType == biodataType && b.BiodataID != excludeID && int64(len(out)) < limit {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBiodataStore) TotalCount(_ context.Context) (int64, error) {
	return int64(len(f.byEmail)), nil
}

func (f *fakeBiodataStore) CountByType(_ context.Context, biodataType string) (int64, error) {
	var n int64
	for _, b := range f.byEmail {
		if b.BiodataType == biodataType {
			n++
		}
	}
	return n, nil
}

func biodataRouter(fake *fakeBiodataStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBiodataHandler(fake)

	router := gin.New()
	router.PUT("/biodatas", h.Upsert)
	router.GET("/biodatas/:id", h.GetByID)
	router.GET("/my-biodata/:contactEmail", h.MyBiodata)
	router.GET("/similar-biodatas/:type", h.Similar)
	return router
}

func putBiodata(t *testing.T, router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/biodatas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func biodataPayload(email string, age int) map[string]interface{} {
	return map[string]interface{}{
		"biodataType":  "Male",
		"name":         "Test User",
		"age":          age,
		"contactEmail": email,
		"occupation":   "Engineer",
	}
}

func TestUpsertBiodataAssignsSequentialIDs(t *testing.T) {
	fake := newFakeBiodataStore()
	router := biodataRouter(fake)

	resp := putBiodata(t, router, biodataPayload("a@x.com", 30))
	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		BiodataID int64 `json:"biodataId"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.BiodataID)

	resp = putBiodata(t, router, biodataPayload("b@x.com", 25))
	require.Equal(t, http.StatusCreated, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, int64(2), created.BiodataID)
}

func TestUpsertBiodataKeepsIDOnUpdate(t *testing.T) {
	fake := newFakeBiodataStore()
	router := biodataRouter(fake)

	resp := putBiodata(t, router, biodataPayload("a@x.com", 30))
	require.Equal(t, http.StatusCreated, resp.Code)

	// Re-upsert with a changed age: id stays, age moves.
	resp = putBiodata(t, router, biodataPayload("a@x.com", 31))
	require.Equal(t, http.StatusOK, resp.Code)

	var updated struct {
		BiodataID int64 `json:"biodataId"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, int64(1), updated.BiodataID)

	stored := fake.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.Equal(t, int64(1), stored.BiodataID)
	assert.Equal(t, 31, stored.Age)
	assert.Equal(t, int64(1), fake.seq, "no new id allocated on update")
}

func TestUpsertBiodataIdempotent(t *testing.T) {
	fake := newFakeBiodataStore()
	router := biodataRouter(fake)

	payload := biodataPayload("a@x.com", 30)
	resp := putBiodata(t, router, payload)
	require.Equal(t, http.StatusCreated, resp.Code)
	first := *fake.byEmail["a@x.com"]

	resp = putBiodata(t, router, payload)
	require.Equal(t, http.StatusOK, resp.Code)
	second := *fake.byEmail["a@x.com"]

	assert.Equal(t, first.BiodataID, second.BiodataID)
	assert.Equal(t, first.Age, second.Age)
	assert.Equal(t, first.ContactEmail, second.ContactEmail)
}

func TestUpsertBiodataRejectsMissingEmail(t *testing.T) {
	fake := newFakeBiodataStore()
	router := biodataRouter(fake)

	payload := biodataPayload("", 30)
	delete(payload, "contactEmail")
	resp := putBiodata(t, router, payload)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, fake.byEmail, "validation must reject before any store access")
	assert.Zero(t, fake.seq)
}

func TestUpsertBiodataStoreFailure(t *testing.T) {
	fake := newFakeBiodataStore()
	fake.findErr = errors.New("connection reset")
	router := biodataRouter(fake)

	resp := putBiodata(t, router, biodataPayload("a@x.com", 30))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestGetBiodataByID(t *testing.T) {
	fake := newFakeBiodataStore()
	router := biodataRouter(fake)

	putBiodata(t, router, biodataPayload("a@x.com", 30))

	req := httptest.NewRequest(http.MethodGet, "/biodatas/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var got models.Biodata
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "a@x.com", got.ContactEmail)

	req = httptest.NewRequest(http.MethodGet, "/biodatas/99", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/biodatas/not-a-number", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMyBiodataAbsentIsNotAnError(t *testing.T) {
	fake := newFakeBiodataStore()
	router := biodataRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/my-biodata/nobody@x.com", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{}`, resp.Body.String())
}

func TestSimilarBiodatasExcludesSelf(t *testing.T) {
	fake := newFakeBiodataStore()
	router := biodataRouter(fake)

	putBiodata(t, router, biodataPayload("a@x.com", 30))
	putBiodata(t, router, biodataPayload("b@x.com", 25))

	req := httptest.NewRequest(http.MethodGet, "/similar-biodatas/Male?excludeId=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var got []models.Biodata
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].BiodataID)

	req = httptest.NewRequest(http.MethodGet, "/similar-biodatas/Alien", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
