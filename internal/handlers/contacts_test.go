package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"cpace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContactsHandler_PassesFiltersThrough(t *testing.T) {
	crmStub := &stubCRM{page: &models.ContactsPage{
		Data:  []models.Contact{{ID: 1, FirstName: "Dana", LastName: "Reed"}},
		Total: 1,
		Page:  2,
	}}
	handler := ListContactsHandler(crmStub)

	c, rec := newJSONContext(http.MethodGet, "/contacts?company=Acme&state=TX&industry=Manufacturing&per_page=25&page=2", "", "")
	require.NoError(t, handler(c))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, crmStub.listOpts, 1)
	opts := crmStub.listOpts[0]
	assert.Equal(t, "Acme", opts.Company)
	assert.Equal(t, "TX", opts.State)
	assert.Equal(t, "Manufacturing", opts.Industry)
	assert.Equal(t, 25, opts.PerPage)
	assert.Equal(t, 2, opts.Page)
}

func TestListContactsHandler_OmittedPaginationLeftToClient(t *testing.T) {
	crmStub := &stubCRM{page: &models.ContactsPage{Data: []models.Contact{}}}
	handler := ListContactsHandler(crmStub)

	c, rec := newJSONContext(http.MethodGet, "/contacts", "", "")
	require.NoError(t, handler(c))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, crmStub.listOpts, 1)
	assert.Zero(t, crmStub.listOpts[0].PerPage)
	assert.Zero(t, crmStub.listOpts[0].Page)
}

func TestListContactsHandler_CRMError(t *testing.T) {
	crmStub := &stubCRM{pageErr: fmt.Errorf("CRM API returned status 502: bad gateway")}
	handler := ListContactsHandler(crmStub)

	c, rec := newJSONContext(http.MethodGet, "/contacts", "", "")
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "CRM API error")
}

func TestGetContactHandler(t *testing.T) {
	crmStub := &stubCRM{detail: sampleDetail()}
	handler := GetContactHandler(crmStub)

	c, rec := newJSONContext(http.MethodGet, "/", "", "42")
	require.NoError(t, handler(c))

	require.Equal(t, http.StatusOK, rec.Code)

	var detail models.ContactDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, 42, detail.Data.ID)
}

func TestGetContactHandler_InvalidID(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/", "", "not-a-number")
	require.NoError(t, GetContactHandler(&stubCRM{})(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid contact id")
}

func TestContactEventsHandler_NilNormalizedToEmptyList(t *testing.T) {
	crmStub := &stubCRM{events: nil}
	handler := ContactEventsHandler(crmStub)

	c, rec := newJSONContext(http.MethodGet, "/", "", "42")
	require.NoError(t, handler(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": []}`, rec.Body.String())
}

func TestContactMessagesHandler(t *testing.T) {
	crmStub := &stubCRM{posts: []models.Post{{ID: 1, Type: "blog_post", Title: "Retrofit ROI"}}}
	handler := ContactMessagesHandler(crmStub)

	c, rec := newJSONContext(http.MethodGet, "/", "", "42")
	require.NoError(t, handler(c))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["data"], 1)
	assert.Equal(t, "Retrofit ROI", resp["data"][0].Title)
}
