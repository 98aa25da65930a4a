package adorn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture(t *testing.T) Registry {
	t.Helper()

	r := New()
	require.NoError(t, r.Add(Meta{Name: "global"}, wrapper("global")))
	require.NoError(t, r.Add(Meta{Name: "site"}, wrapper("site"), "Site"))
	require.NoError(t, r.Add(Meta{Name: "metrics", After: Priority{Wildcard}}, wrapper("metrics"), "Site"))
	require.NoError(t, r.Add(Meta{Name: "site"}, wrapper("site2"), "Other"))

	return r
}

func TestQuery_All(t *testing.T) {
	r := queryFixture(t)

	assert.Len(t, Query(r, MiddlewareQuery{}), 4)
}

func TestQuery_ByContext(t *testing.T) {
	r := queryFixture(t)

	context := "Site.Page"
	names := QueryNames(r, MiddlewareQuery{Context: &context})
	assert.Equal(t, []string{"global", "site", "metrics"}, names)

	global := GlobalContext
	names = QueryNames(r, MiddlewareQuery{Context: &global})
	assert.Equal(t, []string{"global"}, names)
}

func TestQuery_ByName(t *testing.T) {
	r := queryFixture(t)

	records := FindByName(r, "site")
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Site"}, records[0].Context())
	assert.Equal(t, []string{"Other"}, records[1].Context())
}

func TestQuery_Anchored(t *testing.T) {
	r := queryFixture(t)

	anchored := FindAnchored(r)
	require.Len(t, anchored, 1)
	assert.Equal(t, "metrics", anchored[0].Name())

	unanchored := false
	assert.Len(t, Query(r, MiddlewareQuery{Anchored: &unanchored}), 3)
}

func TestQuery_Combined(t *testing.T) {
	r := queryFixture(t)

	context := "Site"
	anchored := true
	names := QueryNames(r, MiddlewareQuery{Context: &context, Name: "metrics", Anchored: &anchored})
	assert.Equal(t, []string{"metrics"}, names)
}
