package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLocation(t *testing.T) {
	biz := BusinessContext{Locations: []Location{
		{Name: "Old Bridge"},
		{Name: "Freehold"},
	}}

	loc, err := biz.FindLocation("Old Bridge")
	require.NoError(t, err)
	assert.Equal(t, "Old Bridge", loc.Name)

	loc, err = biz.FindLocation("old bridge")
	require.NoError(t, err)
	assert.Equal(t, "Old Bridge", loc.Name)

	loc, err = biz.FindLocation("old_bridge")
	require.NoError(t, err)
	assert.Equal(t, "Old Bridge", loc.Name)

	_, err = biz.FindLocation("Trenton")
	assert.ErrorIs(t, err, ErrLocationNotFound)

	_, err = biz.FindLocation("")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestLocationNames(t *testing.T) {
	biz := BusinessContext{Locations: []Location{
		{Name: "Old Bridge"},
		{Name: ""},
		{Name: "Freehold"},
	}}

	assert.Equal(t, []string{"Old Bridge", "Freehold"}, biz.LocationNames())
}
