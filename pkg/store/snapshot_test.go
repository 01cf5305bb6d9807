package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcforge/pcforge/pkg/catalog"
)

func tempPersister(t *testing.T) *FilePersister {
	t.Helper()
	p, err := NewFilePersister(t.TempDir())
	require.NoError(t, err)
	return p
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := tempPersister(t)

	s := New(p)
	s.ToggleDarkMode()
	gpu, ok := catalog.ProductByID("rtx-4090-gaming-x")
	require.True(t, ok)
	ssd, ok := catalog.ProductByID("samsung-980-pro-2tb")
	require.True(t, ok)
	s.AddToCart(gpu)
	s.AddToCart(ssd)
	s.AddToCart(ssd)

	got := Load(p)
	assert.True(t, got.DarkMode())
	require.Len(t, got.Cart(), 2)
	assert.Equal(t, s.Cart(), got.Cart())
	assert.Equal(t, s.TotalPrice(), got.TotalPrice())
	assert.Equal(t, 3, got.TotalItems())
}

func TestLoadMissingSnapshotUsesDefaults(t *testing.T) {
	s := Load(tempPersister(t))
	assert.False(t, s.DarkMode())
	assert.Empty(t, s.Cart())
	assert.Nil(t, s.User())
	assert.Equal(t, catalog.DefaultFilters(), s.Filters())
}

func TestLoadMalformedSnapshotUsesDefaults(t *testing.T) {
	p := tempPersister(t)
	require.NoError(t, p.Save(SnapshotKey, []byte("{definitely not json")))

	s := Load(p)
	assert.False(t, s.DarkMode())
	assert.Empty(t, s.Cart())
	assert.Equal(t, catalog.DefaultFilters(), s.Filters())
}

func TestLoadRecoversFieldWise(t *testing.T) {
	p := tempPersister(t)
	// Valid JSON, but the cart section is the wrong shape. Dark mode and
	// filters must still come through.
	blob := `{"isDarkMode":true,"cart":"oops","filters":{"category":"ram","priceRange":[0,500],"brand":[],"rating":0,"inStock":false,"sortBy":"price","sortOrder":"asc"}}`
	require.NoError(t, p.Save(SnapshotKey, []byte(blob)))

	s := Load(p)
	assert.True(t, s.DarkMode())
	assert.Empty(t, s.Cart())
	assert.Equal(t, "ram", s.Filters().Category)
	assert.Equal(t, catalog.SortByPrice, s.Filters().SortBy)
}

func TestLoadDropsInvalidCartLines(t *testing.T) {
	p := tempPersister(t)
	blob := `{"isDarkMode":false,"cart":[
		{"id":"good","product":{"id":"good","price":10},"quantity":2},
		{"id":"","product":{"id":"","price":5},"quantity":1},
		{"id":"zero","product":{"id":"zero","price":5},"quantity":0},
		{"id":"neg","product":{"id":"neg","price":5},"quantity":-4}
	],"user":null,"filters":null}`
	require.NoError(t, p.Save(SnapshotKey, []byte(blob)))

	s := Load(p)
	require.Len(t, s.Cart(), 1)
	assert.Equal(t, "good", s.Cart()[0].ID)
	assert.Equal(t, 2, s.Cart()[0].Quantity)
}

func TestSnapshotPersistsUser(t *testing.T) {
	p := tempPersister(t)
	s := New(p)
	s.SetUser(&User{ID: "u1", Email: "a@b.c", Name: "Ada", Role: "user"})

	got := Load(p)
	require.NotNil(t, got.User())
	assert.Equal(t, "Ada", got.User().Name)

	s.SetUser(nil)
	assert.Nil(t, Load(p).User())
}

func TestFilePersisterLoadMissingKey(t *testing.T) {
	p := tempPersister(t)
	_, ok, err := p.Load("never-written")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilePersisterSaveReplacesWholeBlob(t *testing.T) {
	p := tempPersister(t)
	require.NoError(t, p.Save("k", []byte(`{"a":1}`)))
	require.NoError(t, p.Save("k", []byte(`{"b":2}`)))

	data, ok, err := p.Load("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"b":2}`, string(data))
}
