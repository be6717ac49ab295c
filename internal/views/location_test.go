package views

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryLocation_DefaultsToPageOne(t *testing.T) {
	assert.Equal(t, 1, NewQueryLocation(nil).Page())
	assert.Equal(t, 1, NewQueryLocation(url.Values{"page": []string{"abc"}}).Page())
	assert.Equal(t, 1, NewQueryLocation(url.Values{"page": []string{"0"}}).Page())
}

func TestQueryLocation_Roundtrip(t *testing.T) {
	loc := NewQueryLocation(url.Values{})
	loc.SetPage(4)
	assert.Equal(t, 4, loc.Page())
	assert.Equal(t, "4", loc.Values().Get("page"))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(0, 10))
	assert.Equal(t, 1, clampPage(-5, 10))
	assert.Equal(t, 10, clampPage(11, 10))
	assert.Equal(t, 7, clampPage(7, 10))
	assert.Equal(t, 3, clampPage(3, 0), "unknown totalPages only enforces the lower bound")
}
