package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPageURL_CarriesFilters(t *testing.T) {
	params := url.Values{}
	params.Set("property_type", "house")
	params.Set("price__gte", "100000")
	params.Set("page", "3")

	result := BuildPageURL("/properties/", 4, params)

	parsed, err := url.Parse(result)
	assert.NoError(t, err)
	assert.Equal(t, "/properties/", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "4", q.Get("page"))
	assert.Equal(t, "house", q.Get("property_type"))
	assert.Equal(t, "100000", q.Get("price__gte"))
}

func TestBuildPageURL_NoFilters(t *testing.T) {
	result := BuildPageURL("/properties/", 2, url.Values{})
	assert.Equal(t, "/properties/?page=2", result)
}
