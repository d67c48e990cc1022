package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

// pageParams reads page and per_page from the query string. Values that do
// not parse as integers fall back to the defaults; range clamping is left to
// the history service.
func pageParams(c *gin.Context) (page, perPage int) {
	return queryInt(c, "page", defaultPage), queryInt(c, "per_page", defaultPerPage)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return n
}
