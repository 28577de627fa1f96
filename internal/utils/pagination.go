package utils

import (
	"fmt"
	"net/url"
)

// BuildPageURL rebuilds a listing URL pointing at the given page, carrying
// every filter parameter through.
func BuildPageURL(basePath string, page int, params url.Values) string {
	u, _ := url.Parse(basePath)
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	for key, values := range params {
		if key != "page" {
			for _, value := range values {
				q.Add(key, value)
			}
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
