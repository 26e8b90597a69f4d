package github

import (
	"net/url"
	"strings"
)

// APIDiffPath converts a GitHub web diff URL to the API pulls path
// Example: https://github.com/owner/repo/pull/123.diff -> /repos/owner/repo/pulls/123
// URLs that do not look like web diff links are returned as-is with ok=false
func APIDiffPath(webURL string) (path string, ok bool) {
	u, err := url.Parse(webURL)
	if err != nil {
		return webURL, false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[2] != "pull" || !strings.HasSuffix(parts[3], ".diff") {
		return webURL, false
	}
	owner := parts[0]
	repo := parts[1]
	prNumber := strings.TrimSuffix(parts[3], ".diff")
	if owner == "" || repo == "" || prNumber == "" {
		return webURL, false
	}
	return "/repos/" + owner + "/" + repo + "/pulls/" + prNumber, true
}

// hostOf returns the hostname of a URL, or "" if unparseable
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
