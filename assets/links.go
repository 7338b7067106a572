package assets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrBadDataURL is returned for data: URLs that cannot be decoded
var ErrBadDataURL = errors.New("malformed data URL")

// ResolveImageLink rewrites share links from common file hosts into direct image URLs.
// Anything it does not recognise (or cannot parse) comes back trimmed and otherwise unchanged.
func ResolveImageLink(raw string) string {
	link := strings.TrimSpace(raw)
	if link == "" || strings.HasPrefix(link, "data:") || strings.HasPrefix(link, "embed:") {
		return link
	}

	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}

	host := strings.ToLower(strings.TrimPrefix(u.Host, "www."))
	switch host {
	case "github.com":
		// /owner/repo/blob/ref/path -> raw.githubusercontent.com/owner/repo/ref/path
		parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 5)
		if len(parts) == 5 && (parts[2] == "blob" || parts[2] == "raw") {
			return "https://raw.githubusercontent.com/" + parts[0] + "/" + parts[1] + "/" + parts[3] + "/" + parts[4]
		}
	case "drive.google.com":
		if id := driveFileID(u); id != "" {
			return "https://drive.google.com/uc?export=view&id=" + url.QueryEscape(id)
		}
	case "dropbox.com":
		q := u.Query()
		q.Del("dl")
		q.Set("raw", "1")
		u.Scheme = "https"
		u.Host = "dl.dropboxusercontent.com"
		u.RawQuery = q.Encode()
		return u.String()
	}
	return link
}

func driveFileID(u *url.URL) string {
	// /file/d/<id>/view
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "d" {
			return parts[i+1]
		}
	}
	// /open?id=<id> and /uc?id=<id>
	return u.Query().Get("id")
}

// EncodeDataURL wraps raw bytes as a base64 data: URL, sniffing the media type
func EncodeDataURL(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL returns the payload and media type of a data: URL
func DecodeDataURL(ref string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return nil, "", fmt.Errorf("%w: missing data: prefix", ErrBadDataURL)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("%w: missing comma", ErrBadDataURL)
	}

	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrBadDataURL, err)
		}
		return data, mime, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrBadDataURL, err)
	}
	return []byte(data), mime, nil
}
