package form

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// Parse normalizes an incoming request body into a Form. It never fails:
// each parse strategy reports success or failure, the strategies are tried
// in order, and total failure yields an empty form.
//
// Strategy selection is by case-insensitive substring match on the
// Content-Type header, ignoring parameters such as charset. A JSON body
// that does not decode falls back to the unknown-content-type path, which
// tries JSON first and URL-encoded second.
func Parse(r *http.Request) *Form {
	var body []byte
	if r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err == nil {
			body = data
		}
	}

	contentType := r.Header.Get("Content-Type")
	ct := strings.ToLower(contentType)

	switch {
	case strings.Contains(ct, "application/json"):
		if f, ok := parseJSON(body); ok {
			return f
		}
	case strings.Contains(ct, "application/x-www-form-urlencoded"):
		if f, ok := parseURLEncoded(string(body)); ok {
			return f
		}
		return New()
	case strings.Contains(ct, "multipart/form-data"):
		if f, ok := parseMultipart(contentType, body); ok {
			return f
		}
		return New()
	}

	if f, ok := parseJSON(body); ok {
		return f
	}
	if f, ok := parseURLEncoded(string(body)); ok {
		return f
	}
	return New()
}

// parseJSON decodes body as a single flat JSON object, preserving key
// order. Numbers decode as json.Number so they render without float
// formatting artifacts.
func parseJSON(body []byte) (*Form, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, false
	}

	f := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		f.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	// Trailing garbage after the object means the body was not JSON.
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return f, true
}

// parseURLEncoded decodes body as URL-encoded key/value pairs, preserving
// the order keys first appear and collecting repeated keys into a
// []string. A candidate body must contain at least one "=" pair; arbitrary
// prose would otherwise decode into a single junk key.
func parseURLEncoded(body string) (*Form, bool) {
	body = strings.TrimSpace(body)
	if !strings.Contains(body, "=") {
		return nil, false
	}

	f := New()
	for pair := range strings.SplitSeq(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, false
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, false
		}
		if key == "" {
			continue
		}
		f.Add(key, value)
	}
	return f, true
}

// parseMultipart reads body as a multipart form using the boundary from
// the Content-Type header. File parts are ignored; field values collect
// per key the same way URL-encoded values do.
func parseMultipart(contentType string, body []byte) (*Form, bool) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, false
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, false
	}

	f := New()
	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false
		}
		name := part.FormName()
		if name == "" || part.FileName() != "" {
			continue
		}
		value, err := io.ReadAll(part)
		if err != nil {
			return nil, false
		}
		f.Add(name, string(value))
	}
	return f, true
}
