package compress

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// RequestUngzipper transparently decompresses gzip encoded request bodies.
type RequestUngzipper struct{}

type gzipBody struct {
	*gzip.Reader
	body io.ReadCloser
}

func (b gzipBody) Close() error {
	b.Reader.Close()
	return b.body.Close()
}

func (u RequestUngzipper) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		reader, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Could not decompress body", http.StatusBadRequest)
			return
		}
		r.Body = gzipBody{Reader: reader, body: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		defer r.Body.Close()
		next.ServeHTTP(w, r)
	})
}
