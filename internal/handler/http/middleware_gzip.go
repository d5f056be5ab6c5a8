package http

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// withCompressedJSON gzips JSON responses for clients that accept it.
// Bodiless responses such as 204 stay uncompressed.
var withCompressedJSON = middleware.Compress(gzip.DefaultCompression, "application/json")

// withGunzipRequest inflates request bodies sent with Content-Encoding: gzip.
// A body that is not valid gzip is rejected with 400.
func withGunzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "invalid gzip data", http.StatusBadRequest)
			return
		}
		defer zr.Close()

		r.Body = zr
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}
