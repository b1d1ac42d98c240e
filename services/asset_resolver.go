package services

import (
	"bytes"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const assetFetchTimeout = 30 * time.Second

// Some hosts reject Go's default client outright, so fetches go out with a
// realistic browser identity first.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var dataURIPattern = regexp.MustCompile(`^data:image/([a-zA-Z]+);base64,(.+)$`)
var driveFileIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// AssetResolver turns raw media reference strings from spreadsheets into
// stored local references. Every failure path returns nil; an unresolvable
// photo must never fail the row that carries it.
type AssetResolver struct {
	client    *http.Client
	uploadDir string // filesystem directory for stored images
	publicDir string // URL path prefix served to clients
}

func NewAssetResolver() *AssetResolver {
	return &AssetResolver{
		client:    &http.Client{Timeout: assetFetchTimeout},
		uploadDir: filepath.Join("uploads", "images"),
		publicDir: "/uploads/images",
	}
}

// ResolveImage classifies the value as a data URI, a remote URL, or a local
// path, in that order, and returns a stable local reference or nil.
func (r *AssetResolver) ResolveImage(value string) *string {
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	if value == "" {
		return nil
	}

	if strings.HasPrefix(value, "data:image/") {
		return r.saveBase64Image(value)
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return r.fetchImage(value)
	}
	return normalizeLocalImagePath(value, r.publicDir)
}

func (r *AssetResolver) saveBase64Image(value string) *string {
	m := dataURIPattern.FindStringSubmatch(value)
	if m == nil {
		return nil
	}
	payload, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil || len(payload) == 0 {
		return nil
	}
	return r.store(payload, m[1])
}

func (r *AssetResolver) fetchImage(rawURL string) *string {
	fetchURL := PrepareShareURL(rawURL)

	body, contentType, ok := r.download(fetchURL, true)
	if !ok {
		// Some hosts 403/429 on browser-looking headers; one plain retry.
		body, contentType, ok = r.download(fetchURL, false)
		if !ok {
			return nil
		}
	}
	if len(body) == 0 || !isImageData(body) {
		return nil
	}
	return r.store(body, imageExtension(contentType, rawURL))
}

func (r *AssetResolver) download(fetchURL string, withHeaders bool) ([]byte, string, bool) {
	req, err := http.NewRequest(http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, "", false
	}
	if withHeaders {
		req.Header.Set("User-Agent", browserUserAgent)
		req.Header.Set("Accept", "image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8")
		req.Header.Set("Cache-Control", "no-cache")
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", false
	}
	return body, resp.Header.Get("Content-Type"), true
}

func (r *AssetResolver) store(payload []byte, extension string) *string {
	if extension == "" {
		extension = "jpg"
	}
	if err := os.MkdirAll(r.uploadDir, 0755); err != nil {
		log.Printf("asset resolver: create upload dir: %v", err)
		return nil
	}
	name := uuid.NewString() + "." + extension
	if err := os.WriteFile(filepath.Join(r.uploadDir, name), payload, 0644); err != nil {
		log.Printf("asset resolver: write image: %v", err)
		return nil
	}
	ref := r.publicDir + "/" + name
	return &ref
}

// PrepareShareURL rewrites known share-link hosts to their direct-download
// form; anything else passes through unchanged.
func PrepareShareURL(rawURL string) string {
	if strings.Contains(rawURL, "drive.google.com") {
		if m := driveFileIDPattern.FindStringSubmatch(rawURL); m != nil {
			return "https://drive.google.com/uc?export=download&id=" + m[1]
		}
		return rawURL
	}
	if strings.Contains(rawURL, "dropbox.com") && !strings.Contains(rawURL, "dl=1") {
		out := strings.ReplaceAll(rawURL, "dl=0", "dl=1")
		if !strings.Contains(out, "dl=1") {
			if strings.Contains(out, "?") {
				out += "&dl=1"
			} else {
				out += "?dl=1"
			}
		}
		return out
	}
	return rawURL
}

// isImageData sniffs magic bytes instead of trusting Content-Type: hosts
// routinely omit or mis-report it.
func isImageData(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	switch {
	case b[0] == 0xFF && b[1] == 0xD8 && b[2] == 0xFF: // JPEG
		return true
	case bytes.HasPrefix(b, []byte{0x89, 0x50, 0x4E, 0x47}): // PNG
		return true
	case bytes.HasPrefix(b, []byte("GIF8")):
		return true
	case bytes.HasPrefix(b, []byte("BM")): // BMP
		return true
	case bytes.HasPrefix(b, []byte("RIFF")) && len(b) >= 12 && string(b[8:12]) == "WEBP":
		return true
	}
	n := len(b)
	if n > 100 {
		n = 100
	}
	head := strings.ToLower(string(b[:n]))
	if strings.Contains(head, "<svg") || (strings.Contains(head, "<?xml") && strings.Contains(head, "svg")) {
		return true
	}
	return false
}

func imageExtension(contentType, rawURL string) string {
	if strings.HasPrefix(contentType, "image/") {
		ext := strings.TrimPrefix(contentType, "image/")
		if i := strings.IndexByte(ext, ';'); i >= 0 {
			ext = ext[:i]
		}
		switch ext {
		case "jpeg":
			return "jpg"
		case "svg+xml":
			return "svg"
		}
		if ext != "" {
			return ext
		}
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(rawURL), "."))
	switch ext {
	case "jpeg":
		return "jpg"
	case "jpg", "png", "gif", "webp", "bmp", "svg":
		return ext
	}
	return "jpg"
}

func normalizeLocalImagePath(value, publicDir string) *string {
	if strings.HasPrefix(value, "/uploads/") || strings.HasPrefix(value, "./uploads/") {
		return &value
	}
	// Bare filename: assume the operator dropped the file into the local
	// assets directory.
	if !strings.Contains(value, "/") {
		ref := publicDir + "/" + value
		return &ref
	}
	return nil
}

// ResolveVideo validates and canonicalizes a video reference. YouTube and
// Vimeo links become embed URLs without any network access; direct file and
// generic URLs are probed with a HEAD request.
func (r *AssetResolver) ResolveVideo(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if strings.Contains(value, "youtube.com/watch") || strings.Contains(value, "youtu.be/") {
		if id := youtubeVideoID(value); id != "" {
			embed := "https://www.youtube.com/embed/" + id
			return &embed
		}
		return nil
	}
	if strings.Contains(value, "vimeo.com/") && !strings.Contains(value, "player.vimeo.com") {
		id := strings.SplitN(strings.SplitN(value, "vimeo.com/", 2)[1], "?", 2)[0]
		if id != "" && isAllDigits(id) {
			embed := "https://player.vimeo.com/video/" + id
			return &embed
		}
		return nil
	}
	if strings.Contains(value, "youtube.com/embed/") || strings.Contains(value, "player.vimeo.com/video/") {
		return &value
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		if r.headOK(value) {
			return &value
		}
		return nil
	}
	return nil
}

func (r *AssetResolver) headOK(rawURL string) bool {
	resp, err := r.client.Head(rawURL)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

func youtubeVideoID(value string) string {
	if strings.Contains(value, "youtube.com/watch") {
		parts := strings.SplitN(value, "?", 2)
		if len(parts) != 2 {
			return ""
		}
		q, err := url.ParseQuery(parts[1])
		if err != nil {
			return ""
		}
		return q.Get("v")
	}
	rest := strings.SplitN(value, "youtu.be/", 2)[1]
	return strings.SplitN(rest, "?", 2)[0]
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
