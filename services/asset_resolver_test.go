package services

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func testResolver(t *testing.T) *AssetResolver {
	t.Helper()
	dir := t.TempDir()
	return &AssetResolver{
		client:    &http.Client{},
		uploadDir: dir,
		publicDir: "/uploads/images",
	}
}

func TestResolveImageEmptyValue(t *testing.T) {
	r := testResolver(t)
	if got := r.ResolveImage("   "); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
	if got := r.ResolveImage(`""`); got != nil {
		t.Fatalf("quoted empty: got %q, want nil", *got)
	}
}

func TestResolveImageMalformedBase64(t *testing.T) {
	r := testResolver(t)
	if got := r.ResolveImage("data:image/png;base64,!!!not-base64!!!"); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
}

func TestResolveImageBase64Stored(t *testing.T) {
	r := testResolver(t)
	payload := base64.StdEncoding.EncodeToString(pngHeader)

	got := r.ResolveImage("data:image/png;base64," + payload)
	if got == nil {
		t.Fatal("got nil, want stored reference")
	}
	if !strings.HasPrefix(*got, "/uploads/images/") || !strings.HasSuffix(*got, ".png") {
		t.Fatalf("unexpected reference: %q", *got)
	}
}

func TestResolveImageRemote404(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}))
	defer srv.Close()

	r := testResolver(t)
	if got := r.ResolveImage(srv.URL + "/photo.jpg"); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
}

func TestResolveImageRemoteNonImageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("<html>not really an image</html>"))
	}))
	defer srv.Close()

	r := testResolver(t)
	if got := r.ResolveImage(srv.URL + "/photo.jpg"); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
}

func TestResolveImageRemoteStored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngHeader)
	}))
	defer srv.Close()

	r := testResolver(t)
	got := r.ResolveImage(srv.URL + "/photo")
	if got == nil {
		t.Fatal("got nil, want stored reference")
	}
	if filepath.Ext(*got) != ".png" {
		t.Fatalf("extension: got %q, want .png", filepath.Ext(*got))
	}
}

func TestResolveImageUnreachableHost(t *testing.T) {
	r := testResolver(t)
	if got := r.ResolveImage("http://127.0.0.1:1/photo.jpg"); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
}

func TestResolveImageLocalPath(t *testing.T) {
	r := testResolver(t)

	got := r.ResolveImage("maria.jpg")
	if got == nil || *got != "/uploads/images/maria.jpg" {
		t.Fatalf("bare filename: got %v", got)
	}

	got = r.ResolveImage("/uploads/images/existing.png")
	if got == nil || *got != "/uploads/images/existing.png" {
		t.Fatalf("upload path: got %v", got)
	}

	if got = r.ResolveImage("../../etc/passwd"); got != nil {
		t.Fatalf("traversal path: got %q, want nil", *got)
	}
}

func TestPrepareShareURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"https://drive.google.com/file/d/abc123_-/view?usp=sharing",
			"https://drive.google.com/uc?export=download&id=abc123_-",
		},
		{
			"https://www.dropbox.com/s/xyz/photo.jpg?dl=0",
			"https://www.dropbox.com/s/xyz/photo.jpg?dl=1",
		},
		{
			"https://www.dropbox.com/s/xyz/photo.jpg",
			"https://www.dropbox.com/s/xyz/photo.jpg?dl=1",
		},
		{
			"https://example.com/photo.jpg",
			"https://example.com/photo.jpg",
		},
	}
	for _, tc := range cases {
		if got := PrepareShareURL(tc.in); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestIsImageData(t *testing.T) {
	if !isImageData([]byte{0xFF, 0xD8, 0xFF, 0xE0}) {
		t.Fatal("jpeg header not recognized")
	}
	if !isImageData(pngHeader) {
		t.Fatal("png header not recognized")
	}
	if !isImageData([]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)) {
		t.Fatal("svg not recognized")
	}
	if isImageData([]byte("plain text payload")) {
		t.Fatal("text accepted as image")
	}
	if isImageData([]byte{0xFF}) {
		t.Fatal("short payload accepted")
	}
}

func TestImageExtension(t *testing.T) {
	cases := []struct {
		contentType string
		rawURL      string
		want        string
	}{
		{"image/svg+xml", "https://example.com/logo", "svg"},
		{"image/svg+xml; charset=utf-8", "https://example.com/logo", "svg"},
		{"image/jpeg", "https://example.com/photo", "jpg"},
		{"image/png", "", "png"},
		{"text/html", "https://example.com/photo.JPEG", "jpg"},
		{"", "https://example.com/photo.webp", "webp"},
		{"", "https://example.com/photo", "jpg"},
	}
	for _, tc := range cases {
		if got := imageExtension(tc.contentType, tc.rawURL); got != tc.want {
			t.Fatalf("%q %q: got %q, want %q", tc.contentType, tc.rawURL, got, tc.want)
		}
	}
}

func TestResolveVideoYouTube(t *testing.T) {
	r := testResolver(t)

	got := r.ResolveVideo("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s")
	if got == nil || *got != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Fatalf("watch url: got %v", got)
	}

	got = r.ResolveVideo("https://youtu.be/dQw4w9WgXcQ?si=abc")
	if got == nil || *got != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Fatalf("short url: got %v", got)
	}

	if got = r.ResolveVideo("https://www.youtube.com/watch"); got != nil {
		t.Fatalf("missing id: got %q, want nil", *got)
	}
}

func TestResolveVideoVimeo(t *testing.T) {
	r := testResolver(t)

	got := r.ResolveVideo("https://vimeo.com/123456789")
	if got == nil || *got != "https://player.vimeo.com/video/123456789" {
		t.Fatalf("got %v", got)
	}

	embed := "https://player.vimeo.com/video/123456789"
	got = r.ResolveVideo(embed)
	if got == nil || *got != embed {
		t.Fatalf("embed passthrough: got %v", got)
	}
}

func TestResolveVideoDirectURLProbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method: got %s, want HEAD", r.Method)
		}
		if strings.HasSuffix(r.URL.Path, "missing.mp4") {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	r := testResolver(t)
	if got := r.ResolveVideo(srv.URL + "/intro.mp4"); got == nil {
		t.Fatal("reachable video rejected")
	}
	if got := r.ResolveVideo(srv.URL + "/missing.mp4"); got != nil {
		t.Fatalf("missing video accepted: %q", *got)
	}
}
