package release

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// tarEntry is one file in a synthetic archive.
type tarEntry struct {
	name    string
	content []byte
	mode    int64
}

// createTarGz builds a tar.gz archive from entries.
func createTarGz(t *testing.T, entries []tarEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	for _, e := range entries {
		mode := e.mode
		if mode == 0 {
			mode = 0644
		}
		hdr := &tar.Header{
			Name: e.name,
			Mode: mode,
			Size: int64(len(e.content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write(e.content); err != nil {
			t.Fatal(err)
		}
	}
	tw.Close()
	gw.Close()
	return buf.Bytes()
}

func TestDownloadAsset(t *testing.T) {
	archiveData := createTarGz(t, []tarEntry{{name: "hayride", content: []byte("binary"), mode: 0755}})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(archiveData)))
		w.Write(archiveData)
	}))
	defer server.Close()

	c := NewClient(WithHTTPClient(server.Client()))
	asset := &Asset{Name: "hayride_linux_amd64.tar.gz", DownloadURL: server.URL + "/hayride_linux_amd64.tar.gz"}

	destDir := t.TempDir()
	path, err := c.DownloadAsset(asset, destDir)
	if err != nil {
		t.Fatalf("DownloadAsset: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}
	if !bytes.Equal(got, archiveData) {
		t.Error("downloaded bytes differ from served bytes")
	}
}

func TestDownloadAssetHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(WithHTTPClient(server.Client()))
	asset := &Asset{Name: "hayride-core.tar.gz", DownloadURL: server.URL + "/x"}

	if _, err := c.DownloadAsset(asset, t.TempDir()); err == nil {
		t.Error("expected error for HTTP 500")
	}
}

func TestVerifyChecksum(t *testing.T) {
	archiveData := createTarGz(t, []tarEntry{{name: "hayride", content: []byte("fake binary")}})

	h := sha256.Sum256(archiveData)
	checksum := hex.EncodeToString(h[:])
	checksumContent := fmt.Sprintf("%s  %s\n", checksum, "hayride_linux_amd64.tar.gz")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(checksumContent))
	}))
	defer server.Close()

	c := NewClient(WithHTTPClient(server.Client()))
	rel := &Release{
		Assets: []Asset{{Name: "checksums.txt", DownloadURL: server.URL + "/checksums.txt"}},
	}

	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "hayride_linux_amd64.tar.gz")
	os.WriteFile(archivePath, archiveData, 0644)

	if err := c.VerifyChecksum(rel, archivePath); err != nil {
		t.Fatalf("VerifyChecksum: %v", err)
	}
}

func TestVerifyChecksumMismatch(t *testing.T) {
	checksumContent := fmt.Sprintf("%s  %s\n",
		"0000000000000000000000000000000000000000000000000000000000000000",
		"hayride-core.tar.gz")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(checksumContent))
	}))
	defer server.Close()

	c := NewClient(WithHTTPClient(server.Client()))
	rel := &Release{
		Assets: []Asset{{Name: "checksums.txt", DownloadURL: server.URL + "/checksums.txt"}},
	}

	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "hayride-core.tar.gz")
	os.WriteFile(archivePath, []byte("different content"), 0644)

	if err := c.VerifyChecksum(rel, archivePath); err == nil {
		t.Fatal("expected checksum mismatch error")
	}
}

func TestVerifyChecksumMissingAsset(t *testing.T) {
	c := NewClient()
	rel := &Release{
		Assets: []Asset{{Name: "hayride_darwin_arm64.tar.gz", DownloadURL: "https://example.com/file"}},
	}
	if err := c.VerifyChecksum(rel, "/tmp/some-archive.tar.gz"); err == nil {
		t.Error("expected error for missing checksums.txt asset")
	}
}

func TestHasChecksums(t *testing.T) {
	with := &Release{Assets: []Asset{{Name: "checksums.txt"}}}
	without := &Release{Assets: []Asset{{Name: "hayride-core.tar.gz"}}}
	if !HasChecksums(with) {
		t.Error("HasChecksums = false, want true")
	}
	if HasChecksums(without) {
		t.Error("HasChecksums = true, want false")
	}
}
