package engineconn

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const testVersion = "0.5.1"

func tarGz(t *testing.T, name string, contents []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "LICENSE", Mode: 0o644, Size: 3, Typeflag: tar.TypeReg}))
	_, err := tw.Write([]byte("MIT"))
	require.NoError(t, err)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Mode: 0o755, Size: int64(len(contents)), Typeflag: tar.TypeReg}))
	_, err = tw.Write(contents)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gzw.Close())
	return buf.Bytes()
}

func zipArchive(t *testing.T, name string, contents []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(contents)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

type releaseServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newReleaseServer(t *testing.T, archiveName string, archive []byte, checksums string) *releaseServer {
	t.Helper()
	rs := &releaseServer{}
	mux := http.NewServeMux()
	base := "/dagger/releases/" + testVersion + "/"
	mux.HandleFunc(base+"checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		rs.hits.Add(1)
		fmt.Fprint(w, checksums)
	})
	mux.HandleFunc(base+archiveName, func(w http.ResponseWriter, r *http.Request) {
		rs.hits.Add(1)
		w.Write(archive)
	})
	rs.Server = httptest.NewServer(mux)
	t.Cleanup(rs.Close)
	return rs
}

func checksumLine(archive []byte, name string) string {
	return fmt.Sprintf("%x  %s\n", sha256.Sum256(archive), name)
}

func TestDownload(t *testing.T) {
	t.Parallel()

	cacheDir := t.TempDir()
	d := &Downloader{Version: "v" + testVersion, CacheDir: cacheDir, OS: "linux", Arch: "amd64"}
	require.Equal(t, "dagger_v0.5.1_linux_amd64.tar.gz", d.ArchiveName())

	bin := []byte("#!/bin/sh\necho dagger\n")
	archive := tarGz(t, "dagger", bin)
	srv := newReleaseServer(t, d.ArchiveName(), archive,
		checksumLine([]byte("other"), "dagger_v0.5.1_darwin_arm64.tar.gz")+checksumLine(archive, d.ArchiveName()))
	d.BaseURL = srv.URL

	// stale binary of another version
	stale := filepath.Join(cacheDir, "dagger-0.0.0")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o755))

	p, err := d.Download(context.Background())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cacheDir, "dagger-0.5.1"), p)

	got, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, bin, got)
	st, err := os.Stat(p)
	require.NoError(t, err)
	require.NotZero(t, st.Mode().Perm()&0o100)

	require.NoFileExists(t, stale)
	require.Equal(t, int32(2), srv.hits.Load())

	// cached
	p2, err := d.Download(context.Background())
	require.NoError(t, err)
	require.Equal(t, p, p2)
	require.Equal(t, int32(2), srv.hits.Load())
}

func TestDownloadConcurrent(t *testing.T) {
	t.Parallel()

	cacheDir := t.TempDir()
	d := &Downloader{Version: testVersion, CacheDir: cacheDir, OS: "linux", Arch: "arm64"}
	archive := tarGz(t, "dagger", []byte("bin"))
	srv := newReleaseServer(t, d.ArchiveName(), archive, checksumLine(archive, d.ArchiveName()))
	d.BaseURL = srv.URL

	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			dl := *d
			_, err := dl.Download(context.Background())
			return err
		})
	}
	require.NoError(t, eg.Wait())
	require.Equal(t, int32(2), srv.hits.Load())

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	var bins []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".lock" {
			bins = append(bins, e.Name())
		}
	}
	require.Equal(t, []string{"dagger-0.5.1"}, bins)
}

func TestDownloadWindowsZip(t *testing.T) {
	t.Parallel()

	d := &Downloader{Version: testVersion, CacheDir: t.TempDir(), OS: "windows", Arch: "amd64"}
	require.Equal(t, "dagger_v0.5.1_windows_amd64.zip", d.ArchiveName())

	archive := zipArchive(t, "dagger.exe", []byte("exe"))
	srv := newReleaseServer(t, d.ArchiveName(), archive, checksumLine(archive, d.ArchiveName()))
	d.BaseURL = srv.URL

	p, err := d.Download(context.Background())
	require.NoError(t, err)
	require.Equal(t, "dagger-0.5.1.exe", filepath.Base(p))
}

func TestDownloadErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid version", func(t *testing.T) {
		t.Parallel()
		d := &Downloader{Version: "latest", CacheDir: t.TempDir()}
		_, err := d.Download(context.Background())
		require.ErrorIs(t, err, ErrDownloadClient)

		var dlErr *DownloadClientError
		require.ErrorAs(t, err, &dlErr)
		require.Equal(t, "latest", dlErr.Version)
	})

	t.Run("missing checksum", func(t *testing.T) {
		t.Parallel()
		d := &Downloader{Version: testVersion, CacheDir: t.TempDir(), OS: "linux", Arch: "amd64"}
		archive := tarGz(t, "dagger", []byte("bin"))
		srv := newReleaseServer(t, d.ArchiveName(), archive, checksumLine(archive, "something-else.tar.gz"))
		d.BaseURL = srv.URL

		_, err := d.Download(context.Background())
		require.ErrorIs(t, err, ErrDownloadClient)
		require.ErrorContains(t, err, "no checksum for")
		require.NoFileExists(t, d.BinPath())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		d := &Downloader{Version: testVersion, CacheDir: t.TempDir(), OS: "plan9", Arch: "amd64"}
		srv := newReleaseServer(t, "unused.tar.gz", nil, "")
		d.BaseURL = srv.URL + "/missing"

		_, err := d.Download(context.Background())
		require.ErrorIs(t, err, ErrDownloadClient)
		require.ErrorContains(t, err, "404")
	})

	t.Run("binary not in archive", func(t *testing.T) {
		t.Parallel()
		d := &Downloader{Version: testVersion, CacheDir: t.TempDir(), OS: "linux", Arch: "amd64"}
		archive := tarGz(t, "README.md", []byte("hi"))
		srv := newReleaseServer(t, d.ArchiveName(), archive, checksumLine(archive, d.ArchiveName()))
		d.BaseURL = srv.URL

		_, err := d.Download(context.Background())
		require.ErrorContains(t, err, "dagger not found in archive")
	})
}

func TestReleaseURL(t *testing.T) {
	t.Parallel()

	d := &Downloader{Version: "0.5.0", OS: "darwin", Arch: "arm64"}
	require.Equal(t,
		"https://dl.dagger.io/dagger/releases/0.5.0/dagger_v0.5.0_darwin_arm64.tar.gz",
		d.releaseURL(d.ArchiveName()))
}
