package engineconn

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cenkalti/backoff/v4"
	"github.com/gofrs/flock"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/mod/semver"
)

var (
	// CLIVersion is the CLI release matching the generated bindings.
	CLIVersion = "0.5.0"

	DefaultCLIScheme = "https"
	DefaultCLIHost   = "dl.dagger.io"
)

const (
	binPrefix      = "dagger-"
	downloadPrefix = ".dagger-download-"
	lockTimeout    = 5 * time.Minute
	maxRetries     = 3
)

// Downloader fetches a CLI release into the user cache directory.
type Downloader struct {
	// Version of the CLI, with or without the leading "v".
	Version string
	// CacheDir defaults to $XDG_CACHE_HOME/dagger.
	CacheDir string
	// BaseURL defaults to DefaultCLIScheme://DefaultCLIHost.
	BaseURL string
	// OS and Arch default to the running platform.
	OS   string
	Arch string

	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (d *Downloader) version() string {
	v := d.Version
	if v == "" {
		v = CLIVersion
	}
	return strings.TrimPrefix(v, "v")
}

func (d *Downloader) platform() (string, string) {
	goos, goarch := d.OS, d.Arch
	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}
	return goos, goarch
}

func (d *Downloader) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

func (d *Downloader) cacheDir() string {
	if d.CacheDir != "" {
		return d.CacheDir
	}
	return filepath.Join(xdg.CacheHome, "dagger")
}

func (d *Downloader) releaseURL(file string) string {
	base := d.BaseURL
	if base == "" {
		base = DefaultCLIScheme + "://" + DefaultCLIHost
	}
	return strings.TrimSuffix(base, "/") + path.Join("/dagger/releases", d.version(), file)
}

// ArchiveName is the release archive holding the binary for the platform.
func (d *Downloader) ArchiveName() string {
	goos, goarch := d.platform()
	ext := "tar.gz"
	if goos == "windows" {
		ext = "zip"
	}
	return fmt.Sprintf("dagger_v%s_%s_%s.%s", d.version(), goos, goarch, ext)
}

// BinPath is where the binary of the version is cached.
func (d *Downloader) BinPath() string {
	goos, _ := d.platform()
	name := binPrefix + d.version()
	if goos == "windows" {
		name += ".exe"
	}
	return filepath.Join(d.cacheDir(), name)
}

// Download returns the path of the cached CLI binary, fetching and verifying
// it first when missing. Binaries of other versions are removed.
func (d *Downloader) Download(ctx context.Context) (_ string, rerr error) {
	version := d.version()
	defer func() {
		if rerr != nil {
			rerr = &DownloadClientError{Version: version, Err: rerr}
		}
	}()
	if !semver.IsValid("v" + version) {
		return "", fmt.Errorf("invalid version %q", d.Version)
	}

	logger := d.logger().With("version", version)
	binPath := d.BinPath()
	if isRegularFile(binPath) {
		logger.Debug("using cached dagger CLI", "path", binPath)
		return binPath, nil
	}

	if err := os.MkdirAll(d.cacheDir(), 0o700); err != nil {
		return "", err
	}

	lock := flock.New(filepath.Join(d.cacheDir(), binPrefix+version+".lock"))
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return "", fmt.Errorf("lock cache dir: %w", err)
	}
	if !locked {
		return "", errors.New("lock cache dir: not acquired")
	}
	defer lock.Unlock()

	// another process may have finished the download while we waited
	if isRegularFile(binPath) {
		return binPath, nil
	}

	logger.Info("downloading dagger CLI", "archive", d.ArchiveName())
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	err = backoff.RetryNotify(func() error {
		return d.fetch(ctx, binPath)
	}, bo, func(err error, next time.Duration) {
		logger.Warn("download failed, retrying", "error", err, "in", next)
	})
	if err != nil {
		return "", err
	}

	d.cleanup(binPath)
	return binPath, nil
}

func (d *Downloader) fetch(ctx context.Context, binPath string) error {
	sums, err := d.get(ctx, "checksums.txt")
	if err != nil {
		return err
	}
	expected, err := findChecksum(sums, d.ArchiveName())
	if err != nil {
		return backoff.Permanent(err)
	}

	archive, err := d.get(ctx, d.ArchiveName())
	if err != nil {
		return err
	}
	sum := sha256.Sum256(archive)
	if actual := hex.EncodeToString(sum[:]); actual != expected {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", d.ArchiveName(), expected, actual)
	}

	goos, _ := d.platform()
	var bin []byte
	if goos == "windows" {
		bin, err = extractZip(archive, "dagger.exe")
	} else {
		bin, err = extractTarGz(archive, "dagger")
	}
	if err != nil {
		return backoff.Permanent(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(binPath), downloadPrefix)
	if err != nil {
		return backoff.Permanent(err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(bin); err != nil {
		tmp.Close()
		return backoff.Permanent(err)
	}
	if err := tmp.Chmod(0o755); err != nil {
		tmp.Close()
		return backoff.Permanent(err)
	}
	if err := tmp.Close(); err != nil {
		return backoff.Permanent(err)
	}
	if err := os.Rename(tmp.Name(), binPath); err != nil {
		return backoff.Permanent(err)
	}
	return nil
}

func (d *Downloader) get(ctx context.Context, file string) ([]byte, error) {
	client := d.HTTPClient
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	u := d.releaseURL(file)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, backoff.Permanent(fmt.Errorf("GET %s: %s", u, resp.Status))
	default:
		return nil, fmt.Errorf("GET %s: %s", u, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// cleanup removes binaries of other versions. Failures are only logged.
func (d *Downloader) cleanup(keep string) {
	entries, err := os.ReadDir(d.cacheDir())
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, binPrefix) || strings.HasSuffix(name, ".lock") {
			continue
		}
		p := filepath.Join(d.cacheDir(), name)
		if p == keep {
			continue
		}
		if err := os.Remove(p); err != nil {
			d.logger().Debug("failed to remove stale dagger CLI", "path", p, "error", err)
		}
	}
}

func findChecksum(sums []byte, archiveName string) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(sums))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[1] == archiveName {
			return fields[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no checksum for %s", archiveName)
}

func extractTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s not found in archive", name)
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func extractZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if path.Base(f.Name) != name || f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

func isRegularFile(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}
