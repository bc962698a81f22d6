// Package archive packs and unpacks tar archives with optional gzip or
// zstandard compression. The demo pipeline round-trips its payload through
// an archive to give the progress tree real work to report on.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// SupportedExtensions returns the archive extensions this package handles.
func SupportedExtensions() []string {
	return []string{".tar", ".tar.gz", ".tgz", ".tar.zst"}
}

// Supported reports whether the filename carries a handled extension.
func Supported(name string) bool {
	for _, ext := range SupportedExtensions() {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Create writes files (archive-relative name to content) as a tar archive
// at dst, compressed according to dst's extension. Entries are written in
// sorted name order so identical inputs produce identical archives.
func Create(dst string, files map[string][]byte) error {
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var enc io.Closer
	switch {
	case strings.HasSuffix(dst, ".tar.gz"), strings.HasSuffix(dst, ".tgz"):
		gz := gzip.NewWriter(f)
		w, enc = gz, gz
	case strings.HasSuffix(dst, ".tar.zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		w, enc = zw, zw
	case strings.HasSuffix(dst, ".tar"):
	default:
		return fmt.Errorf("unsupported archive format: %s", dst)
	}

	tw := tar.NewWriter(w)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hdr := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(files[name])),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write tar header %s: %w", name, err)
		}
		if _, err := tw.Write(files[name]); err != nil {
			return fmt.Errorf("failed to write tar entry %s: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize tar stream: %w", err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to finalize compressor: %w", err)
		}
	}
	return f.Close()
}

// Extract unpacks the archive at src into the directory dest.
func Extract(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case strings.HasSuffix(src, ".tar.zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(src, ".tar"):
	default:
		return fmt.Errorf("unsupported archive format: %s", src)
	}

	cleanDest := filepath.Clean(dest)
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read tar header: %w", err)
		}

		// Zip Slip protection
		target := filepath.Join(dest, hdr.Name)
		if !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
			return fmt.Errorf("illegal file path in archive: %s", hdr.Name)
		}

		info := hdr.FileInfo()
		if info.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create parent directory for %s: %w", target, err)
		}

		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
		if err != nil {
			return fmt.Errorf("failed to create file %s: %w", target, err)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("failed to close file %s: %w", target, err)
		}
	}
}
