// Package bundle packs generated icons into a single ZIP archive,
// optionally AES-256 encrypted, for hand-off to the app project.
package bundle

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexmullins/zip"
)

// Common errors
var (
	ErrNoFiles          = errors.New("no files provided for bundling")
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidOutput    = errors.New("invalid output path")
	ErrWeakPassword     = errors.New("password must be at least 4 characters")
)

// ProgressCallback is called after each file is added to the archive
type ProgressCallback func(current, total int, archivePath string)

// Config holds bundling configuration
type Config struct {
	// OutputPath is the full path for the output ZIP file
	OutputPath string

	// Password encrypts every entry with AES-256 when non-empty
	Password string

	// OnProgress is called to report bundling progress
	OnProgress ProgressCallback
}

// FileEntry represents a file to be bundled
type FileEntry struct {
	// SourcePath is the path to the source file
	SourcePath string

	// ArchivePath is the path within the archive (base name of SourcePath if empty)
	ArchivePath string
}

// Result contains the result of a bundling operation
type Result struct {
	// OutputPath is the path to the created archive
	OutputPath string

	// Files is the number of files added to the archive
	Files int

	// Encrypted reports whether entries were password protected
	Encrypted bool

	// TotalSize is the total uncompressed size of bundled files
	TotalSize int64

	// ArchiveSize is the size of the resulting archive
	ArchiveSize int64

	// CompressionRatio is archive size / total size
	CompressionRatio float64
}

// Bundler writes ZIP archives
type Bundler struct {
	config Config
}

// NewBundler creates a Bundler with the given config
func NewBundler(config Config) (*Bundler, error) {
	if strings.TrimSpace(config.OutputPath) == "" {
		return nil, ErrInvalidOutput
	}
	if config.Password != "" {
		if err := ValidatePassword(config.Password); err != nil {
			return nil, err
		}
	}
	return &Bundler{config: config}, nil
}

// Bundle writes files into the configured archive. A failed run leaves no
// partial archive behind.
func (b *Bundler) Bundle(files []FileEntry) (*Result, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	var totalSize int64
	for _, file := range files {
		info, err := os.Stat(file.SourcePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, file.SourcePath)
			}
			if os.IsPermission(err) {
				return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, file.SourcePath)
			}
			return nil, fmt.Errorf("failed to stat file %s: %w", file.SourcePath, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, file.SourcePath)
		}
		totalSize += info.Size()
	}

	if err := os.MkdirAll(filepath.Dir(b.config.OutputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := b.writeArchive(files); err != nil {
		os.Remove(b.config.OutputPath)
		return nil, err
	}

	archiveInfo, err := os.Stat(b.config.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output archive: %w", err)
	}

	var ratio float64
	if totalSize > 0 {
		ratio = float64(archiveInfo.Size()) / float64(totalSize)
	}

	return &Result{
		OutputPath:       b.config.OutputPath,
		Files:            len(files),
		Encrypted:        b.config.Password != "",
		TotalSize:        totalSize,
		ArchiveSize:      archiveInfo.Size(),
		CompressionRatio: ratio,
	}, nil
}

func (b *Bundler) writeArchive(files []FileEntry) error {
	zipFile, err := os.Create(b.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	for i, file := range files {
		archivePath, err := b.addFile(zipWriter, file)
		if err != nil {
			zipWriter.Close()
			return err
		}
		if b.config.OnProgress != nil {
			b.config.OnProgress(i+1, len(files), archivePath)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// addFile copies one file into the archive and returns its entry name
func (b *Bundler) addFile(zipWriter *zip.Writer, file FileEntry) (string, error) {
	src, err := os.Open(file.SourcePath)
	if err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", ErrPermissionDenied, file.SourcePath)
		}
		return "", fmt.Errorf("failed to open file %s: %w", file.SourcePath, err)
	}
	defer src.Close()

	archivePath := file.ArchivePath
	if archivePath == "" {
		archivePath = filepath.Base(file.SourcePath)
	}
	// ZIP entries always use forward slashes
	archivePath = strings.ReplaceAll(archivePath, string(os.PathSeparator), "/")

	var w io.Writer
	if b.config.Password != "" {
		w, err = zipWriter.Encrypt(archivePath, b.config.Password)
	} else {
		w, err = zipWriter.Create(archivePath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create archive entry for %s: %w", file.SourcePath, err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return "", fmt.Errorf("failed to write %s to archive: %w", file.SourcePath, err)
	}
	return archivePath, nil
}

// GeneratePassword generates a random alphanumeric password that is easy to
// type and share. Lengths are clamped to 8..128.
func GeneratePassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	if length > 128 {
		length = 128
	}

	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	password := make([]byte, length)
	randomBytes := make([]byte, length)

	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	for i := 0; i < length; i++ {
		password[i] = charset[randomBytes[i]%byte(len(charset))]
	}

	return string(password), nil
}

// ValidatePassword checks if a password meets minimum requirements
func ValidatePassword(password string) error {
	if len(password) < 4 {
		return ErrWeakPassword
	}
	return nil
}
