package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PublishDir copies every regular file from outputDir into docsDir,
// creating docsDir if needed. Subdirectories are skipped.
func PublishDir(outputDir, docsDir string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("output directory not found: %w", err)
	}
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return nil, err
	}

	var copied []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(outputDir, entry.Name())
		dst := filepath.Join(docsDir, entry.Name())
		if err := copyFile(src, dst); err != nil {
			return copied, err
		}
		copied = append(copied, dst)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
