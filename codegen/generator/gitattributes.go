package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/psanford/memfs"
)

const GitAttributesFile = ".gitattributes"

// MarkGenerated adds a linguist-generated entry for fileName to the
// .gitattributes of outDir, keeping any existing entries.
func MarkGenerated(mfs *memfs.FS, fileName, outDir string) error {
	entry := []byte(fmt.Sprintf("/%s linguist-generated=true\n", fileName))

	existing, err := os.ReadFile(filepath.Join(outDir, GitAttributesFile))
	switch {
	case err == nil:
		if bytes.Contains(existing, []byte("/"+fileName+" ")) {
			return nil
		}
		if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
			existing = append(existing, '\n')
		}
		entry = append(existing, entry...)
	case !os.IsNotExist(err):
		return fmt.Errorf("read %s: %w", GitAttributesFile, err)
	}

	return mfs.WriteFile(GitAttributesFile, entry, 0o600)
}
