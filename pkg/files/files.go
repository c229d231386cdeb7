package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pluqqy/quill/pkg/models"
)

const (
	QuillDir      = ".quill"
	DocumentsDir  = "documents"
	ArchiveDir    = "archive"
	ExportsDir    = "exports"
	SettingsFile  = "settings.yaml"
	DocumentExt   = ".md"
	maxNameLength = 100
)

// InitProjectStructure creates the .quill folder layout and a default
// settings file if none exists
func InitProjectStructure() error {
	dirs := []string{
		QuillDir,
		filepath.Join(QuillDir, DocumentsDir),
		filepath.Join(QuillDir, ArchiveDir),
		filepath.Join(QuillDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(filepath.Join(QuillDir, SettingsFile)); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether the current directory holds a .quill folder
func ProjectExists() bool {
	info, err := os.Stat(QuillDir)
	return err == nil && info.IsDir()
}

// ValidateDocumentName rejects names that would escape the documents folder
func ValidateDocumentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("document name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("document name cannot exceed %d characters", maxNameLength)
	}
	invalidChars := []string{"/", "\\", "..", "~", "$", "`"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("document name contains invalid character: %s", char)
		}
	}
	if Slugify(strings.TrimSuffix(name, DocumentExt)) == "" {
		return fmt.Errorf("document name %q needs at least one letter, digit, '-' or '_'", name)
	}
	return nil
}

// Slugify turns a display name into a file name stem
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")

	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}

// DocumentPath returns the on-disk path of the named document
func DocumentPath(name string) string {
	return filepath.Join(QuillDir, DocumentsDir, Slugify(strings.TrimSuffix(name, DocumentExt))+DocumentExt)
}

// ReadDocument loads a document by name
func ReadDocument(name string) (*models.Document, error) {
	if err := ValidateDocumentName(name); err != nil {
		return nil, err
	}
	return readDocumentFile(DocumentPath(name))
}

func readDocumentFile(path string) (*models.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", filepath.Base(path), err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat document %s: %w", filepath.Base(path), err)
	}

	meta, content, err := ExtractFrontmatter(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", filepath.Base(path), err)
	}

	name := meta.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), DocumentExt)
	}

	return &models.Document{
		Name:     name,
		Path:     path,
		Tags:     meta.Tags,
		Content:  content,
		Modified: info.ModTime(),
	}, nil
}

// WriteDocument writes content under name, preserving name and tags in the
// frontmatter
func WriteDocument(name, content string, tags []string) error {
	if err := ValidateDocumentName(name); err != nil {
		return err
	}

	normalized, err := models.NormalizeTags(tags)
	if err != nil {
		return fmt.Errorf("invalid tags: %w", err)
	}

	raw, err := ComposeFrontmatter(models.DocumentMeta{Name: name, Tags: normalized}, content)
	if err != nil {
		return err
	}

	path := DocumentPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for document: %w", err)
	}
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", name, err)
	}
	return nil
}

// ListDocuments returns all active documents, most recently modified first
func ListDocuments() ([]*models.Document, error) {
	return listDocumentsIn(filepath.Join(QuillDir, DocumentsDir))
}

// ListArchivedDocuments returns all archived documents
func ListArchivedDocuments() ([]*models.Document, error) {
	return listDocumentsIn(filepath.Join(QuillDir, ArchiveDir))
}

func listDocumentsIn(dir string) ([]*models.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.Document{}, nil
		}
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var docs []*models.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), DocumentExt) {
			continue
		}
		doc, err := readDocumentFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Modified.Equal(docs[j].Modified) {
			return docs[i].Name < docs[j].Name
		}
		return docs[i].Modified.After(docs[j].Modified)
	})
	return docs, nil
}

// ArchiveDocument moves a document into the archive folder
func ArchiveDocument(name string) error {
	if err := ValidateDocumentName(name); err != nil {
		return err
	}
	src := DocumentPath(name)
	dst := filepath.Join(QuillDir, ArchiveDir, filepath.Base(src))
	return moveFile(src, dst)
}

// RestoreDocument moves an archived document back into documents
func RestoreDocument(name string) error {
	if err := ValidateDocumentName(name); err != nil {
		return err
	}
	dst := DocumentPath(name)
	src := filepath.Join(QuillDir, ArchiveDir, filepath.Base(dst))
	return moveFile(src, dst)
}

func moveFile(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("document not found: %s", strings.TrimSuffix(filepath.Base(src), DocumentExt))
	}
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("document already exists: %s", strings.TrimSuffix(filepath.Base(dst), DocumentExt))
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move document: %w", err)
	}
	now := time.Now()
	return os.Chtimes(dst, now, now)
}

// WriteFile writes content to an arbitrary path (for exports)
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// DeleteDocument removes a document, looking in the archive when archived
// is set
func DeleteDocument(name string, archived bool) error {
	if err := ValidateDocumentName(name); err != nil {
		return err
	}
	path := DocumentPath(name)
	if archived {
		path = filepath.Join(QuillDir, ArchiveDir, filepath.Base(path))
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document not found: %s", name)
		}
		return fmt.Errorf("failed to delete document %s: %w", name, err)
	}
	return nil
}

// DocumentExists reports whether an active document with this name exists
func DocumentExists(name string) bool {
	_, err := os.Stat(DocumentPath(name))
	return err == nil
}
