// Package pdfdoc handles the PDF side of scanned invoices: validation,
// page counting, and extraction of the embedded page images that feed the
// OCR engine. Scanned invoices typically carry one full-page image per
// page and no extractable text.
//
// PDF processing is delegated to pdfcpu; this package never parses content
// streams itself.
package pdfdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validate checks that the file at path is a structurally valid PDF.
func Validate(path string) error {
	if err := api.ValidateFile(path, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("invalid PDF %s: %w", path, err)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages in %s: %w", path, err)
	}
	return n, nil
}

// pdfcpu names extracted images <base>_<page>_<resource>.<ext>.
var imageFilePattern = regexp.MustCompile(`_(\d+)_[^_]+\.\w+$`)

// ExtractPageImages extracts the embedded images of every page, in page
// order. The returned slices hold the raw encoded image data as stored in
// the PDF; callers normalize them for the OCR engine with NormalizePNG.
// A PDF with no embedded images yields an empty slice.
func ExtractPageImages(path string) ([][]byte, error) {
	outDir, err := os.MkdirTemp("", "fakturo-images-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractImagesFile(path, outDir, nil, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to extract images from %s: %w", path, err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted images: %w", err)
	}

	type pageImage struct {
		page int
		name string
	}
	var found []pageImage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := imageFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		page, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, pageImage{page: page, name: entry.Name()})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].page != found[j].page {
			return found[i].page < found[j].page
		}
		return found[i].name < found[j].name
	})

	images := make([][]byte, 0, len(found))
	for _, f := range found {
		data, err := os.ReadFile(filepath.Join(outDir, f.name))
		if err != nil {
			return nil, fmt.Errorf("failed to read extracted image %s: %w", f.name, err)
		}
		images = append(images, data)
	}
	return images, nil
}
