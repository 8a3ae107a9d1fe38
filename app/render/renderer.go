package render

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/google/uuid"

	"github.com/essa0044/ImageCategorizer/app/assets"
)

// ErrUnsupportedType is returned for extensions outside the accepted set
// (.pdf, .png, .jpg, .jpeg).
var ErrUnsupportedType = errors.New("unsupported file type")

// Renderer converts uploaded documents into temporary raster assets.
type Renderer struct {
	store *assets.Store
}

func NewRenderer(store *assets.Store) *Renderer {
	return &Renderer{store: store}
}

// Render stores the uploaded bytes as exactly one temp asset and returns
// its generated name. PDFs are rendered first page only to PNG at the
// document's default resolution; raster uploads are stored unchanged. The
// name is a fresh UUID, never derived from the client filename.
func (r *Renderer) Render(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	base := uuid.New().String()

	switch ext {
	case ".pdf":
		tempName := base + ".png"
		if err := r.renderPDF(data, r.store.TempPath(tempName)); err != nil {
			return "", err
		}
		log.Printf("Converted '%s' to temporary '%s'", filename, tempName)
		return tempName, nil
	case ".png", ".jpg", ".jpeg":
		tempName := base + ext
		if err := os.WriteFile(r.store.TempPath(tempName), data, 0o644); err != nil {
			return "", fmt.Errorf("failed to save uploaded image: %w", err)
		}
		log.Printf("Saved image '%s' as temporary '%s'", filename, tempName)
		return tempName, nil
	default:
		return "", ErrUnsupportedType
	}
}

func (r *Renderer) renderPDF(data []byte, outputPath string) error {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return fmt.Errorf("failed to render PDF page: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("failed to encode page as PNG: %w", err)
	}
	return out.Close()
}
