package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"nexus-asset-manager/internal/ai"
	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/repository"
)

// maxImportWidth bounds the pixel width of imported raster images.
const maxImportWidth = 1600

const unsupportedFileReason = "please upload an image, PDF, HTML or text file"

type documentService struct {
	docRepo   repository.DocumentRepository
	assistant ai.Assistant
	now       func() time.Time
}

func NewDocumentService(docRepo repository.DocumentRepository, assistant ai.Assistant) DocumentService {
	return &documentService{docRepo: docRepo, assistant: assistant, now: time.Now}
}

func (s *documentService) ListDocuments(ctx context.Context) ([]domain.DocumentTemplate, error) {
	return s.docRepo.List(ctx)
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*domain.DocumentTemplate, error) {
	return s.docRepo.GetByID(ctx, id)
}

func (s *documentService) CreateDocument(ctx context.Context) (*domain.DocumentTemplate, error) {
	doc := domain.NewBlankDocument(s.now())
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Document created", "document_id", doc.ID)
	return doc, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id string, update DocumentUpdate) (*domain.DocumentTemplate, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		doc.Title = strings.TrimSpace(*update.Title)
		if doc.Title == "" {
			return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
		}
	}
	if update.Category != nil {
		if !update.Category.Valid() {
			return nil, &domain.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown value %q", *update.Category)}
		}
		doc.Category = *update.Category
	}
	if update.Content != nil {
		doc.Content = *update.Content
	}
	return s.save(ctx, doc)
}

func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Document deleted", "document_id", id)
	return nil
}

func (s *documentService) ImportFile(ctx context.Context, targetID, filename, contentType string, data []byte) (*domain.DocumentTemplate, error) {
	mediaType := normalizeMediaType(contentType, filename)

	var (
		content     domain.Markup
		replaceText bool
	)
	switch {
	case mediaType == "text/html" || mediaType == "text/plain":
		content = domain.Markup(data)
		replaceText = true
	case strings.HasPrefix(mediaType, "image/"):
		content = imageFragment(mediaType, data)
	case mediaType == "application/pdf":
		content = pdfFragment(filename, data)
	default:
		logger.WarnContext(ctx, "Rejected document import", "filename", filename, "content_type", contentType)
		return nil, fmt.Errorf("%w %q: %s", domain.ErrUnsupportedFile, mediaType, unsupportedFileReason)
	}

	if targetID == "" {
		now := s.now()
		doc := &domain.DocumentTemplate{
			ID:           domain.NewDocumentID(now),
			Title:        filename,
			Category:     domain.DocumentCategoryImported,
			LastModified: now.UTC(),
			Content:      content,
		}
		if err := s.docRepo.Create(ctx, doc); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "Document imported", "document_id", doc.ID, "content_type", mediaType)
		return doc, nil
	}

	doc, err := s.docRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if replaceText {
		doc.Content = content
	} else {
		doc.Content += content
	}
	return s.save(ctx, doc)
}

func (s *documentService) DraftDocument(ctx context.Context, id, instruction string) (*domain.DocumentTemplate, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	drafted, err := s.assistant.DraftDocument(ctx, instruction, doc.Content)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(drafted)) == "" {
		logger.WarnContext(ctx, "Assistant returned an empty draft, keeping content", "document_id", id)
		return doc, nil
	}
	doc.Content = drafted
	return s.save(ctx, doc)
}

func (s *documentService) PrintDocument(ctx context.Context, id string) ([]byte, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return RenderPrintable(doc)
}

func (s *documentService) save(ctx context.Context, doc *domain.DocumentTemplate) (*domain.DocumentTemplate, error) {
	doc.LastModified = s.now().UTC()
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Document updated", "document_id", doc.ID)
	return doc, nil
}

// normalizeMediaType strips parameters and falls back to the file extension.
func normalizeMediaType(contentType, filename string) string {
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

func dataURL(mediaType string, data []byte) string {
	return "data:" + html.EscapeString(mediaType) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

const imageFragmentFormat = `<img src="%s" style="max-width: 100%%; margin: 10px 0; display: block;" />`

const pdfFragmentFormat = `<div contenteditable="false" style="width: 100%%; height: 800px; margin: 20px 0; border: 1px solid #e2e8f0; border-radius: 8px; background-color: #f8fafc; overflow: hidden; position: relative;">
  <object data="%[1]s" type="application/pdf" width="100%%" height="100%%" style="display:block; width: 100%%; height: 100%%; min-height: 800px;">
    <div style="display: flex; flex-direction: column; align-items: center; justify-content: center; height: 100%%; color: #64748b; padding: 20px; text-align: center;">
      <p style="margin-bottom: 8px;">Unable to display PDF inline.</p>
      <a href="%[1]s" download="%[2]s" style="color: #2563eb; text-decoration: underline; font-weight: 500;">Download %[2]s</a>
    </div>
  </object>
</div>
<p><br/></p>`

// imageFragment embeds the image as a data URL. Decodable raster images wider
// than maxImportWidth are scaled down first; anything else is embedded as is.
func imageFragment(mediaType string, data []byte) domain.Markup {
	mediaType, data = downscaleImage(mediaType, data)
	return domain.Markup(fmt.Sprintf(imageFragmentFormat, dataURL(mediaType, data)))
}

func pdfFragment(filename string, data []byte) domain.Markup {
	return domain.Markup(fmt.Sprintf(pdfFragmentFormat, dataURL("application/pdf", data), html.EscapeString(filename)))
}

func downscaleImage(mediaType string, data []byte) (string, []byte) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil || img.Bounds().Dx() <= maxImportWidth {
		return mediaType, data
	}

	format, outType := imaging.PNG, "image/png"
	if mediaType == "image/jpeg" {
		format, outType = imaging.JPEG, "image/jpeg"
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.Resize(img, maxImportWidth, 0, imaging.Lanczos), format); err != nil {
		logger.Warn("Failed to re-encode imported image, embedding original", "error", err)
		return mediaType, data
	}
	return outType, buf.Bytes()
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.Title}}</title>
  <style>
    body { font-family: 'Times New Roman', serif; padding: 40px; line-height: 1.6; max-width: 800px; margin: 0 auto; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 1em; }
    td, th { border: 1px solid #ccc; padding: 8px; }
    hr { border: 0; border-top: 1px solid #ccc; margin: 20px 0; }
    img { max-width: 100%; }
    .pdf-wrapper { page-break-inside: avoid; }
    @media print {
      body { padding: 0; }
      @page { margin: 2cm; }
    }
  </style>
</head>
<body>
  {{.Content}}
  <script>
    window.onload = function() { window.print(); }
  </script>
</body>
</html>
`))

// RenderPrintable wraps a document in a standalone page that opens the print dialog on load.
func RenderPrintable(doc *domain.DocumentTemplate) ([]byte, error) {
	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, struct {
		Title   string
		Content template.HTML
	}{
		Title:   doc.Title,
		Content: template.HTML(doc.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render document %s: %w", doc.ID, err)
	}
	return buf.Bytes(), nil
}
