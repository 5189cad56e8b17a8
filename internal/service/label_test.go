package service

import (
	"context"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/labels"
	"nexus-asset-manager/internal/storage"
)

func newLabelFixture(t *testing.T) (*MockAssetRepo, *storage.LocalStorage, LabelService) {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{Dir: t.TempDir(), BaseURL: "http://localhost:3000"})
	require.NoError(t, err)
	repo := new(MockAssetRepo)
	svc := NewLabelService(repo, map[LabelFormat]*labels.Printer{
		LabelFormatHTML: labels.NewPrinter(labels.NewFileOpener(store, "labels")),
	})
	return repo, store, svc
}

func TestLabelService_PrintLabels(t *testing.T) {
	ctx := context.Background()
	seed := domain.SampleAssets()

	t.Run("Success keeps requested order", func(t *testing.T) {
		repo, store, svc := newLabelFixture(t)
		repo.On("GetByID", ctx, "AST-003").Return(&seed[2], nil)
		repo.On("GetByID", ctx, "AST-001").Return(&seed[0], nil)

		location, err := svc.PrintLabels(ctx, []string{"AST-003", "AST-001"}, "")
		require.NoError(t, err)

		u, err := url.Parse(location)
		require.NoError(t, err)
		key := u.Query().Get("key")
		assert.True(t, strings.HasPrefix(key, "labels/"))

		rc, err := store.ReadFile(ctx, key)
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		html := string(body)
		assert.Less(t, strings.Index(html, "AST-003"), strings.Index(html, "AST-001"))
	})

	t.Run("Empty selection", func(t *testing.T) {
		_, _, svc := newLabelFixture(t)
		_, err := svc.PrintLabels(ctx, nil, LabelFormatHTML)
		assert.ErrorIs(t, err, domain.ErrEmptyQueue)
	})

	t.Run("Unknown asset", func(t *testing.T) {
		repo, _, svc := newLabelFixture(t)
		repo.On("GetByID", ctx, "AST-404").Return(nil, domain.ErrNotFound)
		_, err := svc.PrintLabels(ctx, []string{"AST-404"}, LabelFormatHTML)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Unsupported format", func(t *testing.T) {
		_, _, svc := newLabelFixture(t)
		_, err := svc.PrintLabels(ctx, []string{"AST-001"}, LabelFormatPDF)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestLabelService_SingleLabel(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := newLabelFixture(t)
	seed := domain.SampleAssets()
	repo.On("GetByID", ctx, "AST-002").Return(&seed[1], nil)

	html, err := svc.SingleLabel(ctx, "AST-002")
	require.NoError(t, err)
	assert.Contains(t, string(html), "Asset Label - AST-002")
	assert.Contains(t, string(html), "<svg")
}
