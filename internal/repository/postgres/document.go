package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) List(ctx context.Context) ([]domain.DocumentTemplate, error) {
	query := `SELECT id, title, category, last_modified, content FROM documents ORDER BY last_modified DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []domain.DocumentTemplate{}
	for rows.Next() {
		var d domain.DocumentTemplate
		var category, content string
		if err := rows.Scan(&d.ID, &d.Title, &category, &d.LastModified, &content); err != nil {
			return nil, err
		}
		d.Category = domain.DocumentCategory(category)
		d.Content = domain.Markup(content)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*domain.DocumentTemplate, error) {
	d := &domain.DocumentTemplate{}
	var category, content string
	query := `SELECT id, title, category, last_modified, content FROM documents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Title, &category, &d.LastModified, &content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.Category = domain.DocumentCategory(category)
	d.Content = domain.Markup(content)
	return d, nil
}

func (r *documentRepository) Create(ctx context.Context, d *domain.DocumentTemplate) error {
	query := `INSERT INTO documents (id, title, category, content, last_modified) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Title, string(d.Category), string(d.Content), d.LastModified)
	return err
}

func (r *documentRepository) Update(ctx context.Context, d *domain.DocumentTemplate) error {
	query := `UPDATE documents SET title = $1, category = $2, content = $3, last_modified = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, d.Title, string(d.Category), string(d.Content), d.LastModified, d.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
