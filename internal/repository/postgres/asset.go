package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/repository"
)

const assetColumns = `id, name, COALESCE(model, ''), COALESCE(serial_number, ''), type, status,
	COALESCE(to_char(purchase_date, 'YYYY-MM-DD'), ''), price, COALESCE(assigned_to, ''), COALESCE(notes, ''),
	COALESCE(to_char(renewal_date, 'YYYY-MM-DD'), ''), COALESCE(billing_cycle, '')`

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	a := &domain.Asset{}
	var assetType, status, cycle string
	err := row.Scan(&a.ID, &a.Name, &a.Model, &a.SerialNumber, &assetType, &status,
		&a.PurchaseDate, &a.Price, &a.AssignedTo, &a.Notes, &a.RenewalDate, &cycle)
	if err != nil {
		return nil, err
	}
	a.Type = domain.AssetType(assetType)
	a.Status = domain.AssetStatus(status)
	a.BillingCycle = domain.BillingCycle(cycle)
	return a, nil
}

func (r *assetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY created_at DESC`
	logger.DatabaseCall("list_assets", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("list_assets", 0, err)
		return nil, err
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("list_assets", int64(len(assets)), nil)
	return assets, nil
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	a, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *assetRepository) Upsert(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (id, name, model, serial_number, type, status, purchase_date, price, assigned_to, notes, renewal_date, billing_cycle)
	          VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, '')::date, NULLIF($12, ''))
	          ON CONFLICT (id) DO UPDATE SET
	          name = EXCLUDED.name, model = EXCLUDED.model, serial_number = EXCLUDED.serial_number, type = EXCLUDED.type,
	          status = EXCLUDED.status, purchase_date = EXCLUDED.purchase_date, price = EXCLUDED.price,
	          assigned_to = EXCLUDED.assigned_to, notes = EXCLUDED.notes, renewal_date = EXCLUDED.renewal_date,
	          billing_cycle = EXCLUDED.billing_cycle, updated_at = now()`
	logger.DatabaseCall("upsert_asset", query, "asset_id", a.ID)
	res, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Model, a.SerialNumber, string(a.Type), string(a.Status),
		a.PurchaseDate, a.Price, a.AssignedTo, a.Notes, a.RenewalDate, string(a.BillingCycle))
	if err != nil {
		logger.DatabaseResult("upsert_asset", 0, err)
		return err
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("upsert_asset", n, nil)
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM assets WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
