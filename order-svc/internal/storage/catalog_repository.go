package storage

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-pos/order-svc/internal/domain"
)

// CatalogRepository stores menu items, add-ons, employees and dining tables.
type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO items (name, description, price, category, is_dish_of_day, image_url, observation_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		item.Name, item.Description, item.Price, string(item.Category), item.IsDishOfDay, item.ImageURL, item.ObservationInfo,
	).Scan(&item.ID)
	if err != nil {
		return persistErr("insert item", err)
	}
	return nil
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, price, category, is_dish_of_day, image_url, observation_info
		FROM items
		ORDER BY id`)
	if err != nil {
		return nil, persistErr("list items", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var (
			item     domain.MenuItem
			category string
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &category,
			&item.IsDishOfDay, &item.ImageURL, &item.ObservationInfo); err != nil {
			return nil, persistErr("scan item", err)
		}
		item.Category = domain.Category(category)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list items", err)
	}
	return items, nil
}

func (r *CatalogRepository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE items
		SET name = $1, description = $2, price = $3, category = $4, is_dish_of_day = $5, image_url = $6, observation_info = $7
		WHERE id = $8`,
		item.Name, item.Description, item.Price, string(item.Category), item.IsDishOfDay, item.ImageURL, item.ObservationInfo, item.ID)
	if err != nil {
		return persistErr("update item", err)
	}
	return expectAffected(res, "item", item.ID)
}

func (r *CatalogRepository) UpdateItemImage(ctx context.Context, id int, imageURL string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE items SET image_url = $1 WHERE id = $2`, imageURL, id)
	if err != nil {
		return persistErr("update item image", err)
	}
	return expectAffected(res, "item", id)
}

func (r *CatalogRepository) DeleteItem(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if IsForeignKeyErr(err) {
		return domain.NewValidationError("id", "item %d is referenced by existing orders", id)
	}
	if err != nil {
		return persistErr("delete item", err)
	}
	return expectAffected(res, "item", id)
}

func (r *CatalogRepository) CreateAddOn(ctx context.Context, addon *domain.AddOn) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO addons (name, price) VALUES ($1, $2) RETURNING id`,
		addon.Name, addon.Price,
	).Scan(&addon.ID)
	if err != nil {
		return persistErr("insert addon", err)
	}
	return nil
}

func (r *CatalogRepository) ListAddOns(ctx context.Context) ([]domain.AddOn, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, price FROM addons ORDER BY id`)
	if err != nil {
		return nil, persistErr("list addons", err)
	}
	defer rows.Close()

	addons := []domain.AddOn{}
	for rows.Next() {
		var a domain.AddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.Price); err != nil {
			return nil, persistErr("scan addon", err)
		}
		addons = append(addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list addons", err)
	}
	return addons, nil
}

func (r *CatalogRepository) UpdateAddOn(ctx context.Context, addon *domain.AddOn) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE addons SET name = $1, price = $2 WHERE id = $3`,
		addon.Name, addon.Price, addon.ID)
	if err != nil {
		return persistErr("update addon", err)
	}
	return expectAffected(res, "addon", addon.ID)
}

func (r *CatalogRepository) DeleteAddOn(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM addons WHERE id = $1`, id)
	if IsForeignKeyErr(err) {
		return domain.NewValidationError("id", "addon %d is referenced by existing orders", id)
	}
	if err != nil {
		return persistErr("delete addon", err)
	}
	return expectAffected(res, "addon", id)
}

func (r *CatalogRepository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO employees (name, role) VALUES ($1, $2) RETURNING id`,
		e.Name, e.Role,
	).Scan(&e.ID)
	if err != nil {
		return persistErr("insert employee", err)
	}
	return nil
}

func (r *CatalogRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, role FROM employees ORDER BY id`)
	if err != nil {
		return nil, persistErr("list employees", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role); err != nil {
			return nil, persistErr("scan employee", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list employees", err)
	}
	return employees, nil
}

// CreateTable registers a table number. Numbers are unique.
func (r *CatalogRepository) CreateTable(ctx context.Context, t *domain.DiningTable) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO tables (number) VALUES ($1) RETURNING id`, t.Number,
	).Scan(&t.ID)
	if IsDuplicateKeyErr(err) {
		return domain.NewValidationError("", "Table already exists")
	}
	if err != nil {
		return persistErr("insert table", err)
	}
	t.Status = domain.TableAvailable
	return nil
}

const tableColumns = `
	SELECT t.id, t.number,
		EXISTS (SELECT 1 FROM orders o WHERE o.table_id = t.id AND o.status <> 'paid')
	FROM tables t`

func (r *CatalogRepository) ListTables(ctx context.Context) ([]domain.DiningTable, error) {
	rows, err := r.DB.QueryContext(ctx, tableColumns+` ORDER BY t.number`)
	if err != nil {
		return nil, persistErr("list tables", err)
	}
	defer rows.Close()

	tables := []domain.DiningTable{}
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, persistErr("scan table", err)
		}
		tables = append(tables, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list tables", err)
	}
	return tables, nil
}

func (r *CatalogRepository) GetTable(ctx context.Context, id int) (*domain.DiningTable, error) {
	t, err := scanTable(r.DB.QueryRowContext(ctx, tableColumns+` WHERE t.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "table", ID: id}
	}
	if err != nil {
		return nil, persistErr("read table", err)
	}
	return t, nil
}

func scanTable(row rowScanner) (*domain.DiningTable, error) {
	var (
		t        domain.DiningTable
		occupied bool
	)
	if err := row.Scan(&t.ID, &t.Number, &occupied); err != nil {
		return nil, err
	}
	t.Status = domain.TableAvailable
	if occupied {
		t.Status = domain.TableOccupied
	}
	return &t, nil
}

func expectAffected(res sql.Result, resource string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return persistErr("rows affected", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}
