package repository

import (
	"context"

	"vtcquote/internal/domain/client"
	"vtcquote/internal/domain/user"
	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/pgconv"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

var _ commands.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	const query = `
		INSERT INTO clients (id, driver_id, name, email, phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		c.ID(), c.DriverID(), c.Name(), emailToPgtype(c), c.Phone(), c.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	const query = `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, notes = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		c.ID(), c.Name(), emailToPgtype(c), c.Phone(), c.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, driverID, id uuid.UUID) error {
	const query = `DELETE FROM clients WHERE id = $1 AND driver_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, driverID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	const query = `
		SELECT id, driver_id, name, email, phone, notes, created_at, updated_at
		FROM clients
		WHERE id = $1`

	var (
		cid, driverID uuid.UUID
		name, phone   string
		notes         string
		email         pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cid, &driverID, &name, &email, &phone, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}

	var parsedEmail *user.Email
	if s := pgconv.StringPtrFromPgtype(email); s != nil {
		e, err := user.NewEmail(*s)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt client email", err)
		}
		parsedEmail = &e
	}

	return client.ReconstructClient(
		cid, driverID, name, parsedEmail, phone, notes,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func emailToPgtype(c *client.Client) pgtype.Text {
	if c.Email() == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(c.Email().Value())
}

// ClientReadStore serves the query side.
type ClientReadStore struct {
	pool *pgxpool.Pool
}

func NewClientReadStore(pool *pgxpool.Pool) *ClientReadStore {
	return &ClientReadStore{pool: pool}
}

var _ queries.ClientReadStore = (*ClientReadStore)(nil)

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, uuid.UUID, error) {
	const query = `
		SELECT id, driver_id, name, email, phone, notes, created_at, updated_at
		FROM clients
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	view, ownerID, err := scanClientView(row.Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, uuid.Nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find client by ID", err)
	}
	return view, ownerID, nil
}

func (r *ClientReadStore) FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*queries.ClientView, error) {
	const query = `
		SELECT id, driver_id, name, email, phone, notes, created_at, updated_at
		FROM clients
		WHERE driver_id = $1
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query, driverID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	var views []*queries.ClientView
	for rows.Next() {
		view, _, err := scanClientView(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan client row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client rows", err)
	}
	return views, nil
}

func scanClientView(scan func(dest ...any) error) (*queries.ClientView, uuid.UUID, error) {
	var (
		view      queries.ClientView
		driverID  uuid.UUID
		email     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := scan(&view.ID, &driverID, &view.Name, &email, &view.Phone, &view.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, uuid.Nil, err
	}

	view.Email = pgconv.StringPtrFromPgtype(email)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, driverID, nil
}
