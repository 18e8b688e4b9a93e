package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/priya-raman/shopsense/internal/customer"
)

const customerColumns = `id, name, age, gender, interests, purchase_history,
       sentiment_score, engagement_score, social_media_activity, created_at, updated_at`

// UpsertCustomer inserts a customer or replaces the existing row with the
// same name. The snapshot keeps one row per customer; re-ingesting a file
// updates profiles in place.
func (db *DB) UpsertCustomer(ctx context.Context, c *Customer) error {
	now := time.Now()

	existing, err := db.GetCustomerByName(ctx, c.Name)
	if err != nil {
		return err
	}

	if existing != nil {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		c.UpdatedAt = now
		_, err := db.ExecContext(ctx, `
			UPDATE customers SET
				age = ?, gender = ?, interests = ?, purchase_history = ?,
				sentiment_score = ?, engagement_score = ?, social_media_activity = ?, updated_at = ?
			WHERE id = ?
		`,
			c.Age, c.Gender, c.Interests, c.PurchaseHistory,
			c.SentimentScore, c.EngagementScore, c.SocialActivity, c.UpdatedAt, c.ID,
		)
		return err
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err = db.ExecContext(ctx, `
		INSERT INTO customers (
			id, name, age, gender, interests, purchase_history,
			sentiment_score, engagement_score, social_media_activity, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID, c.Name, c.Age, c.Gender, c.Interests, c.PurchaseHistory,
		c.SentimentScore, c.EngagementScore, c.SocialActivity, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// GetCustomerByName retrieves a customer by name (case-insensitive),
// returning nil when no row matches.
func (db *DB) GetCustomerByName(ctx context.Context, name string) (*Customer, error) {
	c := &Customer{}
	err := db.QueryRowContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers WHERE LOWER(name) = LOWER(?)
	`, name).Scan(
		&c.ID, &c.Name, &c.Age, &c.Gender, &c.Interests, &c.PurchaseHistory,
		&c.SentimentScore, &c.EngagementScore, &c.SocialActivity, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCustomers retrieves customers with optional filters, in snapshot
// order (oldest first).
func (db *DB) ListCustomers(ctx context.Context, opts ListOptions) ([]Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE 1=1
	`
	args := []interface{}{}

	if opts.NameContains != "" {
		query += ` AND LOWER(name) LIKE LOWER(?)`
		args = append(args, "%"+opts.NameContains+"%")
	}

	query += ` ORDER BY created_at, id`

	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Age, &c.Gender, &c.Interests, &c.PurchaseHistory,
			&c.SentimentScore, &c.EngagementScore, &c.SocialActivity, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// DeleteCustomer removes a customer by name
func (db *DB) DeleteCustomer(ctx context.Context, name string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM customers WHERE LOWER(name) = LOWER(?)`, name)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("customer not found: %s", name)
	}
	return nil
}

// GetStats returns aggregate statistics over the stored population. AtRisk
// counts customers with a nonzero risk score (very negative sentiment or
// low engagement).
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	s := &Stats{}
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(sentiment_score), 0),
		       COALESCE(AVG(engagement_score), 0),
		       COALESCE(SUM(CASE WHEN social_media_activity = 'High' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN sentiment_score < -0.5 OR engagement_score < 30 THEN 1 ELSE 0 END), 0)
		FROM customers
	`).Scan(&s.TotalCustomers, &s.AvgSentiment, &s.AvgEngagement, &s.HighSocial, &s.AtRisk)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// LoadPopulation materializes the full stored snapshot as an ordered
// population. Row order is the stable snapshot order, so a similarity
// matrix built from the result stays aligned with it.
func (db *DB) LoadPopulation(ctx context.Context) (*customer.Population, error) {
	rows, err := db.ListCustomers(ctx, ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	records := make([]customer.Record, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return customer.NewPopulation(records)
}
