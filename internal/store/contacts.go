// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/rherren/eventsite/internal/model"
)

const createContactQuery = `
INSERT INTO contacts (name, email, phone, service, event_date, message, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, name, email, phone, service, event_date, message, created_at`

// CreateContactParams holds the fields for CreateContact.
type CreateContactParams struct {
	Name      string
	Email     string
	Phone     string
	Service   string
	EventDate string
	Message   string
	CreatedAt time.Time
}

// CreateContact inserts a contact-form submission. Contacts are never
// updated or deleted by the application.
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (model.Contact, error) {
	row := q.db.QueryRowContext(ctx, createContactQuery,
		arg.Name, arg.Email, arg.Phone, arg.Service, arg.EventDate, arg.Message, arg.CreatedAt)
	return scanContact(row)
}

const listContactsQuery = `
SELECT id, name, email, phone, service, event_date, message, created_at
FROM contacts ORDER BY created_at DESC, id DESC`

// ListContacts returns all contact submissions, newest first.
func (q *Queries) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := q.db.QueryContext(ctx, listContactsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Service, &c.EventDate, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

const countContactsQuery = `SELECT COUNT(*) FROM contacts`

// CountContacts returns the total number of contact submissions.
func (q *Queries) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countContactsQuery).Scan(&count)
	return count, err
}

func scanContact(row rowScanner) (model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Service, &c.EventDate, &c.Message, &c.CreatedAt)
	return c, err
}
