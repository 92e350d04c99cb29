package client

import (
	"errors"
	"strings"
	"time"

	"vtcquote/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName = errors.New("client name cannot be empty")
	ErrInvalidEmail    = errors.New("invalid client email")
)

// Client is a person a driver quotes trips for. Owned by one driver.
type Client struct {
	id        uuid.UUID
	driverID  uuid.UUID
	name      string
	email     *user.Email
	phone     string
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(driverID uuid.UUID, name string, email *string, phone, notes string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyClientName
	}

	var parsedEmail *user.Email
	if email != nil && strings.TrimSpace(*email) != "" {
		e, err := user.NewEmail(*email)
		if err != nil {
			return nil, ErrInvalidEmail
		}
		parsedEmail = &e
	}

	return &Client{
		id:       uuid.New(),
		driverID: driverID,
		name:     name,
		email:    parsedEmail,
		phone:    strings.TrimSpace(phone),
		notes:    notes,
	}, nil
}

func ReconstructClient(
	id, driverID uuid.UUID,
	name string,
	email *user.Email,
	phone, notes string,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:        id,
		driverID:  driverID,
		name:      name,
		email:     email,
		phone:     phone,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Client) UpdateDetails(name string, email *string, phone, notes string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyClientName
	}

	var parsedEmail *user.Email
	if email != nil && strings.TrimSpace(*email) != "" {
		e, err := user.NewEmail(*email)
		if err != nil {
			return ErrInvalidEmail
		}
		parsedEmail = &e
	}

	c.name = name
	c.email = parsedEmail
	c.phone = strings.TrimSpace(phone)
	c.notes = notes
	return nil
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) DriverID() uuid.UUID  { return c.driverID }
func (c *Client) Name() string         { return c.name }
func (c *Client) Email() *user.Email   { return c.email }
func (c *Client) Phone() string        { return c.phone }
func (c *Client) Notes() string        { return c.notes }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }
