/**
 * @description
 * This file defines the `Repository` interface: the contract for all data
 * access the remittance-service needs. The application layer depends on this
 * interface only, so the business logic can be exercised in tests with stub
 * repositories and the PostgreSQL implementation stays swappable.
 *
 * @dependencies
 * - context, time: Standard Go libraries.
 * - github.com/google/uuid: For UUID handling.
 * - internal/domain: For the service's domain models.
 */

package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eduremit/remittance-service/internal/domain"
)

// Repository defines the set of methods for interacting with the database.
type Repository interface {
	// Organisation and user methods.
	// CreateOrganisationWithUser persists both records in one transaction:
	// registration must never leave an organisation without its first user.
	CreateOrganisationWithUser(ctx context.Context, org *domain.Organisation, user *domain.User) error
	FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Order methods.
	// NextOrderSequence atomically increments and returns the daily counter
	// for the given day. Concurrent creations on the same day must never
	// observe the same value.
	NextOrderSequence(ctx context.Context, day time.Time) (int, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	FindOrderByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderListFilter) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error

	// Sender methods.
	CreateSender(ctx context.Context, sender *domain.Sender) error
	FindSenderByID(ctx context.Context, senderID uuid.UUID) (*domain.Sender, error)
	ListSendersByCreator(ctx context.Context, creatorID *uuid.UUID) ([]domain.Sender, error)
	UpdateSender(ctx context.Context, sender *domain.Sender) error

	// Beneficiary methods.
	CreateBeneficiary(ctx context.Context, beneficiary *domain.Beneficiary) error
	FindBeneficiaryByID(ctx context.Context, beneficiaryID uuid.UUID) (*domain.Beneficiary, error)
	ListBeneficiariesByCreator(ctx context.Context, creatorID *uuid.UUID) ([]domain.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, beneficiary *domain.Beneficiary) error

	// Document methods.
	CreateDocument(ctx context.Context, doc *domain.Document) error
	FindDocumentByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error)
	ListDocumentsByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Document, error)
	DeleteDocument(ctx context.Context, docID uuid.UUID) error
}
