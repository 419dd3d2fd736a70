/**
 * @description
 * This file provides the PostgreSQL implementation of the `Repository`
 * interface. It contains all the SQL needed for orders, senders,
 * beneficiaries, documents, users and the daily order-sequence counter.
 *
 * @notes
 * - Quote and calculation snapshots are persisted as explicit typed columns
 *   (quote_* / calc_*), not as an opaque serialized payload, so the stored
 *   breakdown can be reconciled field by field.
 * - The daily sequence uses INSERT .. ON CONFLICT DO UPDATE .. RETURNING so
 *   the read-increment-write is a single atomic statement; concurrent order
 *   creation cannot produce duplicate sequence numbers.
 *
 * @dependencies
 * - context, errors, time: Standard Go libraries.
 * - github.com/jackc/pgx/v5: The PostgreSQL driver.
 * - internal/domain: Domain models used for data transfer.
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduremit/remittance-service/internal/domain"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrSenderNotFound       = errors.New("sender not found")
	ErrBeneficiaryNotFound  = errors.New("beneficiary not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// PostgresRepository is a concrete implementation of the Repository interface for PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new instance of PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CreateOrganisationWithUser persists the organisation and its first user in a
// single transaction.
func (r *PostgresRepository) CreateOrganisationWithUser(ctx context.Context, org *domain.Organisation, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin registration tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO organisations (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, org.ID, org.Name, org.Email, org.Phone, org.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert organisation: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, organisation_id, name, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.OrganisationID, user.Name, user.Email, string(user.Role), user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return tx.Commit(ctx)
}

// FindUserByID retrieves a user by primary key.
func (r *PostgresRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	var user domain.User
	var role string
	query := `SELECT id, organisation_id, name, email, role, created_at FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.OrganisationID, &user.Name, &user.Email, &role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

// FindUserByEmail retrieves a user by email, case-insensitively.
func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	var role string
	query := `SELECT id, organisation_id, name, email, role, created_at FROM users WHERE lower(btrim(email)) = lower(btrim($1))`
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.OrganisationID, &user.Name, &user.Email, &role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

// NextOrderSequence atomically increments and returns today's order counter.
func (r *PostgresRepository) NextOrderSequence(ctx context.Context, day time.Time) (int, error) {
	var counter int
	query := `
		INSERT INTO order_sequences (day, counter)
		VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET counter = order_sequences.counter + 1
		RETURNING counter
	`
	if err := r.db.QueryRow(ctx, query, day.Format("2006-01-02")).Scan(&counter); err != nil {
		return 0, fmt.Errorf("failed to advance order sequence: %w", err)
	}
	return counter, nil
}

const orderColumns = `
	id, order_number, purpose, payer_relation, charge_bearer, forex_partner,
	margin, receiver_country, student_name, consultancy_name, ibr_rate,
	amount, currency, customer_rate, total_amount, status, education_loan, pan,
	sender_id, beneficiary_id,
	quote_amount, quote_currency, quote_ibr_rate, quote_margin,
	quote_customer_rate, quote_total_amount, quote_quoted_at,
	calc_inr_amount, calc_bank_fee, calc_gst, calc_tcs, calc_total_payable,
	created_by, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var status, chargeBearer string
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Purpose, &o.PayerRelation, &chargeBearer, &o.ForexPartner,
		&o.Margin, &o.ReceiverCountry, &o.StudentName, &o.ConsultancyName, &o.IBRRate,
		&o.Amount, &o.Currency, &o.CustomerRate, &o.TotalAmount, &status, &o.EducationLoan, &o.PAN,
		&o.SenderID, &o.BeneficiaryID,
		&o.Quote.Amount, &o.Quote.Currency, &o.Quote.IBRRate, &o.Quote.Margin,
		&o.Quote.CustomerRate, &o.Quote.TotalAmount, &o.Quote.QuotedAt,
		&o.Calculation.INRAmount, &o.Calculation.BankFee, &o.Calculation.GST,
		&o.Calculation.TCS, &o.Calculation.TotalPayable,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	o.ChargeBearer = domain.ChargeBearer(chargeBearer)
	return &o, nil
}

// CreateOrder inserts a fully computed order.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
		        $29, $30, $31, $32, $33, $34, $35)
	`
	_, err := r.db.Exec(ctx, query,
		o.ID, o.OrderNumber, o.Purpose, o.PayerRelation, string(o.ChargeBearer), o.ForexPartner,
		o.Margin, o.ReceiverCountry, o.StudentName, o.ConsultancyName, o.IBRRate,
		o.Amount, o.Currency, o.CustomerRate, o.TotalAmount, string(o.Status), o.EducationLoan, o.PAN,
		o.SenderID, o.BeneficiaryID,
		o.Quote.Amount, o.Quote.Currency, o.Quote.IBRRate, o.Quote.Margin,
		o.Quote.CustomerRate, o.Quote.TotalAmount, o.Quote.QuotedAt,
		o.Calculation.INRAmount, o.Calculation.BankFee, o.Calculation.GST,
		o.Calculation.TCS, o.Calculation.TotalPayable,
		o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateOrderNumber
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// FindOrderByID retrieves one order with its snapshots.
func (r *PostgresRepository) FindOrderByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// buildOrderListQuery assembles the filtered listing query with numbered
// placeholders. Limits outside (0, 200] fall back to 50.
func buildOrderListQuery(filter domain.OrderListFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		conditions = append(conditions, fmt.Sprintf("created_by = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

// ListOrders returns orders matching the filter, newest first.
func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderListFilter) ([]domain.Order, error) {
	query, args := buildOrderListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateOrder persists a mutated order. Snapshots are written back verbatim:
// the service layer is responsible for never mutating them on a live order.
func (r *PostgresRepository) UpdateOrder(ctx context.Context, o *domain.Order) error {
	query := `
		UPDATE orders SET
			purpose = $2, payer_relation = $3, charge_bearer = $4, forex_partner = $5,
			margin = $6, receiver_country = $7, student_name = $8, consultancy_name = $9,
			ibr_rate = $10, amount = $11, currency = $12, customer_rate = $13,
			total_amount = $14, status = $15, education_loan = $16, pan = $17,
			sender_id = $18, beneficiary_id = $19,
			quote_amount = $20, quote_currency = $21, quote_ibr_rate = $22,
			quote_margin = $23, quote_customer_rate = $24, quote_total_amount = $25,
			quote_quoted_at = $26,
			calc_inr_amount = $27, calc_bank_fee = $28, calc_gst = $29,
			calc_tcs = $30, calc_total_payable = $31,
			updated_at = $32
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		o.ID, o.Purpose, o.PayerRelation, string(o.ChargeBearer), o.ForexPartner,
		o.Margin, o.ReceiverCountry, o.StudentName, o.ConsultancyName,
		o.IBRRate, o.Amount, o.Currency, o.CustomerRate,
		o.TotalAmount, string(o.Status), o.EducationLoan, o.PAN,
		o.SenderID, o.BeneficiaryID,
		o.Quote.Amount, o.Quote.Currency, o.Quote.IBRRate,
		o.Quote.Margin, o.Quote.CustomerRate, o.Quote.TotalAmount,
		o.Quote.QuotedAt,
		o.Calculation.INRAmount, o.Calculation.BankFee, o.Calculation.GST,
		o.Calculation.TCS, o.Calculation.TotalPayable,
		o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// DeleteOrder hard-deletes an order. Only reachable through the admin-only path.
func (r *PostgresRepository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// CreateSender inserts a sender record.
func (r *PostgresRepository) CreateSender(ctx context.Context, s *domain.Sender) error {
	query := `
		INSERT INTO senders (id, name, email, alias_email, phone, address, nationality,
			payer_relation, payer_bank_name, payer_bank_account_number,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.AliasEmail, s.Phone, s.Address, s.Nationality,
		s.PayerRelation, s.PayerBankName, s.PayerBankAccNo,
		s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sender: %w", err)
	}
	return nil
}

// FindSenderByID retrieves a sender by primary key.
func (r *PostgresRepository) FindSenderByID(ctx context.Context, senderID uuid.UUID) (*domain.Sender, error) {
	var s domain.Sender
	query := `
		SELECT id, name, email, alias_email, phone, address, nationality,
		       payer_relation, payer_bank_name, payer_bank_account_number,
		       created_by, created_at, updated_at
		FROM senders WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, senderID).Scan(
		&s.ID, &s.Name, &s.Email, &s.AliasEmail, &s.Phone, &s.Address, &s.Nationality,
		&s.PayerRelation, &s.PayerBankName, &s.PayerBankAccNo,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrSenderNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListSendersByCreator lists senders, optionally restricted to one creator.
func (r *PostgresRepository) ListSendersByCreator(ctx context.Context, creatorID *uuid.UUID) ([]domain.Sender, error) {
	query := `
		SELECT id, name, email, alias_email, phone, address, nationality,
		       payer_relation, payer_bank_name, payer_bank_account_number,
		       created_by, created_at, updated_at
		FROM senders
	`
	var args []interface{}
	if creatorID != nil {
		query += " WHERE created_by = $1"
		args = append(args, *creatorID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list senders: %w", err)
	}
	defer rows.Close()

	var senders []domain.Sender
	for rows.Next() {
		var s domain.Sender
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.AliasEmail, &s.Phone, &s.Address, &s.Nationality,
			&s.PayerRelation, &s.PayerBankName, &s.PayerBankAccNo,
			&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sender row: %w", err)
		}
		senders = append(senders, s)
	}
	return senders, rows.Err()
}

// UpdateSender persists changes to a sender record.
func (r *PostgresRepository) UpdateSender(ctx context.Context, s *domain.Sender) error {
	query := `
		UPDATE senders SET
			name = $2, email = $3, alias_email = $4, phone = $5, address = $6,
			nationality = $7, payer_relation = $8, payer_bank_name = $9,
			payer_bank_account_number = $10, updated_at = $11
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.AliasEmail, s.Phone, s.Address,
		s.Nationality, s.PayerRelation, s.PayerBankName,
		s.PayerBankAccNo, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update sender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSenderNotFound
	}
	return nil
}

// CreateBeneficiary inserts a beneficiary record.
func (r *PostgresRepository) CreateBeneficiary(ctx context.Context, b *domain.Beneficiary) error {
	query := `
		INSERT INTO beneficiaries (id, name, country, address, bank_name, bank_address,
			account_number, swift_code, iban, sort_code, routing_number, bsb_code,
			transit_number, intermediary_bank, intermediary_swift, total_remittance,
			reference, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20)
	`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.Name, b.Country, b.Address, b.BankName, b.BankAddress,
		b.AccountNumber, b.SwiftCode, b.IBAN, b.SortCode, b.RoutingNumber, b.BSBCode,
		b.TransitNumber, b.IntermediaryBank, b.IntermediarySwift, b.TotalRemittance,
		b.Reference, b.CreatedBy, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert beneficiary: %w", err)
	}
	return nil
}

const beneficiaryColumns = `
	id, name, country, address, bank_name, bank_address, account_number,
	swift_code, iban, sort_code, routing_number, bsb_code, transit_number,
	intermediary_bank, intermediary_swift, total_remittance, reference,
	created_by, created_at, updated_at`

func scanBeneficiary(row pgx.Row) (*domain.Beneficiary, error) {
	var b domain.Beneficiary
	err := row.Scan(
		&b.ID, &b.Name, &b.Country, &b.Address, &b.BankName, &b.BankAddress, &b.AccountNumber,
		&b.SwiftCode, &b.IBAN, &b.SortCode, &b.RoutingNumber, &b.BSBCode, &b.TransitNumber,
		&b.IntermediaryBank, &b.IntermediarySwift, &b.TotalRemittance, &b.Reference,
		&b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindBeneficiaryByID retrieves a beneficiary by primary key.
func (r *PostgresRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID uuid.UUID) (*domain.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE id = $1`
	b, err := scanBeneficiary(r.db.QueryRow(ctx, query, beneficiaryID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrBeneficiaryNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListBeneficiariesByCreator lists beneficiaries, optionally restricted to one creator.
func (r *PostgresRepository) ListBeneficiariesByCreator(ctx context.Context, creatorID *uuid.UUID) ([]domain.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries`
	var args []interface{}
	if creatorID != nil {
		query += " WHERE created_by = $1"
		args = append(args, *creatorID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	defer rows.Close()

	var beneficiaries []domain.Beneficiary
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary row: %w", err)
		}
		beneficiaries = append(beneficiaries, *b)
	}
	return beneficiaries, rows.Err()
}

// UpdateBeneficiary persists changes to a beneficiary record.
func (r *PostgresRepository) UpdateBeneficiary(ctx context.Context, b *domain.Beneficiary) error {
	query := `
		UPDATE beneficiaries SET
			name = $2, country = $3, address = $4, bank_name = $5, bank_address = $6,
			account_number = $7, swift_code = $8, iban = $9, sort_code = $10,
			routing_number = $11, bsb_code = $12, transit_number = $13,
			intermediary_bank = $14, intermediary_swift = $15, total_remittance = $16,
			reference = $17, updated_at = $18
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		b.ID, b.Name, b.Country, b.Address, b.BankName, b.BankAddress,
		b.AccountNumber, b.SwiftCode, b.IBAN, b.SortCode,
		b.RoutingNumber, b.BSBCode, b.TransitNumber,
		b.IntermediaryBank, b.IntermediarySwift, b.TotalRemittance,
		b.Reference, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update beneficiary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBeneficiaryNotFound
	}
	return nil
}

// CreateDocument records an uploaded document against an order.
func (r *PostgresRepository) CreateDocument(ctx context.Context, d *domain.Document) error {
	query := `
		INSERT INTO documents (id, order_id, storage_key, file_name, content_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, d.ID, d.OrderID, d.StorageKey, d.FileName, d.ContentType, d.UploadedBy, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// FindDocumentByID retrieves a document record.
func (r *PostgresRepository) FindDocumentByID(ctx context.Context, docID uuid.UUID) (*domain.Document, error) {
	var d domain.Document
	query := `SELECT id, order_id, storage_key, file_name, content_type, uploaded_by, created_at FROM documents WHERE id = $1`
	err := r.db.QueryRow(ctx, query, docID).Scan(&d.ID, &d.OrderID, &d.StorageKey, &d.FileName, &d.ContentType, &d.UploadedBy, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListDocumentsByOrder lists the documents recorded against an order.
func (r *PostgresRepository) ListDocumentsByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Document, error) {
	query := `SELECT id, order_id, storage_key, file_name, content_type, uploaded_by, created_at FROM documents WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.OrderID, &d.StorageKey, &d.FileName, &d.ContentType, &d.UploadedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document record.
func (r *PostgresRepository) DeleteDocument(ctx context.Context, docID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, docID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
