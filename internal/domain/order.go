/**
 * @description
 * This file defines the core domain models for the remittance-service. The Order
 * aggregate owns the frozen quote and calculation snapshots plus references to
 * its Sender and Beneficiary; it is only mutated through the state-machine
 * transition and the service's validated partial updates.
 *
 * @notes
 * - All monetary values use shopspring/decimal. Rates and taxes do not survive
 *   float64 round-tripping, and the stored snapshots are authoritative.
 * - Sender and Beneficiary are linked by reference (foreign key), never
 *   embedded: both can exist before an order points at them.
 */

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeBearer says who absorbs the foreign bank charges on a wire.
type ChargeBearer string

const (
	ChargeBearerOur ChargeBearer = "OUR"
	ChargeBearerBen ChargeBearer = "BEN"
)

// QuoteSnapshot is the frozen pricing of an order, captured when the quote is
// built and immutable afterwards. Recomputation is never automatic; the stored
// snapshot is what the customer was shown.
type QuoteSnapshot struct {
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	IBRRate      decimal.Decimal `json:"ibr_rate"`
	Margin       decimal.Decimal `json:"margin"`
	CustomerRate decimal.Decimal `json:"customer_rate"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	QuotedAt     time.Time       `json:"quoted_at"`
}

// CalculationSnapshot is the frozen tax/fee breakdown corresponding to a
// QuoteSnapshot. INRAmount is the principal converted at the interbank rate
// and is the base the taxes were computed on.
type CalculationSnapshot struct {
	INRAmount    decimal.Decimal `json:"inr_amount"`
	BankFee      decimal.Decimal `json:"bank_fee"`
	GST          decimal.Decimal `json:"gst"`
	TCS          decimal.Decimal `json:"tcs"`
	TotalPayable decimal.Decimal `json:"total_payable"`
}

// Order is the central entity: one international remittance instruction from
// creation through completion or cancellation.
type Order struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     string              `json:"order_number"`
	Purpose         string              `json:"purpose"`
	PayerRelation   string              `json:"payer_relation"`
	ChargeBearer    ChargeBearer        `json:"charge_bearer"`
	ForexPartner    string              `json:"forex_partner"`
	Margin          decimal.Decimal     `json:"margin"`
	ReceiverCountry string              `json:"receiver_country"`
	StudentName     string              `json:"student_name"`
	ConsultancyName string              `json:"consultancy_name"`
	IBRRate         decimal.Decimal     `json:"ibr_rate"`
	Amount          decimal.Decimal     `json:"amount"`
	Currency        string              `json:"currency"`
	CustomerRate    decimal.Decimal     `json:"customer_rate"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          Status              `json:"status"`
	EducationLoan   bool                `json:"education_loan"`
	PAN             *string             `json:"pan,omitempty"`
	SenderID        *uuid.UUID          `json:"sender_id,omitempty"`
	BeneficiaryID   *uuid.UUID          `json:"beneficiary_id,omitempty"`
	Quote           QuoteSnapshot       `json:"quote"`
	Calculation     CalculationSnapshot `json:"calculation"`
	CreatedBy       uuid.UUID           `json:"created_by"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListFilter narrows an order listing. CreatedBy is forced to the actor's
// own id for agent-tier callers before the repository ever sees the filter.
type OrderListFilter struct {
	CreatedBy *uuid.UUID
	From      *time.Time
	To        *time.Time
	Status    *Status
	Limit     int
	Offset    int
}

// Sender is the student/payer identity and KYC record. Bank fields are only
// populated when the payer is not the student.
type Sender struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AliasEmail     string    `json:"alias_email,omitempty"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Nationality    string    `json:"nationality"`
	PayerRelation  string    `json:"payer_relation"`
	PayerBankName  *string   `json:"payer_bank_name,omitempty"`
	PayerBankAccNo *string   `json:"payer_bank_account_number,omitempty"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Beneficiary is the receiving institution's bank record, with the
// country-specific routing fields international wires need.
type Beneficiary struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Country           string          `json:"country"`
	Address           string          `json:"address"`
	BankName          string          `json:"bank_name"`
	BankAddress       string          `json:"bank_address,omitempty"`
	AccountNumber     string          `json:"account_number"`
	SwiftCode         string          `json:"swift_code"`
	IBAN              *string         `json:"iban,omitempty"`
	SortCode          *string         `json:"sort_code,omitempty"`
	RoutingNumber     *string         `json:"routing_number,omitempty"`
	BSBCode           *string         `json:"bsb_code,omitempty"`
	TransitNumber     *string         `json:"transit_number,omitempty"`
	IntermediaryBank  *string         `json:"intermediary_bank,omitempty"`
	IntermediarySwift *string         `json:"intermediary_swift,omitempty"`
	TotalRemittance   decimal.Decimal `json:"total_remittance"`
	Reference         string          `json:"reference,omitempty"`
	CreatedBy         uuid.UUID       `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Document records one uploaded KYC/supporting file stored under an object key.
type Document struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	StorageKey  string    `json:"storage_key"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is a portal account: a consultancy agent or internal staff member.
type User struct {
	ID             uuid.UUID `json:"id"`
	OrganisationID uuid.UUID `json:"organisation_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// Organisation is the consultancy a user belongs to. Organisation and its
// first user are created atomically at registration.
type Organisation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
