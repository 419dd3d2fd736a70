/**
 * @description
 * Request DTOs for the API layer. Financial fields arrive as strings because
 * the portal posts form values, and are only written to an order after they parse
 * to a valid decimal. An unparsable numeric field rejects the update; it is
 * never silently written as zero or null.
 */

package domain

import "github.com/google/uuid"

// CreateOrderRequest is the DTO for creating a new remittance order.
type CreateOrderRequest struct {
	Purpose         string     `json:"purpose"`
	PayerRelation   string     `json:"payer_relation"`
	ChargeBearer    string     `json:"charge_bearer"`
	ForexPartner    string     `json:"forex_partner"`
	Margin          string     `json:"margin"`
	ReceiverCountry string     `json:"receiver_country"`
	StudentName     string     `json:"student_name"`
	ConsultancyName string     `json:"consultancy_name"`
	Amount          string     `json:"amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status,omitempty"`
	EducationLoan   bool       `json:"education_loan,omitempty"`
	PAN             *string    `json:"pan,omitempty"`
	SenderID        *uuid.UUID `json:"sender_id,omitempty"`
	BeneficiaryID   *uuid.UUID `json:"beneficiary_id,omitempty"`
}

// UpdateOrderRequest is the DTO for PATCH-style partial updates. Nil fields
// are left untouched.
type UpdateOrderRequest struct {
	Purpose         *string    `json:"purpose,omitempty"`
	PayerRelation   *string    `json:"payer_relation,omitempty"`
	ChargeBearer    *string    `json:"charge_bearer,omitempty"`
	ForexPartner    *string    `json:"forex_partner,omitempty"`
	Margin          *string    `json:"margin,omitempty"`
	ReceiverCountry *string    `json:"receiver_country,omitempty"`
	StudentName     *string    `json:"student_name,omitempty"`
	ConsultancyName *string    `json:"consultancy_name,omitempty"`
	IBRRate         *string    `json:"ibr_rate,omitempty"`
	Amount          *string    `json:"amount,omitempty"`
	CustomerRate    *string    `json:"customer_rate,omitempty"`
	TotalAmount     *string    `json:"total_amount,omitempty"`
	BankFee         *string    `json:"bank_fee,omitempty"`
	Status          *string    `json:"status,omitempty"`
	EducationLoan   *bool      `json:"education_loan,omitempty"`
	PAN             *string    `json:"pan,omitempty"`
	SenderID        *uuid.UUID `json:"sender_id,omitempty"`
	BeneficiaryID   *uuid.UUID `json:"beneficiary_id,omitempty"`
}

// QuoteRequest prices a prospective order without persisting anything.
type QuoteRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Margin   string `json:"margin"`
	Purpose  string `json:"purpose"`
	BankFee  string `json:"bank_fee,omitempty"`
}

// RegisterRequest creates a consultancy organisation together with its first
// portal user.
type RegisterRequest struct {
	OrganisationName  string `json:"organisation_name"`
	OrganisationPhone string `json:"organisation_phone"`
	UserName          string `json:"user_name"`
	Email             string `json:"email"`
	Role              string `json:"role,omitempty"`
}

// CreateSenderRequest is the DTO for creating a sender record.
type CreateSenderRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	AliasEmail     string  `json:"alias_email,omitempty"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Nationality    string  `json:"nationality"`
	PayerRelation  string  `json:"payer_relation"`
	PayerBankName  *string `json:"payer_bank_name,omitempty"`
	PayerBankAccNo *string `json:"payer_bank_account_number,omitempty"`
}

// UpdateSenderRequest is the DTO for partial sender updates. Nil fields are
// left untouched.
type UpdateSenderRequest struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	AliasEmail     *string `json:"alias_email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	PayerRelation  *string `json:"payer_relation,omitempty"`
	PayerBankName  *string `json:"payer_bank_name,omitempty"`
	PayerBankAccNo *string `json:"payer_bank_account_number,omitempty"`
}

// CreateBeneficiaryRequest is the DTO for creating a beneficiary record.
type CreateBeneficiaryRequest struct {
	Name              string  `json:"name"`
	Country           string  `json:"country"`
	Address           string  `json:"address"`
	BankName          string  `json:"bank_name"`
	BankAddress       string  `json:"bank_address,omitempty"`
	AccountNumber     string  `json:"account_number"`
	SwiftCode         string  `json:"swift_code"`
	IBAN              *string `json:"iban,omitempty"`
	SortCode          *string `json:"sort_code,omitempty"`
	RoutingNumber     *string `json:"routing_number,omitempty"`
	BSBCode           *string `json:"bsb_code,omitempty"`
	TransitNumber     *string `json:"transit_number,omitempty"`
	IntermediaryBank  *string `json:"intermediary_bank,omitempty"`
	IntermediarySwift *string `json:"intermediary_swift,omitempty"`
	TotalRemittance   string  `json:"total_remittance,omitempty"`
	Reference         string  `json:"reference,omitempty"`
}

// UpdateBeneficiaryRequest is the DTO for partial beneficiary updates. Nil
// fields are left untouched; TotalRemittance follows the numeric coercion
// rule like every other financial field.
type UpdateBeneficiaryRequest struct {
	Name              *string `json:"name,omitempty"`
	Country           *string `json:"country,omitempty"`
	Address           *string `json:"address,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAddress       *string `json:"bank_address,omitempty"`
	AccountNumber     *string `json:"account_number,omitempty"`
	SwiftCode         *string `json:"swift_code,omitempty"`
	IBAN              *string `json:"iban,omitempty"`
	SortCode          *string `json:"sort_code,omitempty"`
	RoutingNumber     *string `json:"routing_number,omitempty"`
	BSBCode           *string `json:"bsb_code,omitempty"`
	TransitNumber     *string `json:"transit_number,omitempty"`
	IntermediaryBank  *string `json:"intermediary_bank,omitempty"`
	IntermediarySwift *string `json:"intermediary_swift,omitempty"`
	TotalRemittance   *string `json:"total_remittance,omitempty"`
	Reference         *string `json:"reference,omitempty"`
}
