/**
 * @description
 * This file contains the core business logic for the remittance-service. The
 * `Service` struct orchestrates the order lifecycle: quoting against the live
 * rate source, freezing tax/fee calculations, assigning the daily order number,
 * and validating every mutation through the state machine and policy layer.
 *
 * Key invariants enforced here:
 * - Order creation is strictly quote → calculation → order number → persist;
 *   nothing half-computed is ever written.
 * - Terminal orders (Completed/Cancelled) refuse financial mutation.
 * - Numeric input is parsed before it is written; unparsable values reject the
 *   update instead of corrupting stored amounts.
 *
 * @dependencies
 * - context, errors, fmt, log, time: Standard Go libraries.
 * - github.com/google/uuid, github.com/shopspring/decimal.
 * - internal/domain, internal/quote, internal/store: Models, pricing, data access.
 * - pkg/rabbitmq, pkg/storageclient, pkg/pdfclient: External collaborators.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eduremit/remittance-service/internal/domain"
	"github.com/eduremit/remittance-service/internal/quote"
	"github.com/eduremit/remittance-service/internal/store"
	"github.com/eduremit/remittance-service/pkg/pdfclient"
	"github.com/eduremit/remittance-service/pkg/rabbitmq"
	"github.com/eduremit/remittance-service/pkg/storageclient"
)

var (
	// ErrValidation marks a malformed or missing input field. Handlers map it
	// to 400 with the wrapped field detail.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidAmount marks a financial field that did not parse to a valid
	// number. The update carrying it is rejected outright.
	ErrInvalidAmount = errors.New("invalid numeric value")
	// ErrRateLimited is returned when the quote rate limit is exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// RateSource supplies live base→target exchange rates.
type RateSource interface {
	GetRate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

// StorageGateway is the presigned-upload object storage collaborator.
type StorageGateway interface {
	PresignUpload(ctx context.Context, fileName, contentType string) (*storageclient.PresignResponse, error)
	DeleteObject(ctx context.Context, key string) error
}

// RateLimiter gates hot endpoints with a shared fixed-window counter.
type RateLimiter interface {
	ConsumeRateLimit(ctx context.Context, scope, subject string, limit int, window time.Duration) (count int, retryAfterSeconds int, err error)
}

// PDFRenderer fills a named document template and returns the document bytes.
type PDFRenderer interface {
	Render(ctx context.Context, template string, fields map[string]string) ([]byte, error)
}

// settlementCurrency is the home currency every remittance settles in.
const settlementCurrency = "INR"

// Service provides the core business logic for remittance orders.
type Service struct {
	repo    store.Repository
	rates   RateSource
	storage StorageGateway
	events  rabbitmq.Publisher

	lockTTL          time.Duration
	defaultBankFee   decimal.Decimal
	quoteLimitPerMin int
	limiter          RateLimiter
	pdf              PDFRenderer

	// now is injected so rate-lock expiry and order numbering are testable.
	now func() time.Time
}

// NewService creates a new remittance service instance.
func NewService(repo store.Repository, rates RateSource, storage StorageGateway, events rabbitmq.Publisher, lockTTL time.Duration, defaultBankFee decimal.Decimal) *Service {
	return &Service{
		repo:           repo,
		rates:          rates,
		storage:        storage,
		events:         events,
		lockTTL:        lockTTL,
		defaultBankFee: defaultBankFee,
		now:            time.Now,
	}
}

// SetRateLimiter wires the shared quote rate limiter.
func (s *Service) SetRateLimiter(limiter RateLimiter, quoteLimitPerMinute int) {
	s.limiter = limiter
	s.quoteLimitPerMin = quoteLimitPerMinute
}

// SetPDFRenderer wires the document filling collaborator.
func (s *Service) SetPDFRenderer(pdf PDFRenderer) {
	s.pdf = pdf
}

// parseAmount parses one financial field, tagging failures with the field name.
func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q", ErrInvalidAmount, field, raw)
	}
	return d, nil
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

// PrepareQuote prices a prospective order: fetches the interbank rate and
// builds the snapshot pair without persisting anything. Subject is the actor
// id used for rate limiting.
func (s *Service) PrepareQuote(ctx context.Context, subject uuid.UUID, req domain.QuoteRequest) (domain.QuoteSnapshot, domain.CalculationSnapshot, error) {
	var empty domain.QuoteSnapshot
	var emptyCalc domain.CalculationSnapshot

	if s.limiter != nil && s.quoteLimitPerMin > 0 {
		count, retryAfter, err := s.limiter.ConsumeRateLimit(ctx, "quote", subject.String(), s.quoteLimitPerMin, time.Minute)
		if err != nil {
			log.Printf("level=warn component=app op=prepare_quote msg=\"rate limiter unavailable; allowing request\" err=%v", err)
		} else if count > s.quoteLimitPerMin {
			return empty, emptyCalc, fmt.Errorf("%w: retry in %ds", ErrRateLimited, retryAfter)
		}
	}

	for field, value := range map[string]string{"amount": req.Amount, "currency": req.Currency, "purpose": req.Purpose} {
		if err := requireField(field, value); err != nil {
			return empty, emptyCalc, err
		}
	}

	principal, err := parseAmount("amount", req.Amount)
	if err != nil {
		return empty, emptyCalc, err
	}
	margin := decimal.Zero
	if strings.TrimSpace(req.Margin) != "" {
		if margin, err = parseAmount("margin", req.Margin); err != nil {
			return empty, emptyCalc, err
		}
	}
	bankFee := s.defaultBankFee
	if strings.TrimSpace(req.BankFee) != "" {
		if bankFee, err = parseAmount("bank_fee", req.BankFee); err != nil {
			return empty, emptyCalc, err
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	ibrRate, err := s.rates.GetRate(ctx, currency, settlementCurrency)
	if err != nil {
		return empty, emptyCalc, fmt.Errorf("failed to fetch live rate: %w", err)
	}

	return quote.Build(principal, currency, ibrRate, margin, req.Purpose, bankFee, s.now().UTC())
}

// CreateOrder validates the request, quotes it, assigns the daily order number
// and persists the order. The initial status is Pending unless a valid status
// is explicitly supplied.
func (s *Service) CreateOrder(ctx context.Context, actor domain.Actor, req domain.CreateOrderRequest) (*domain.Order, error) {
	for field, value := range map[string]string{
		"student_name":     req.StudentName,
		"purpose":          req.Purpose,
		"amount":           req.Amount,
		"currency":         req.Currency,
		"receiver_country": req.ReceiverCountry,
	} {
		if err := requireField(field, value); err != nil {
			return nil, err
		}
	}

	status := domain.StatusPending
	if strings.TrimSpace(req.Status) != "" {
		parsed, err := domain.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	chargeBearer := domain.ChargeBearerOur
	switch strings.ToUpper(strings.TrimSpace(req.ChargeBearer)) {
	case "", string(domain.ChargeBearerOur):
	case string(domain.ChargeBearerBen):
		chargeBearer = domain.ChargeBearerBen
	default:
		return nil, fmt.Errorf("%w: charge_bearer must be OUR or BEN", ErrValidation)
	}

	principal, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	margin := decimal.Zero
	if strings.TrimSpace(req.Margin) != "" {
		if margin, err = parseAmount("margin", req.Margin); err != nil {
			return nil, err
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	ibrRate, err := s.rates.GetRate(ctx, currency, settlementCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live rate: %w", err)
	}

	now := s.now().UTC()
	quoteSnap, calcSnap, err := quote.Build(principal, currency, ibrRate, margin, req.Purpose, s.defaultBankFee, now)
	if err != nil {
		return nil, err
	}

	seq, err := s.repo.NextOrderSequence(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to assign order number: %w", err)
	}
	orderNumber := fmt.Sprintf("ORD%s%04d", now.Format("20060102"), seq)

	order := &domain.Order{
		ID:              uuid.New(),
		OrderNumber:     orderNumber,
		Purpose:         strings.TrimSpace(req.Purpose),
		PayerRelation:   strings.TrimSpace(req.PayerRelation),
		ChargeBearer:    chargeBearer,
		ForexPartner:    strings.TrimSpace(req.ForexPartner),
		Margin:          margin,
		ReceiverCountry: strings.TrimSpace(req.ReceiverCountry),
		StudentName:     strings.TrimSpace(req.StudentName),
		ConsultancyName: strings.TrimSpace(req.ConsultancyName),
		IBRRate:         ibrRate,
		Amount:          principal,
		Currency:        currency,
		CustomerRate:    quoteSnap.CustomerRate,
		TotalAmount:     quoteSnap.TotalAmount,
		Status:          status,
		EducationLoan:   req.EducationLoan,
		PAN:             req.PAN,
		SenderID:        req.SenderID,
		BeneficiaryID:   req.BeneficiaryID,
		Quote:           quoteSnap,
		Calculation:     calcSnap,
		CreatedBy:       actor.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.publishStatusEvent(ctx, order, actor)
	return order, nil
}

// GetOrder fetches one order, enforcing the ownership policy.
func (s *Service) GetOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, order.CreatedBy, domain.ActionView); err != nil {
		return nil, err
	}
	return order, nil
}

// quoteTemplate is the document template the render service fills for quote
// confirmations.
const quoteTemplate = "quote_confirmation"

// RenderQuotePDF produces the filled quote confirmation document for an order.
// The first download of a pending order moves it to QuoteDownloaded; later
// downloads reuse the frozen snapshots without touching the status.
func (s *Service) RenderQuotePDF(ctx context.Context, actor domain.Actor, orderID uuid.UUID) ([]byte, *domain.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, order.CreatedBy, domain.ActionView); err != nil {
		return nil, nil, err
	}
	if s.pdf == nil {
		return nil, nil, fmt.Errorf("%w: renderer not configured", pdfclient.ErrRenderFailed)
	}

	doc, err := s.pdf.Render(ctx, quoteTemplate, quoteFields(order))
	if err != nil {
		return nil, nil, err
	}

	if order.Status == domain.StatusPending {
		if err := order.Transition(domain.StatusQuoteDownloaded, actor, s.now(), s.lockTTL); err != nil {
			return nil, nil, err
		}
		if err := s.repo.UpdateOrder(ctx, order); err != nil {
			return nil, nil, err
		}
		s.publishStatusEvent(ctx, order, actor)
	}
	return doc, order, nil
}

// quoteFields flattens the frozen snapshots into the template field map.
func quoteFields(order *domain.Order) map[string]string {
	fields := map[string]string{
		"order_number":     order.OrderNumber,
		"student_name":     order.StudentName,
		"purpose":          order.Purpose,
		"receiver_country": order.ReceiverCountry,
		"currency":         order.Quote.Currency,
		"amount":           order.Quote.Amount.StringFixed(2),
		"customer_rate":    order.Quote.CustomerRate.StringFixed(4),
		"total_amount":     order.Quote.TotalAmount.StringFixed(2),
		"inr_amount":       order.Calculation.INRAmount.StringFixed(2),
		"bank_fee":         order.Calculation.BankFee.StringFixed(2),
		"gst":              order.Calculation.GST.StringFixed(2),
		"tcs":              order.Calculation.TCS.StringFixed(2),
		"total_payable":    order.Calculation.TotalPayable.StringFixed(2),
		"quoted_at":        order.Quote.QuotedAt.Format("02 Jan 2006 15:04 MST"),
	}
	if order.PAN != nil {
		fields["pan"] = *order.PAN
	}
	return fields
}

// ListOrders returns orders visible to the actor. Agents are pinned to their
// own orders regardless of the requested filter.
func (s *Service) ListOrders(ctx context.Context, actor domain.Actor, filter domain.OrderListFilter) ([]domain.Order, error) {
	if actor.Role == domain.RoleAgent {
		filter.CreatedBy = &actor.ID
	}
	return s.repo.ListOrders(ctx, filter)
}

// UpdateOrder applies a PATCH-style partial update, running any status change
// through the state machine and rejecting financial mutation on terminal
// orders.
func (s *Service) UpdateOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID, req domain.UpdateOrderRequest) (*domain.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, order.CreatedBy, domain.ActionMutate); err != nil {
		return nil, err
	}

	hasFinancial := req.Amount != nil || req.Margin != nil || req.IBRRate != nil ||
		req.CustomerRate != nil || req.TotalAmount != nil || req.BankFee != nil
	if order.Status.IsTerminal() && hasFinancial {
		return nil, domain.ErrTerminalState
	}

	// Parse every numeric field up front: a single bad value rejects the
	// whole update before anything is written.
	parsed := map[string]decimal.Decimal{}
	for field, raw := range map[string]*string{
		"amount":        req.Amount,
		"margin":        req.Margin,
		"ibr_rate":      req.IBRRate,
		"customer_rate": req.CustomerRate,
		"total_amount":  req.TotalAmount,
		"bank_fee":      req.BankFee,
	} {
		if raw == nil {
			continue
		}
		value, err := parseAmount(field, *raw)
		if err != nil {
			return nil, err
		}
		parsed[field] = value
	}

	now := s.now().UTC()
	previousStatus := order.Status

	if req.Status != nil {
		next, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if next == domain.StatusBlocked && previousStatus != domain.StatusBlocked {
			// Rate locking freezes the stored snapshot; refuse to lock a
			// breakdown that no longer reconciles.
			if err := quote.Reconcile(order.Calculation); err != nil {
				return nil, err
			}
		}
		if err := order.Transition(next, actor, now, s.lockTTL); err != nil {
			return nil, err
		}
	}

	if req.Purpose != nil {
		order.Purpose = strings.TrimSpace(*req.Purpose)
	}
	if req.PayerRelation != nil {
		order.PayerRelation = strings.TrimSpace(*req.PayerRelation)
	}
	if req.ChargeBearer != nil {
		switch strings.ToUpper(strings.TrimSpace(*req.ChargeBearer)) {
		case string(domain.ChargeBearerOur):
			order.ChargeBearer = domain.ChargeBearerOur
		case string(domain.ChargeBearerBen):
			order.ChargeBearer = domain.ChargeBearerBen
		default:
			return nil, fmt.Errorf("%w: charge_bearer must be OUR or BEN", ErrValidation)
		}
	}
	if req.ForexPartner != nil {
		order.ForexPartner = strings.TrimSpace(*req.ForexPartner)
	}
	if req.ReceiverCountry != nil {
		order.ReceiverCountry = strings.TrimSpace(*req.ReceiverCountry)
	}
	if req.StudentName != nil {
		order.StudentName = strings.TrimSpace(*req.StudentName)
	}
	if req.ConsultancyName != nil {
		order.ConsultancyName = strings.TrimSpace(*req.ConsultancyName)
	}
	if req.EducationLoan != nil {
		order.EducationLoan = *req.EducationLoan
	}
	if req.PAN != nil {
		order.PAN = req.PAN
	}
	if req.SenderID != nil {
		if _, err := s.repo.FindSenderByID(ctx, *req.SenderID); err != nil {
			return nil, err
		}
		order.SenderID = req.SenderID
	}
	if req.BeneficiaryID != nil {
		if _, err := s.repo.FindBeneficiaryByID(ctx, *req.BeneficiaryID); err != nil {
			return nil, err
		}
		order.BeneficiaryID = req.BeneficiaryID
	}

	if v, ok := parsed["amount"]; ok {
		order.Amount = v
	}
	if v, ok := parsed["margin"]; ok {
		order.Margin = v
	}
	if v, ok := parsed["ibr_rate"]; ok {
		order.IBRRate = v
	}
	if v, ok := parsed["customer_rate"]; ok {
		order.CustomerRate = v
	}
	if v, ok := parsed["total_amount"]; ok {
		order.TotalAmount = v
	}
	if v, ok := parsed["bank_fee"]; ok {
		order.Calculation.BankFee = v
	}

	order.UpdatedAt = now
	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	if order.Status != previousStatus {
		s.publishStatusEvent(ctx, order, actor)
	}
	return order, nil
}

// DeleteOrder hard-deletes an order. Admin only.
func (s *Service) DeleteOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) error {
	if err := domain.Authorize(actor.Role, actor.ID, uuid.Nil, domain.ActionDelete); err != nil {
		return err
	}
	return s.repo.DeleteOrder(ctx, orderID)
}

// RegisterAccount creates an organisation with its first user atomically and
// publishes a best-effort welcome email event. A dead broker never fails
// registration.
func (s *Service) RegisterAccount(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	for field, value := range map[string]string{
		"organisation_name": req.OrganisationName,
		"user_name":         req.UserName,
		"email":             req.Email,
	} {
		if err := requireField(field, value); err != nil {
			return nil, err
		}
	}

	role := domain.RoleAgent
	if strings.TrimSpace(req.Role) != "" {
		parsed, err := domain.ParseRole(req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
		}
		role = parsed
	}

	now := s.now().UTC()
	org := &domain.Organisation{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.OrganisationName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.OrganisationPhone),
		CreatedAt: now,
	}
	user := &domain.User{
		ID:             uuid.New(),
		OrganisationID: org.ID,
		Name:           strings.TrimSpace(req.UserName),
		Email:          strings.TrimSpace(req.Email),
		Role:           role,
		CreatedAt:      now,
	}

	if err := s.repo.CreateOrganisationWithUser(ctx, org, user); err != nil {
		return nil, err
	}

	if s.events != nil {
		event := rabbitmq.EmailEvent{
			To:        user.Email,
			Subject:   "Welcome to the remittance portal",
			HTML:      fmt.Sprintf("<p>Hi %s, your account for %s is ready.</p>", user.Name, org.Name),
			Timestamp: now,
		}
		if err := s.events.Publish(ctx, "remit.events", "email.welcome", event); err != nil {
			// Best-effort: registration already succeeded.
			log.Printf("level=warn component=app op=register msg=\"welcome email publish failed\" user_id=%s err=%v", user.ID, err)
		}
	}

	return user, nil
}

// CreateSender creates a standalone sender record.
func (s *Service) CreateSender(ctx context.Context, actor domain.Actor, req domain.CreateSenderRequest) (*domain.Sender, error) {
	for field, value := range map[string]string{"name": req.Name, "email": req.Email, "phone": req.Phone} {
		if err := requireField(field, value); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	sender := &domain.Sender{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		AliasEmail:     strings.TrimSpace(req.AliasEmail),
		Phone:          strings.TrimSpace(req.Phone),
		Address:        strings.TrimSpace(req.Address),
		Nationality:    strings.TrimSpace(req.Nationality),
		PayerRelation:  strings.TrimSpace(req.PayerRelation),
		PayerBankName:  req.PayerBankName,
		PayerBankAccNo: req.PayerBankAccNo,
		CreatedBy:      actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateSender(ctx, sender); err != nil {
		return nil, err
	}
	return sender, nil
}

// GetSender fetches one sender, enforcing ownership.
func (s *Service) GetSender(ctx context.Context, actor domain.Actor, senderID uuid.UUID) (*domain.Sender, error) {
	sender, err := s.repo.FindSenderByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, sender.CreatedBy, domain.ActionView); err != nil {
		return nil, err
	}
	return sender, nil
}

// ListSenders lists senders visible to the actor.
func (s *Service) ListSenders(ctx context.Context, actor domain.Actor) ([]domain.Sender, error) {
	if actor.Role == domain.RoleAgent {
		return s.repo.ListSendersByCreator(ctx, &actor.ID)
	}
	return s.repo.ListSendersByCreator(ctx, nil)
}

// UpdateSender applies a partial update to a sender, enforcing ownership.
func (s *Service) UpdateSender(ctx context.Context, actor domain.Actor, senderID uuid.UUID, req domain.UpdateSenderRequest) (*domain.Sender, error) {
	sender, err := s.repo.FindSenderByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, sender.CreatedBy, domain.ActionMutate); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := requireField("name", *req.Name); err != nil {
			return nil, err
		}
		sender.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if err := requireField("email", *req.Email); err != nil {
			return nil, err
		}
		sender.Email = strings.TrimSpace(*req.Email)
	}
	if req.AliasEmail != nil {
		sender.AliasEmail = strings.TrimSpace(*req.AliasEmail)
	}
	if req.Phone != nil {
		sender.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		sender.Address = strings.TrimSpace(*req.Address)
	}
	if req.Nationality != nil {
		sender.Nationality = strings.TrimSpace(*req.Nationality)
	}
	if req.PayerRelation != nil {
		sender.PayerRelation = strings.TrimSpace(*req.PayerRelation)
	}
	if req.PayerBankName != nil {
		sender.PayerBankName = req.PayerBankName
	}
	if req.PayerBankAccNo != nil {
		sender.PayerBankAccNo = req.PayerBankAccNo
	}

	sender.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateSender(ctx, sender); err != nil {
		return nil, err
	}
	return sender, nil
}

// CreateBeneficiary creates a standalone beneficiary record.
func (s *Service) CreateBeneficiary(ctx context.Context, actor domain.Actor, req domain.CreateBeneficiaryRequest) (*domain.Beneficiary, error) {
	for field, value := range map[string]string{
		"name":           req.Name,
		"country":        req.Country,
		"bank_name":      req.BankName,
		"account_number": req.AccountNumber,
		"swift_code":     req.SwiftCode,
	} {
		if err := requireField(field, value); err != nil {
			return nil, err
		}
	}

	totalRemittance := decimal.Zero
	if strings.TrimSpace(req.TotalRemittance) != "" {
		var err error
		if totalRemittance, err = parseAmount("total_remittance", req.TotalRemittance); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	beneficiary := &domain.Beneficiary{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(req.Name),
		Country:           strings.TrimSpace(req.Country),
		Address:           strings.TrimSpace(req.Address),
		BankName:          strings.TrimSpace(req.BankName),
		BankAddress:       strings.TrimSpace(req.BankAddress),
		AccountNumber:     strings.TrimSpace(req.AccountNumber),
		SwiftCode:         strings.ToUpper(strings.TrimSpace(req.SwiftCode)),
		IBAN:              req.IBAN,
		SortCode:          req.SortCode,
		RoutingNumber:     req.RoutingNumber,
		BSBCode:           req.BSBCode,
		TransitNumber:     req.TransitNumber,
		IntermediaryBank:  req.IntermediaryBank,
		IntermediarySwift: req.IntermediarySwift,
		TotalRemittance:   totalRemittance,
		Reference:         strings.TrimSpace(req.Reference),
		CreatedBy:         actor.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.CreateBeneficiary(ctx, beneficiary); err != nil {
		return nil, err
	}
	return beneficiary, nil
}

// GetBeneficiary fetches one beneficiary, enforcing ownership.
func (s *Service) GetBeneficiary(ctx context.Context, actor domain.Actor, beneficiaryID uuid.UUID) (*domain.Beneficiary, error) {
	beneficiary, err := s.repo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, beneficiary.CreatedBy, domain.ActionView); err != nil {
		return nil, err
	}
	return beneficiary, nil
}

// UpdateBeneficiary applies a partial update to a beneficiary, enforcing
// ownership and the numeric coercion rule on TotalRemittance.
func (s *Service) UpdateBeneficiary(ctx context.Context, actor domain.Actor, beneficiaryID uuid.UUID, req domain.UpdateBeneficiaryRequest) (*domain.Beneficiary, error) {
	beneficiary, err := s.repo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, beneficiary.CreatedBy, domain.ActionMutate); err != nil {
		return nil, err
	}

	if req.TotalRemittance != nil {
		value, err := parseAmount("total_remittance", *req.TotalRemittance)
		if err != nil {
			return nil, err
		}
		beneficiary.TotalRemittance = value
	}
	if req.Name != nil {
		if err := requireField("name", *req.Name); err != nil {
			return nil, err
		}
		beneficiary.Name = strings.TrimSpace(*req.Name)
	}
	if req.Country != nil {
		beneficiary.Country = strings.TrimSpace(*req.Country)
	}
	if req.Address != nil {
		beneficiary.Address = strings.TrimSpace(*req.Address)
	}
	if req.BankName != nil {
		beneficiary.BankName = strings.TrimSpace(*req.BankName)
	}
	if req.BankAddress != nil {
		beneficiary.BankAddress = strings.TrimSpace(*req.BankAddress)
	}
	if req.AccountNumber != nil {
		beneficiary.AccountNumber = strings.TrimSpace(*req.AccountNumber)
	}
	if req.SwiftCode != nil {
		beneficiary.SwiftCode = strings.ToUpper(strings.TrimSpace(*req.SwiftCode))
	}
	if req.IBAN != nil {
		beneficiary.IBAN = req.IBAN
	}
	if req.SortCode != nil {
		beneficiary.SortCode = req.SortCode
	}
	if req.RoutingNumber != nil {
		beneficiary.RoutingNumber = req.RoutingNumber
	}
	if req.BSBCode != nil {
		beneficiary.BSBCode = req.BSBCode
	}
	if req.TransitNumber != nil {
		beneficiary.TransitNumber = req.TransitNumber
	}
	if req.IntermediaryBank != nil {
		beneficiary.IntermediaryBank = req.IntermediaryBank
	}
	if req.IntermediarySwift != nil {
		beneficiary.IntermediarySwift = req.IntermediarySwift
	}
	if req.Reference != nil {
		beneficiary.Reference = strings.TrimSpace(*req.Reference)
	}

	beneficiary.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateBeneficiary(ctx, beneficiary); err != nil {
		return nil, err
	}
	return beneficiary, nil
}

// ListBeneficiaries lists beneficiaries visible to the actor.
func (s *Service) ListBeneficiaries(ctx context.Context, actor domain.Actor) ([]domain.Beneficiary, error) {
	if actor.Role == domain.RoleAgent {
		return s.repo.ListBeneficiariesByCreator(ctx, &actor.ID)
	}
	return s.repo.ListBeneficiariesByCreator(ctx, nil)
}

// DocumentUpload couples the presigned URL with the recorded document.
type DocumentUpload struct {
	Document  *domain.Document `json:"document"`
	UploadURL string           `json:"upload_url"`
}

// RequestDocumentUpload presigns an upload for one supporting document and
// records the resulting object key against the order.
func (s *Service) RequestDocumentUpload(ctx context.Context, actor domain.Actor, orderID uuid.UUID, fileName, contentType string) (*DocumentUpload, error) {
	if err := requireField("file_name", fileName); err != nil {
		return nil, err
	}

	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, order.CreatedBy, domain.ActionMutate); err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, domain.ErrTerminalState
	}

	presign, err := s.storage.PresignUpload(ctx, fileName, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	doc := &domain.Document{
		ID:          uuid.New(),
		OrderID:     order.ID,
		StorageKey:  presign.Key,
		FileName:    fileName,
		ContentType: contentType,
		UploadedBy:  actor.ID,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	return &DocumentUpload{Document: doc, UploadURL: presign.UploadURL}, nil
}

// DeleteDocument removes a document record and its stored object.
func (s *Service) DeleteDocument(ctx context.Context, actor domain.Actor, orderID, docID uuid.UUID) error {
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := domain.Authorize(actor.Role, actor.ID, order.CreatedBy, domain.ActionMutate); err != nil {
		return err
	}

	doc, err := s.repo.FindDocumentByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc.OrderID != order.ID {
		return store.ErrDocumentNotFound
	}

	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		return fmt.Errorf("failed to delete stored object: %w", err)
	}
	return s.repo.DeleteDocument(ctx, docID)
}

// ListDocuments lists the documents recorded against an order.
func (s *Service) ListDocuments(ctx context.Context, actor domain.Actor, orderID uuid.UUID) ([]domain.Document, error) {
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor.Role, actor.ID, order.CreatedBy, domain.ActionView); err != nil {
		return nil, err
	}
	return s.repo.ListDocumentsByOrder(ctx, orderID)
}

// publishStatusEvent emits a best-effort order status notification.
func (s *Service) publishStatusEvent(ctx context.Context, order *domain.Order, actor domain.Actor) {
	if s.events == nil {
		return
	}
	event := rabbitmq.OrderStatusEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		ActorID:     actor.ID,
		Timestamp:   s.now().UTC(),
	}
	routingKey := "order.status." + strings.ToLower(string(order.Status))
	if err := s.events.Publish(ctx, "remit.events", routingKey, event); err != nil {
		log.Printf("level=warn component=app op=publish_status msg=\"status event publish failed\" order_id=%s err=%v", order.ID, err)
	}
}
