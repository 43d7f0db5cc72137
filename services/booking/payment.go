package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	userRepo "slotify/database/repository/user"
	"slotify/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler collects booking deposits.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler creates Stripe payment intents for card payments and
// records pay-at-venue bookings as pending invoices.
type StripePaymentHandler struct {
	logger   *zap.Logger
	userRepo userRepo.UserRepository
}

// NewPaymentHandler constructs a StripePaymentHandler.
func NewPaymentHandler(logger *zap.Logger, users userRepo.UserRepository) *StripePaymentHandler {
	return &StripePaymentHandler{
		logger:   logger,
		userRepo: users,
	}
}

// ProcessPayment creates the invoice for a booking charge.
func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "venue":
		return h.processVenuePayment(ctx, req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *StripePaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))), // minor units
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{"invoice_id": inv.InvoiceID, "user_id": req.UserID},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	inv.PaymentIntentID = pi.ID
	inv.ClientSecret = pi.ClientSecret
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	if err := h.notifyUser(ctx, req, inv); err != nil {
		h.logger.Error("user payment notification failed", zap.Error(err))
	}

	h.logger.Info("card payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID))
	return inv, nil
}

func (h *StripePaymentHandler) processVenuePayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Pay-at-venue stays pending until settled in person.
	inv.UpdatedAt = time.Now()

	if err := h.notifyUser(ctx, req, inv); err != nil {
		h.logger.Error("user payment notification failed", zap.Error(err))
	}

	h.logger.Info("pay-at-venue invoice recorded", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

func (h *StripePaymentHandler) notifyUser(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) error {
	notification := models.Notification{
		ID:      uuid.New().String(),
		Type:    "payment_confirmation",
		Message: fmt.Sprintf("Payment of %s %.2f via %s was %s.", inv.Currency, inv.Amount, inv.Method, inv.Status),
		Data: map[string]interface{}{
			"invoiceId": inv.InvoiceID,
			"amount":    inv.Amount,
			"method":    inv.Method,
			"status":    inv.Status,
		},
		CreatedAt: time.Now(),
	}
	return h.userRepo.AppendNotification(ctx, req.UserID, notification)
}

func validateRequest(req models.PaymentRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("missing user id")
	}
	if req.Amount < 0 {
		return fmt.Errorf("negative amount %.2f", req.Amount)
	}
	if req.Currency == "" {
		return fmt.Errorf("missing currency")
	}
	return nil
}
