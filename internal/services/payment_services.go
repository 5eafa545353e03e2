package services

import (
	"context"
	"regexp"
	"time"

	"github.com/rabgonzalez/GameSide/internal/model"
)

var (
	cardNumberRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)
	expDateRegex    = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)
	cvcRegex        = regexp.MustCompile(`^\d{3}$`)
)

// PaymentService validates card data syntactically and moves a CONFIRMED
// order to PAID. Nothing is ever charged.
type PaymentService struct {
	Orders OrderStore

	now func() time.Time
}

func NewPaymentService(orders OrderStore) *PaymentService {
	return &PaymentService{Orders: orders, now: time.Now}
}

// Pay runs the ownership and state guards, then the card checks in a fixed
// order: card number, expiry format, expiry in the past, CVC. On success the
// order becomes PAID and its key is visible to subsequent reads.
func (s *PaymentService) Pay(ctx context.Context, orderID int64, actor *model.User, cardNumber, expDate, cvc string) (model.OrderStatus, error) {
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if order == nil {
		return 0, ErrOrderNotFound
	}
	if order.UserID != actor.ID {
		return 0, ErrNotOrderOwner
	}
	if order.Status != model.StatusConfirmed {
		return 0, ErrOrderNotConfirmed
	}
	if err := s.validateCard(cardNumber, expDate, cvc); err != nil {
		return 0, err
	}
	moved, err := s.Orders.SetStatus(ctx, order.ID, model.StatusConfirmed, model.StatusPaid)
	if err != nil {
		return 0, err
	}
	if !moved {
		return 0, ErrOrderNotConfirmed
	}
	return model.StatusPaid, nil
}

func (s *PaymentService) validateCard(cardNumber, expDate, cvc string) error {
	if !cardNumberRegex.MatchString(cardNumber) {
		return ErrInvalidCardNumber
	}
	if !expDateRegex.MatchString(expDate) {
		return ErrInvalidExpDate
	}
	exp, err := time.Parse("01/2006", expDate)
	if err != nil {
		return ErrInvalidExpDate
	}
	now := s.now()
	if exp.Year() < now.Year() || (exp.Year() == now.Year() && exp.Month() < now.Month()) {
		return ErrCardExpired
	}
	if !cvcRegex.MatchString(cvc) {
		return ErrInvalidCVC
	}
	return nil
}
