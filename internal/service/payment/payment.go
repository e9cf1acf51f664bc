package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"garmentflow/internal/entities"
	"garmentflow/internal/service/order"
)

const defaultSessionTTL = 30 * time.Minute

type Service struct {
	repository      Repository
	orderRepository OrderRepository
	provider        CheckoutProvider
	outbox          Outbox
	txManager       TxManager
	currency        string
}

func New(
	repository Repository,
	orderRepository OrderRepository,
	provider CheckoutProvider,
	outbox Outbox,
	txManager TxManager,
	currency string,
) *Service {
	return &Service{
		repository:      repository,
		orderRepository: orderRepository,
		provider:        provider,
		outbox:          outbox,
		txManager:       txManager,
		currency:        strings.ToLower(currency),
	}
}

// CreateCheckoutSession заводит сессию у провайдера и сохраняет ее как
// ожидающее намерение оплаты.
func (s *Service) CreateCheckoutSession(ctx context.Context, actor entities.Actor, orderID string) (*entities.CheckoutSession, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrValidation)
	}

	var session *entities.CheckoutSession
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orderRepository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return translateOrderError(err)
		}

		if err := authorizeCheckout(actor, o); err != nil {
			return err
		}
		if err := checkPayable(o); err != nil {
			return err
		}

		// у заказа одна живая сессия: повторный запрос получает ее же
		existing, err := s.repository.GetOpenSessionByOrder(ctx, o.ID, time.Now().UTC())
		switch {
		case err == nil:
			session = existing
			return nil
		case !errors.Is(err, ErrSessionNotFound):
			return fmt.Errorf("get open checkout session: %w", err)
		}

		checkout, err := s.provider.CreateSession(ctx, entities.CheckoutRequest{
			OrderID:       o.ID,
			ProductTitle:  o.ProductTitle,
			UnitAmount:    o.UnitPrice,
			Quantity:      o.Quantity,
			Currency:      s.currency,
			CustomerEmail: o.BuyerEmail,
		})
		if err != nil {
			return fmt.Errorf("create provider session: %w", err)
		}

		expiresAt := checkout.ExpiresAt
		if expiresAt.IsZero() {
			expiresAt = time.Now().UTC().Add(defaultSessionTTL)
		}

		session, err = s.repository.CreateSession(ctx, entities.CheckoutSession{
			ID:        checkout.SessionID,
			OrderID:   o.ID,
			BuyerID:   o.BuyerID,
			Amount:    o.TotalPrice,
			Currency:  s.currency,
			URL:       checkout.URL,
			Status:    entities.CheckoutOpen,
			ExpiresAt: expiresAt,
		})
		if err != nil {
			return fmt.Errorf("save checkout session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Reconcile подтверждает оплату по сессии. Повторный вызов для уже
// подтвержденной сессии возвращает сохраненное подтверждение.
func (s *Service) Reconcile(ctx context.Context, actor entities.Actor, sessionID string) (*entities.PaymentConfirmation, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrValidation)
	}

	session, err := s.repository.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: unknown session %s", ErrPaymentVerificationFailed, sessionID)
		}
		return nil, fmt.Errorf("get checkout session: %w", err)
	}

	if err := authorizeReconcile(actor, session); err != nil {
		return nil, err
	}

	confirmation, err := s.findConfirmation(ctx, sessionID)
	if err != nil || confirmation != nil {
		return confirmation, err
	}

	status, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: provider does not know session %s", ErrPaymentVerificationFailed, sessionID)
		}
		return nil, fmt.Errorf("get provider session: %w", err)
	}
	if err := verify(session, status); err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.repository.GetSessionForUpdate(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("lock checkout session: %w", err)
		}

		// параллельный вызов мог подтвердить сессию, пока мы ходили к провайдеру
		confirmation, err = s.findConfirmation(ctx, sessionID)
		if err != nil || confirmation != nil {
			return err
		}

		current, err := s.orderRepository.GetByIDForUpdate(ctx, locked.OrderID)
		if err != nil {
			return translateOrderError(err)
		}
		if current.PaymentStatus == entities.PaymentPaid {
			// заказ уже оплачен через другую сессию, второе подтверждение не пишем
			confirmation, err = s.repository.GetConfirmationByOrder(ctx, current.ID)
			if err != nil {
				return fmt.Errorf("%w: order %s is already paid: %w", ErrAlreadyConfirmed, current.ID, err)
			}
			return nil
		}

		paidOrder, err := s.orderRepository.MarkPaid(ctx, locked.OrderID)
		if err != nil {
			return translateOrderError(err)
		}

		confirmation, err = s.repository.CreateConfirmation(ctx, entities.PaymentConfirmation{
			TransactionID: status.TransactionID,
			OrderID:       locked.OrderID,
			SessionID:     locked.ID,
			Amount:        locked.Amount,
			Currency:      locked.Currency,
			PaidAt:        time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("save payment confirmation: %w", err)
		}

		if err := s.repository.CompleteSession(ctx, locked.ID); err != nil {
			return fmt.Errorf("complete checkout session: %w", err)
		}

		event := entities.OrderEvent{
			Type:          entities.EventOrderPaymentConfirmed,
			OrderID:       paidOrder.ID,
			BuyerID:       paidOrder.BuyerID,
			ManagerID:     paidOrder.ManagerID,
			Status:        paidOrder.Status,
			PaymentStatus: paidOrder.PaymentStatus,
			OccurredAt:    confirmation.PaidAt,
		}
		if err := s.outbox.Add(ctx, event); err != nil {
			return fmt.Errorf("add %s event: %w", event.Type, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmation, nil
}

// ExpireSessions закрывает открытые сессии с истекшим сроком.
func (s *Service) ExpireSessions(ctx context.Context) (int64, error) {
	expired, err := s.repository.ExpireSessions(ctx, time.Now().UTC())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire sessions timed out: %w", err)
		}
		return 0, fmt.Errorf("expire sessions: %w", err)
	}
	return expired, nil
}

func (s *Service) findConfirmation(ctx context.Context, sessionID string) (*entities.PaymentConfirmation, error) {
	confirmation, err := s.repository.GetConfirmationBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrConfirmationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment confirmation: %w", err)
	}
	return confirmation, nil
}

func verify(session *entities.CheckoutSession, status *entities.ProviderSessionStatus) error {
	if !status.Paid {
		return fmt.Errorf("%w: session %s is not paid", ErrPaymentVerificationFailed, session.ID)
	}
	if status.TransactionID == "" {
		return fmt.Errorf("%w: provider returned no transaction id", ErrPaymentVerificationFailed)
	}
	if !status.AmountTotal.IsZero() && !status.AmountTotal.Equal(session.Amount) {
		return fmt.Errorf("%w: paid %s, expected %s",
			ErrPaymentVerificationFailed, status.AmountTotal.StringFixed(2), session.Amount.StringFixed(2))
	}
	return nil
}

func translateOrderError(err error) error {
	if errors.Is(err, order.ErrOrderNotFound) {
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	return fmt.Errorf("lock order: %w", err)
}
