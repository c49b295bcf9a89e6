package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/quizplatform/apiv1/models"
)

const (
	CodeLength = 6
	Validity   = 10 * time.Minute
)

// Store persists reset codes. Find returns (nil, nil) when no code matches
// the (email, code) pair.
type Store interface {
	Find(ctx context.Context, email, code string) (*models.ResetCode, error)
	DeleteByEmail(ctx context.Context, email string) error
	Insert(ctx context.Context, rc *models.ResetCode) error
	MarkUsed(ctx context.Context, id primitive.ObjectID) error
}

// Sender delivers a freshly issued code to its email address.
type Sender interface {
	SendResetCode(email, code string) error
}

// Manager owns the reset-code lifecycle: a code is issued, checked zero or
// more times, and consumed exactly once. Issuing a new code for an email
// deletes any prior one, so only the most recent code ever validates.
type Manager struct {
	store  Store
	sender Sender
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(store Store, sender Sender, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

// Issue generates a random fixed-length numeric code for email, replaces any
// existing code for that email, persists it unused with a validity window,
// and hands it to the sender. The code is returned for internal composition
// only and must never be echoed to a client.
//
// The code is persisted before the delivery attempt, so a failed delivery
// leaves a valid code behind and a retried request replaces it.
func (m *Manager) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode(CodeLength)
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	if err := m.store.DeleteByEmail(ctx, email); err != nil {
		return "", fmt.Errorf("delete prior reset code: %w", err)
	}
	rc := &models.ResetCode{
		Email:     email,
		Code:      code,
		ExpiresAt: m.now().Add(Validity),
		Used:      false,
	}
	if err := m.store.Insert(ctx, rc); err != nil {
		return "", fmt.Errorf("persist reset code: %w", err)
	}
	if err := m.sender.SendResetCode(email, code); err != nil {
		m.logger.Warn("reset code delivery failed; persisted code remains valid",
			zap.String("email", email),
			zap.Error(err))
		return "", fmt.Errorf("send reset code: %w", err)
	}
	return code, nil
}

// Verify reports whether (email, code) names a stored code that is unused
// and unexpired. It never mutates the code, so callers may check repeatedly
// before committing to a password change.
func (m *Manager) Verify(ctx context.Context, email, code string) (bool, error) {
	rc, err := m.store.Find(ctx, email, code)
	if err != nil {
		return false, err
	}
	if rc == nil || rc.Used || m.now().After(rc.ExpiresAt) {
		return false, nil
	}
	return true, nil
}

// Consume marks the (email, code) pair as used. A missing pair is a no-op:
// this runs only after a successful password change.
func (m *Manager) Consume(ctx context.Context, email, code string) error {
	rc, err := m.store.Find(ctx, email, code)
	if err != nil {
		return err
	}
	if rc == nil {
		return nil
	}
	return m.store.MarkUsed(ctx, rc.ID)
}

func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = '0' + byte(n.Int64())
	}
	return string(digits), nil
}
