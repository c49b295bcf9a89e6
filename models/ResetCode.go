package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResetCode is a single-use password reset code tied to an email address.
// At most one unconsumed code exists per email: issuing a new one deletes
// any prior code first.
type ResetCode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Code      string             `bson:"code"`
	ExpiresAt time.Time          `bson:"expiresAt"`
	Used      bool               `bson:"used"`
}
