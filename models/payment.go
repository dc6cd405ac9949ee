package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only ledger entry. Recording one also upgrades
// the paying user's role and credit limit (two separate writes).
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	Limit         int                `bson:"limit" json:"limit"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}

// Package is a static catalog entry; this service only reads them.
type Package struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Price   float64            `bson:"price" json:"price"`
	Limit   int                `bson:"limit" json:"limit"`
	Members string             `bson:"members,omitempty" json:"members,omitempty"`
}
