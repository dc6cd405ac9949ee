package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset types as stored; filters match these values case-insensitively.
const (
	TypeReturnable    = "Returnable"
	TypeNonReturnable = "Non-returnable"
)

// Asset is an inventory item owned by an admin. Quantity is decremented
// by the approval workflow, not enforced atomically here.
type Asset struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
	Type     string             `bson:"type" json:"type"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Info     string             `bson:"info,omitempty" json:"info,omitempty"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"`
}
