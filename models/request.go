package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetRequest status lifecycle.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusReturned = "returned"
)

// AssetRequest tracks one distinct (name, type, email) request. Repeated
// identical requests bump RequestCount instead of inserting a new row.
type AssetRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Type         string             `bson:"type" json:"type"`
	Email        string             `bson:"email" json:"email"`
	UserName     string             `bson:"userName,omitempty" json:"userName,omitempty"`
	AdminEmail   string             `bson:"adminEmail,omitempty" json:"adminEmail,omitempty"`
	Status       string             `bson:"status" json:"status"`
	RequestCount int                `bson:"requestCount" json:"requestCount"`
	Note         string             `bson:"note,omitempty" json:"note,omitempty"`
	Date         time.Time          `bson:"date" json:"date"`
	ApprovedDate string             `bson:"approvedDate,omitempty" json:"approvedDate,omitempty"`
}

// CustomAssetRequest is a free-form request for an asset not in the
// catalog, stored in its own collection.
type CustomAssetRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
	AssetType  string             `bson:"assetType,omitempty" json:"assetType,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	AssetInfo  string             `bson:"assetInfo,omitempty" json:"assetInfo,omitempty"`
	Additional string             `bson:"additional,omitempty" json:"additional,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	Date       string             `bson:"date,omitempty" json:"date,omitempty"`
}
