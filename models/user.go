package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values gate route access. A user starts as "pending" until an
// admin adds them to a team or a payment upgrades them.
const (
	RolePending  = "pending"
	RoleUser     = "user"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	AdminEmail  string             `bson:"adminEmail,omitempty" json:"adminEmail,omitempty"`
	Limit       int                `bson:"limit,omitempty" json:"limit,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	CompanyLogo string             `bson:"companyLogo,omitempty" json:"companyLogo,omitempty"`
	DateOfBirth string             `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
}
