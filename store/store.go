package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/programarreza/TaskNestle-Server/models"
)

// Store is the persistence surface the handlers run against. It is
// constructed once in main around the Mongo client and injected; no
// handler touches a collection directly. Find-one methods return
// (nil, nil) when no document matches, mirroring the null responses
// the HTTP surface promises.
type Store interface {
	// users
	InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUserByEmail(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error)
	ListEmployees(ctx context.Context, adminEmail string) ([]models.User, error)
	SetUserTeam(ctx context.Context, id primitive.ObjectID, role, adminEmail string) (*mongo.UpdateResult, error)
	ApplyPaymentUpgrade(ctx context.Context, email string, limitInc int) (*mongo.UpdateResult, error)

	// assets
	InsertAsset(ctx context.Context, asset models.Asset) (*mongo.InsertOneResult, error)
	ListAssets(ctx context.Context, filter AssetFilter, sort Sort) ([]models.Asset, error)
	UpdateAssetFields(ctx context.Context, id primitive.ObjectID, asset models.Asset) (*mongo.UpdateResult, error)
	DeleteAsset(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	LimitedStock(ctx context.Context, adminEmail string) ([]models.Asset, error)
	CountAssetsByType(ctx context.Context, adminEmail, assetType string) (int64, error)

	// asset requests
	FindRequest(ctx context.Context, name, assetType, email string) (*models.AssetRequest, error)
	FindRequestByID(ctx context.Context, id primitive.ObjectID) (*models.AssetRequest, error)
	InsertRequest(ctx context.Context, req models.AssetRequest) (*mongo.InsertOneResult, error)
	IncrementRequestCount(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]models.AssetRequest, error)
	UpdateRequestStatus(ctx context.Context, id primitive.ObjectID, status, approvedDate string) (*mongo.UpdateResult, error)
	TopRequested(ctx context.Context, adminEmail string) ([]models.AssetRequest, error)
	PendingRequests(ctx context.Context, adminEmail string) ([]models.AssetRequest, error)

	// custom asset requests
	InsertCustomRequest(ctx context.Context, req models.CustomAssetRequest) (*mongo.InsertOneResult, error)
	ListCustomRequests(ctx context.Context, email string) ([]models.CustomAssetRequest, error)
	FindCustomRequest(ctx context.Context, id primitive.ObjectID) (*models.CustomAssetRequest, error)
	UpdateCustomRequest(ctx context.Context, id primitive.ObjectID, req models.CustomAssetRequest) (*mongo.UpdateResult, error)

	// payments and packages
	InsertPayment(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
	ListPayments(ctx context.Context, email string) ([]models.Payment, error)
	ListPackages(ctx context.Context) ([]models.Package, error)
	FindPackage(ctx context.Context, id primitive.ObjectID) (*models.Package, error)
}
