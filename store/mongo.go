package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/programarreza/TaskNestle-Server/models"
)

type mongoStore struct {
	users          *mongo.Collection
	assets         *mongo.Collection
	assetRequests  *mongo.Collection
	customRequests *mongo.Collection
	payments       *mongo.Collection
	packages       *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) Store {
	db := client.Database(dbName)
	return &mongoStore{
		users:          db.Collection("users"),
		assets:         db.Collection("assets"),
		assetRequests:  db.Collection("assetRequests"),
		customRequests: db.Collection("customRequest"),
		payments:       db.Collection("payments"),
		packages:       db.Collection("packages"),
	}
}

// ==================== users ====================

func (s *mongoStore) InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.users.InsertOne(ctx, user)
}

func (s *mongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoStore) UpsertUserByEmail(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error) {
	user.ID = primitive.NilObjectID
	user.Email = email
	opts := options.Update().SetUpsert(true)
	return s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": user}, opts)
}

func (s *mongoStore) ListEmployees(ctx context.Context, adminEmail string) ([]models.User, error) {
	filter := bson.M{"adminEmail": adminEmail, "role": models.RoleEmployee}
	cursor, err := s.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoStore) SetUserTeam(ctx context.Context, id primitive.ObjectID, role, adminEmail string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": role, "adminEmail": adminEmail}}
	return s.users.UpdateOne(ctx, bson.M{"_id": id}, update)
}

// ApplyPaymentUpgrade runs regardless of whether the paid tier matched a
// known package; the caller decides the increment.
func (s *mongoStore) ApplyPaymentUpgrade(ctx context.Context, email string, limitInc int) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{"role": models.RoleAdmin},
		"$inc": bson.M{"limit": limitInc},
	}
	return s.users.UpdateOne(ctx, bson.M{"email": email}, update)
}

// ==================== assets ====================

func (s *mongoStore) InsertAsset(ctx context.Context, asset models.Asset) (*mongo.InsertOneResult, error) {
	return s.assets.InsertOne(ctx, asset)
}

func (s *mongoStore) ListAssets(ctx context.Context, filter AssetFilter, sort Sort) ([]models.Asset, error) {
	opts := options.Find()
	if sortDoc := sort.Build(); sortDoc != nil {
		opts.SetSort(sortDoc)
	}

	cursor, err := s.assets.Find(ctx, filter.Build(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assets := []models.Asset{}
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *mongoStore) UpdateAssetFields(ctx context.Context, id primitive.ObjectID, asset models.Asset) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"name":     asset.Name,
		"price":    asset.Price,
		"type":     asset.Type,
		"quantity": asset.Quantity,
		"image":    asset.Image,
		"info":     asset.Info,
	}}
	return s.assets.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (s *mongoStore) DeleteAsset(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.assets.DeleteOne(ctx, bson.M{"_id": id})
}

// LimitedStock returns an admin's assets running low, fullest first.
func (s *mongoStore) LimitedStock(ctx context.Context, adminEmail string) ([]models.Asset, error) {
	filter := bson.M{"email": adminEmail, "quantity": bson.M{"$lt": 10}}
	opts := options.Find().SetSort(bson.D{{Key: "quantity", Value: -1}})

	cursor, err := s.assets.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assets := []models.Asset{}
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *mongoStore) CountAssetsByType(ctx context.Context, adminEmail, assetType string) (int64, error) {
	return s.assets.CountDocuments(ctx, bson.M{"email": adminEmail, "type": assetType})
}

// ==================== asset requests ====================

func (s *mongoStore) FindRequest(ctx context.Context, name, assetType, email string) (*models.AssetRequest, error) {
	var req models.AssetRequest
	filter := bson.M{"name": name, "type": assetType, "email": email}
	err := s.assetRequests.FindOne(ctx, filter).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *mongoStore) FindRequestByID(ctx context.Context, id primitive.ObjectID) (*models.AssetRequest, error) {
	var req models.AssetRequest
	err := s.assetRequests.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *mongoStore) InsertRequest(ctx context.Context, req models.AssetRequest) (*mongo.InsertOneResult, error) {
	return s.assetRequests.InsertOne(ctx, req)
}

func (s *mongoStore) IncrementRequestCount(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	update := bson.M{"$inc": bson.M{"requestCount": 1}}
	return s.assetRequests.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (s *mongoStore) ListRequests(ctx context.Context, filter RequestFilter) ([]models.AssetRequest, error) {
	cursor, err := s.assetRequests.Find(ctx, filter.Build())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.AssetRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *mongoStore) UpdateRequestStatus(ctx context.Context, id primitive.ObjectID, status, approvedDate string) (*mongo.UpdateResult, error) {
	set := bson.M{"status": status}
	if approvedDate != "" {
		set["approvedDate"] = approvedDate
	}
	return s.assetRequests.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func (s *mongoStore) TopRequested(ctx context.Context, adminEmail string) ([]models.AssetRequest, error) {
	filter := bson.M{"adminEmail": adminEmail}
	opts := options.Find().
		SetSort(bson.D{{Key: "requestCount", Value: -1}}).
		SetLimit(4)

	cursor, err := s.assetRequests.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.AssetRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *mongoStore) PendingRequests(ctx context.Context, adminEmail string) ([]models.AssetRequest, error) {
	filter := bson.M{"adminEmail": adminEmail, "status": models.StatusPending}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(5)

	cursor, err := s.assetRequests.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.AssetRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ==================== custom asset requests ====================

func (s *mongoStore) InsertCustomRequest(ctx context.Context, req models.CustomAssetRequest) (*mongo.InsertOneResult, error) {
	return s.customRequests.InsertOne(ctx, req)
}

func (s *mongoStore) ListCustomRequests(ctx context.Context, email string) ([]models.CustomAssetRequest, error) {
	cursor, err := s.customRequests.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.CustomAssetRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *mongoStore) FindCustomRequest(ctx context.Context, id primitive.ObjectID) (*models.CustomAssetRequest, error) {
	var req models.CustomAssetRequest
	err := s.customRequests.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *mongoStore) UpdateCustomRequest(ctx context.Context, id primitive.ObjectID, req models.CustomAssetRequest) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"name":       req.Name,
		"price":      req.Price,
		"assetType":  req.AssetType,
		"image":      req.Image,
		"assetInfo":  req.AssetInfo,
		"additional": req.Additional,
	}}
	return s.customRequests.UpdateOne(ctx, bson.M{"_id": id}, update)
}

// ==================== payments and packages ====================

func (s *mongoStore) InsertPayment(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	return s.payments.InsertOne(ctx, payment)
}

func (s *mongoStore) ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.payments.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *mongoStore) ListPackages(ctx context.Context) ([]models.Package, error) {
	cursor, err := s.packages.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	packages := []models.Package{}
	if err = cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *mongoStore) FindPackage(ctx context.Context, id primitive.ObjectID) (*models.Package, error) {
	var pkg models.Package
	err := s.packages.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}
