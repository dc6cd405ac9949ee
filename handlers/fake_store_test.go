package handlers_test

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/programarreza/TaskNestle-Server/models"
	"github.com/programarreza/TaskNestle-Server/store"
)

// fakeStore is an in-memory store.Store. Substring filters mirror the
// case-insensitive regexes the real query builder emits.
type fakeStore struct {
	mu             sync.Mutex
	users          []models.User
	assets         []models.Asset
	requests       []models.AssetRequest
	customRequests []models.CustomAssetRequest
	payments       []models.Payment
	packages       []models.Package
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func matches(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

// matchesWhole mirrors the anchored pattern wholeMatch emits.
func matchesWhole(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.EqualFold(value, pattern)
}

// ==================== users ====================

func (f *fakeStore) InsertUser(_ context.Context, user models.User) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpsertUserByEmail(_ context.Context, email string, user models.User) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.Email == email {
			user.ID = u.ID
			user.Email = email
			f.users[i] = user
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	user.ID = primitive.NewObjectID()
	user.Email = email
	f.users = append(f.users, user)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: user.ID}, nil
}

func (f *fakeStore) ListEmployees(_ context.Context, adminEmail string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []models.User{}
	for _, u := range f.users {
		if u.AdminEmail == adminEmail && u.Role == models.RoleEmployee {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeStore) SetUserTeam(_ context.Context, id primitive.ObjectID, role, adminEmail string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users[i].Role = role
			f.users[i].AdminEmail = adminEmail
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) ApplyPaymentUpgrade(_ context.Context, email string, limitInc int) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.Email == email {
			f.users[i].Role = models.RoleAdmin
			f.users[i].Limit += limitInc
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

// ==================== assets ====================

func (f *fakeStore) InsertAsset(_ context.Context, asset models.Asset) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	asset.ID = primitive.NewObjectID()
	f.assets = append(f.assets, asset)
	return &mongo.InsertOneResult{InsertedID: asset.ID}, nil
}

func (f *fakeStore) ListAssets(_ context.Context, filter store.AssetFilter, _ store.Sort) ([]models.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	assets := []models.Asset{}
	for _, a := range f.assets {
		if !matches(a.Name, filter.Name) || !matchesWhole(a.Type, filter.Type) {
			continue
		}
		if filter.Email != "" && a.Email != filter.Email {
			continue
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func (f *fakeStore) UpdateAssetFields(_ context.Context, id primitive.ObjectID, asset models.Asset) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.assets {
		if a.ID == id {
			f.assets[i].Name = asset.Name
			f.assets[i].Price = asset.Price
			f.assets[i].Type = asset.Type
			f.assets[i].Quantity = asset.Quantity
			f.assets[i].Image = asset.Image
			f.assets[i].Info = asset.Info
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) DeleteAsset(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.assets {
		if a.ID == id {
			f.assets = append(f.assets[:i], f.assets[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{DeletedCount: 0}, nil
}

func (f *fakeStore) LimitedStock(_ context.Context, adminEmail string) ([]models.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	assets := []models.Asset{}
	for _, a := range f.assets {
		if a.Email == adminEmail && a.Quantity < 10 {
			assets = append(assets, a)
		}
	}
	return assets, nil
}

func (f *fakeStore) CountAssetsByType(_ context.Context, adminEmail, assetType string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.assets {
		if a.Email == adminEmail && a.Type == assetType {
			n++
		}
	}
	return n, nil
}

// ==================== asset requests ====================

func (f *fakeStore) FindRequest(_ context.Context, name, assetType, email string) (*models.AssetRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r.Name == name && r.Type == assetType && r.Email == email {
			req := r
			return &req, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindRequestByID(_ context.Context, id primitive.ObjectID) (*models.AssetRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r.ID == id {
			req := r
			return &req, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertRequest(_ context.Context, req models.AssetRequest) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req.ID = primitive.NewObjectID()
	f.requests = append(f.requests, req)
	return &mongo.InsertOneResult{InsertedID: req.ID}, nil
}

func (f *fakeStore) IncrementRequestCount(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.requests {
		if r.ID == id {
			f.requests[i].RequestCount++
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) ListRequests(_ context.Context, filter store.RequestFilter) ([]models.AssetRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	requests := []models.AssetRequest{}
	for _, r := range f.requests {
		if !matches(r.Name, filter.Name) || !matchesWhole(r.Type, filter.Type) {
			continue
		}
		if filter.Email != "" && r.Email != filter.Email {
			continue
		}
		if !matches(r.Email, filter.SearchEmail) {
			continue
		}
		if filter.AdminEmail != "" && r.AdminEmail != filter.AdminEmail {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		requests = append(requests, r)
	}
	return requests, nil
}

func (f *fakeStore) UpdateRequestStatus(_ context.Context, id primitive.ObjectID, status, approvedDate string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.requests {
		if r.ID == id {
			f.requests[i].Status = status
			if approvedDate != "" {
				f.requests[i].ApprovedDate = approvedDate
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) TopRequested(_ context.Context, adminEmail string) ([]models.AssetRequest, error) {
	requests, _ := f.ListRequests(context.Background(), store.RequestFilter{AdminEmail: adminEmail})
	if len(requests) > 4 {
		requests = requests[:4]
	}
	return requests, nil
}

func (f *fakeStore) PendingRequests(_ context.Context, adminEmail string) ([]models.AssetRequest, error) {
	requests, _ := f.ListRequests(context.Background(), store.RequestFilter{AdminEmail: adminEmail, Status: models.StatusPending})
	if len(requests) > 5 {
		requests = requests[:5]
	}
	return requests, nil
}

// ==================== custom asset requests ====================

func (f *fakeStore) InsertCustomRequest(_ context.Context, req models.CustomAssetRequest) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req.ID = primitive.NewObjectID()
	f.customRequests = append(f.customRequests, req)
	return &mongo.InsertOneResult{InsertedID: req.ID}, nil
}

func (f *fakeStore) ListCustomRequests(_ context.Context, email string) ([]models.CustomAssetRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	requests := []models.CustomAssetRequest{}
	for _, r := range f.customRequests {
		if r.Email == email {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

func (f *fakeStore) FindCustomRequest(_ context.Context, id primitive.ObjectID) (*models.CustomAssetRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.customRequests {
		if r.ID == id {
			req := r
			return &req, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateCustomRequest(_ context.Context, id primitive.ObjectID, req models.CustomAssetRequest) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.customRequests {
		if r.ID == id {
			f.customRequests[i].Name = req.Name
			f.customRequests[i].Price = req.Price
			f.customRequests[i].AssetType = req.AssetType
			f.customRequests[i].Image = req.Image
			f.customRequests[i].AssetInfo = req.AssetInfo
			f.customRequests[i].Additional = req.Additional
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

// ==================== payments and packages ====================

func (f *fakeStore) InsertPayment(_ context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment.ID = primitive.NewObjectID()
	f.payments = append(f.payments, payment)
	return &mongo.InsertOneResult{InsertedID: payment.ID}, nil
}

func (f *fakeStore) ListPayments(_ context.Context, email string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payments := []models.Payment{}
	for _, p := range f.payments {
		if p.Email == email {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (f *fakeStore) ListPackages(_ context.Context) ([]models.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Package{}, f.packages...), nil
}

func (f *fakeStore) FindPackage(_ context.Context, id primitive.ObjectID) (*models.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.packages {
		if p.ID == id {
			pkg := p
			return &pkg, nil
		}
	}
	return nil, nil
}

var _ store.Store = (*fakeStore)(nil)
