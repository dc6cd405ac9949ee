package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter construction lives here so the regex handling exists in exactly
// one place instead of being rebuilt per route.

// substringMatch is a case-insensitive substring pattern, so ?name=lap
// matches an asset named "Laptop Stand".
func substringMatch(s string) primitive.Regex {
	return primitive.Regex{Pattern: s, Options: "i"}
}

// wholeMatch anchors the pattern so ?type=Returnable does not also
// match "Non-returnable"; case still folds.
func wholeMatch(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + s + "$", Options: "i"}
}

// AssetFilter holds the optional query-string filters for asset listings.
// Empty fields are left out of the generated filter.
type AssetFilter struct {
	Name  string
	Type  string
	Email string
}

func (f AssetFilter) Build() bson.M {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = substringMatch(f.Name)
	}
	if f.Type != "" {
		filter["type"] = wholeMatch(f.Type)
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	return filter
}

// RequestFilter covers the asset-request listings: exact match on the
// email back-references, substring match on the searchable fields.
type RequestFilter struct {
	Name        string
	Type        string
	Email       string
	SearchEmail string
	AdminEmail  string
	Status      string
}

func (f RequestFilter) Build() bson.M {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = substringMatch(f.Name)
	}
	if f.Type != "" {
		filter["type"] = wholeMatch(f.Type)
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	if f.SearchEmail != "" {
		filter["email"] = substringMatch(f.SearchEmail)
	}
	if f.AdminEmail != "" {
		filter["adminEmail"] = f.AdminEmail
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// Sort is an optional single-field sort. It only takes effect when both
// the field and the order were supplied, matching the query contract
// (?sort=price&order=asc).
type Sort struct {
	Field string
	Order string
}

func (s Sort) Build() bson.D {
	if s.Field == "" || s.Order == "" {
		return nil
	}
	dir := 1
	if s.Order == "desc" {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}}
}
