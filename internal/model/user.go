package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the MongoDB collection holding user documents. The name
// predates this service; existing deployments already store users there.
const CollectionName = "custom_users"

// User represents a registered user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"` // never expose in JSON
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updated_at"`
}
