package adminusers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ADMIN_USER_ROLE_ADMIN = "admin"
)

type AdminUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Role        string             `bson:"role" json:"role"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	LastLoginAt time.Time          `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
}
