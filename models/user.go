package models

import "time"

// User roles.
const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// User is a platform account: customer, business admin, or superadmin.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Email         string         `bson:"email" json:"email"`
	Name          string         `bson:"name" json:"name"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	Role          string         `bson:"role" json:"role"`
	BusinessID    string         `bson:"business_id,omitempty" json:"business_id,omitempty"` // set for admins
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}

// Notification is an in-app message appended to a user's record.
type Notification struct {
	ID        string                 `bson:"id" json:"id"`
	Type      string                 `bson:"type" json:"type"`
	Message   string                 `bson:"message" json:"message"`
	Data      map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	Read      bool                   `bson:"read" json:"read"`
}

// RegisterUserRequest is the signup payload.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
