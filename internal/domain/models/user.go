package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phoneNumber"`
	Role      string    `json:"role"` // USER / ADMIN
	CreatedAt time.Time `json:"createdAt"`
}
