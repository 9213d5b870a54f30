package models

import "time"

type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	IsParent    bool      `json:"isParent"`
	ChildID     *int      `json:"childId"`
	DisplayName *string   `json:"displayName"`
	Age         *int      `json:"age"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SafeUser is a User with the password stripped. API responses never
// include the stored password.
type SafeUser struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	IsParent    bool      `json:"isParent"`
	ChildID     *int      `json:"childId"`
	DisplayName *string   `json:"displayName"`
	Age         *int      `json:"age"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:          u.ID,
		Username:    u.Username,
		IsParent:    u.IsParent,
		ChildID:     u.ChildID,
		DisplayName: u.DisplayName,
		Age:         u.Age,
		CreatedAt:   u.CreatedAt,
	}
}

// InsertUser is the request payload for creating a user. Duplicate
// usernames are accepted; uniqueness is not enforced at write time.
type InsertUser struct {
	Username    string  `json:"username" validate:"required"`
	Password    string  `json:"password" validate:"required"`
	IsParent    *bool   `json:"isParent"`
	ChildID     *int    `json:"childId"`
	DisplayName *string `json:"displayName"`
	Age         *int    `json:"age"`
}
