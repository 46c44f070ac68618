package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	Username       string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	FullName       string    `gorm:"column:full_name;type:varchar(128);not null" json:"fullName"`
	Email          string    `gorm:"column:email;type:varchar(191);not null;uniqueIndex:uk_email" json:"email"`
	Password       string    `gorm:"column:password;type:varchar(100);not null" json:"-"`
	Bio            string    `gorm:"column:bio;type:varchar(512);not null;default:''" json:"bio"`
	City           string    `gorm:"column:city;type:varchar(64);not null;default:''" json:"city"`
	Country        string    `gorm:"column:country;type:varchar(64);not null;default:''" json:"country"`
	ProfileImage   string    `gorm:"column:profile_image;type:varchar(512);not null;default:''" json:"profileImage"`
	Role           string    `gorm:"column:role;type:varchar(16);not null;default:user" json:"role"`
	FollowersCount int64     `gorm:"column:followers_count;not null;default:0" json:"followersCount"`
	FollowingCount int64     `gorm:"column:following_count;not null;default:0" json:"followingCount"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
