package types

import "Orbit/models"

// UserSummary 嵌在帖子/快拍/会话里的作者信息
type UserSummary struct {
	ID           int64  `json:"_id,string"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	ProfileImage string `json:"profileImage"`
}

func NewUserSummary(u *models.User) UserSummary {
	if u == nil {
		return UserSummary{}
	}
	return UserSummary{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		ProfileImage: u.ProfileImage,
	}
}

// UpdateProfileRequest 只更新传了的字段
type UpdateProfileRequest struct {
	FullName     *string `json:"fullName" binding:"omitempty,min=1,max=128"`
	Username     *string `json:"username" binding:"omitempty,min=3,max=64"`
	Bio          *string `json:"bio" binding:"omitempty,max=512"`
	City         *string `json:"City" binding:"omitempty,max=64"`
	Country      *string `json:"Country" binding:"omitempty,max=64"`
	ProfileImage *string `json:"profileImage" binding:"omitempty,max=512"`
}
