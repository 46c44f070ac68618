package types

import "time"

type UploadAuthRequest struct {
	Kind string `form:"kind" binding:"omitempty,oneof=post story avatar"`
	Ext  string `form:"ext" binding:"omitempty,oneof=jpg jpeg png webp mp4 mov"`
}

type UploadAuthResponse struct {
	UploadURL string    `json:"uploadUrl"`
	Method    string    `json:"method"`
	Key       string    `json:"key"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
