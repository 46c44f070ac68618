package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Orbit/config"
	"Orbit/pkg/snowflake"
	"Orbit/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

const defaultUploadExpire = 10 * time.Minute

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	UploadAuth(ctx context.Context, userID int64, kind, ext string) (*types.UploadAuthResponse, error)
}

// MediaService 客户端直传 OSS: 服务端只签发 PUT 预签名地址
type MediaService struct {
	Client *oss.Client
	Config *config.OssConfig
}

func (s *MediaService) UploadAuth(ctx context.Context, userID int64, kind, ext string) (*types.UploadAuthResponse, error) {
	key := objectKey(userID, kind, ext, time.Now())

	expire := defaultUploadExpire
	if s.Config.UploadExpire > 0 {
		expire = time.Duration(s.Config.UploadExpire) * time.Second
	}

	result, err := s.Client.Presign(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(key),
	}, oss.PresignExpires(expire))
	if err != nil {
		return nil, err
	}

	return &types.UploadAuthResponse{
		UploadURL: result.URL,
		Method:    result.Method,
		Key:       key,
		PublicURL: strings.TrimRight(s.Config.PublicHost, "/") + "/" + key,
		ExpiresAt: result.Expiration,
	}, nil
}

// objectKey post/1024/2026/01/02/1801234567.jpg
func objectKey(userID int64, kind, ext string, now time.Time) string {
	if kind == "" {
		kind = "post"
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" || ext == "jpeg" {
		ext = "jpg"
	}
	return fmt.Sprintf("%s/%d/%s/%d.%s", kind, userID, now.Format("2006/01/02"), snowflake.GenID(), ext)
}
