package process

import (
	"context"
	"time"

	"Orbit/pkg/log"

	"go.uber.org/zap"
)

const cleanInterval = time.Hour

// ExpiredCleaner 由 service.StoryService 实现
type ExpiredCleaner interface {
	CleanExpired(ctx context.Context, now time.Time) (int64, error)
}

// StoryCleaner 定期删除超过 24 小时的快拍, 启动时先执行一次
type StoryCleaner struct {
	Stories  ExpiredCleaner
	interval time.Duration
}

func NewStoryCleaner(stories ExpiredCleaner) *StoryCleaner {
	return &StoryCleaner{Stories: stories, interval: cleanInterval}
}

func (s *StoryCleaner) Name() string {
	return "story-cleaner"
}

func (s *StoryCleaner) Setup(ctx context.Context) error {
	s.clean(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.clean(ctx)
		}
	}
}

func (s *StoryCleaner) clean(ctx context.Context) {
	n, err := s.Stories.CleanExpired(ctx, time.Now())
	if err != nil {
		log.L.Error("clean expired stories failed", zap.Error(err))
		return
	}
	if n > 0 {
		log.L.Info("expired stories removed", zap.Int64("count", n))
	}
}
