package redis

import (
	"context"
	"fmt"
	"time"

	"blog-post-service/internal/cache"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/model"
)

const (
	listKeyPrefix = "posts:list"
	listTTL       = 1 * time.Minute
)

type ListCache struct {
	client *Client
	log    *logger.Logger
}

func NewListCache(client *Client, log *logger.Logger) cache.ListCache {
	return &ListCache{client: client, log: log}
}

func listKey(page, limit int, tag *string) string {
	tagPart := ""
	if tag != nil {
		tagPart = *tag
	}
	return fmt.Sprintf("%s:%d:%d:%s", listKeyPrefix, page, limit, tagPart)
}

func (c *ListCache) GetPage(ctx context.Context, page, limit int, tag *string) (*model.PostPage, error) {
	var result model.PostPage
	if err := c.client.Get(ctx, listKey(page, limit, tag), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ListCache) SetPage(ctx context.Context, page, limit int, tag *string, result *model.PostPage) error {
	return c.client.Set(ctx, listKey(page, limit, tag), result, listTTL)
}

func (c *ListCache) InvalidateAll(ctx context.Context) error {
	return c.client.DeletePattern(ctx, listKeyPrefix+":*")
}
