package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	EventKeyPrefix       = "event:%d"
	UserProfileKeyPrefix = "profile:%s"
	EventListKeyPrefix   = "events:list:%s"
)

const (
	EventTTL       = 5 * time.Minute
	UserProfileTTL = 10 * time.Minute
	EventListTTL   = 1 * time.Minute
)

func EventKey(eventID uint) string {
	return fmt.Sprintf(EventKeyPrefix, eventID)
}

func UserProfileKey(username string) string {
	return fmt.Sprintf(UserProfileKeyPrefix, username)
}

func EventListKey(fingerprint string) string {
	return fmt.Sprintf(EventListKeyPrefix, fingerprint)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateEvent(ctx context.Context, eventID uint) {
	Invalidate(ctx, EventKey(eventID))
}

func InvalidateUserProfile(ctx context.Context, username string) {
	Invalidate(ctx, UserProfileKey(username))
}
