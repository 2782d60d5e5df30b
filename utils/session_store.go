package utils

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Server-side session registry. A session is live only while its id is
// present here, so logging out invalidates the cookie even before the signed
// token expires. Redis is preferred; an in-memory map serves single-process
// deployments and tests.

type sessionEntry struct {
	userID    uint
	expiresAt time.Time
}

var (
	sessionStore   = map[string]sessionEntry{}
	sessionStoreMu sync.Mutex
)

func sessionKey(sid string) string {
	return "session:" + sid
}

// RegisterSession records a live session id for a user with the given TTL.
func RegisterSession(sid string, userID uint, ttl time.Duration) {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, sessionKey(sid), strconv.FormatUint(uint64(userID), 10), ttl).Err(); err == nil {
			return
		}
	}
	sessionStoreMu.Lock()
	sessionStore[sid] = sessionEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	sessionStoreMu.Unlock()
}

// LookupSession resolves a session id to its user id, if the session is live.
func LookupSession(sid string) (uint, bool) {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if val, err := rc.Get(ctx, sessionKey(sid)).Result(); err == nil {
			id, convErr := strconv.ParseUint(val, 10, 64)
			if convErr != nil {
				return 0, false
			}
			return uint(id), true
		}
		// On a Redis miss or error, fall through to the memory store.
	}
	sessionStoreMu.Lock()
	defer sessionStoreMu.Unlock()
	entry, ok := sessionStore[sid]
	if !ok {
		return 0, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(sessionStore, sid)
		return 0, false
	}
	return entry.userID, true
}

// RevokeSession removes a session id from the registry.
func RevokeSession(sid string) {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = rc.Del(ctx, sessionKey(sid)).Err()
	}
	sessionStoreMu.Lock()
	delete(sessionStore, sid)
	sessionStoreMu.Unlock()
}
