package seatlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// holdTTL bounds how long a checkout wizard can sit on seat selection
// before other sessions may take the seats.
const holdTTL = 15 * time.Minute

// Holder places transient per-seat holds in redis while a user walks
// through the booking wizard. Holds are advisory: the booking transaction
// stays correct without them, they only reduce checkout collisions.
type Holder struct {
	client *redis.Client
}

func New(client *redis.Client) *Holder {
	return &Holder{client: client}
}

// Enabled reports whether a redis backend is configured. All methods are
// no-ops when it is not.
func (h *Holder) Enabled() bool {
	return h != nil && h.client != nil
}

func key(routeID int64, seat int) string {
	return fmt.Sprintf("seat_hold:%d:%d", routeID, seat)
}

// Hold tries to lock every seat for owner. On any conflict it releases
// the seats it just took and returns the conflicting seat numbers.
func (h *Holder) Hold(ctx context.Context, routeID int64, seats []int, owner string) ([]int, error) {
	if !h.Enabled() {
		return nil, nil
	}

	var taken []int
	for _, seat := range seats {
		ok, err := h.client.SetNX(ctx, key(routeID, seat), owner, holdTTL).Result()
		if err != nil {
			h.release(ctx, routeID, taken, owner)
			return nil, err
		}
		if !ok {
			// A hold we already own is not a conflict; refresh it.
			val, err := h.client.Get(ctx, key(routeID, seat)).Result()
			if err == nil && val == owner {
				h.client.Expire(ctx, key(routeID, seat), holdTTL)
				taken = append(taken, seat)
				continue
			}
			h.release(ctx, routeID, taken, owner)
			return []int{seat}, nil
		}
		taken = append(taken, seat)
	}
	return nil, nil
}

// Release drops the holds owned by owner; holds taken over by someone
// else (after expiry) are left alone.
func (h *Holder) Release(ctx context.Context, routeID int64, seats []int, owner string) error {
	if !h.Enabled() {
		return nil
	}
	h.release(ctx, routeID, seats, owner)
	return nil
}

func (h *Holder) release(ctx context.Context, routeID int64, seats []int, owner string) {
	for _, seat := range seats {
		val, err := h.client.Get(ctx, key(routeID, seat)).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			continue
		}
		if val == owner {
			h.client.Del(ctx, key(routeID, seat))
		}
	}
}
