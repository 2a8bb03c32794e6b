package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-pos/agg-svc/internal/domain"
)

// Retention covers the 30 day window analytics-svc reports on, plus slack.
const Retention = 40 * 24 * time.Hour

const ItemNamesKey = "sales:item_names"

func DailyKey(date string) string { return "sales:daily:" + date }
func ItemsKey(date string) string { return "sales:items:" + date }

func seenKey(kind string, orderID int) string {
	return fmt.Sprintf("sales:seen:%s:%d", kind, orderID)
}

// Each script marks the message as applied and updates the counters in one
// step, so a redelivered message is a no-op.
var recordOrderScript = redis.NewScript(`
if not redis.call('SET', KEYS[1], '1', 'NX', 'EX', ARGV[1]) then
  return 0
end
redis.call('HINCRBY', KEYS[2], 'revenue_cents', ARGV[2])
redis.call('HINCRBY', KEYS[2], 'orders', 1)
redis.call('EXPIRE', KEYS[2], ARGV[1])
for i = 3, #ARGV, 3 do
  redis.call('ZINCRBY', KEYS[3], ARGV[i+1], ARGV[i])
  if ARGV[i+2] ~= '' then
    redis.call('HSET', KEYS[4], ARGV[i], ARGV[i+2])
  end
end
if #ARGV >= 3 then
  redis.call('EXPIRE', KEYS[3], ARGV[1])
end
return 1
`)

var recordPaymentScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 0 then
  return 0
end
if not redis.call('SET', KEYS[1], '1', 'NX', 'EX', ARGV[1]) then
  return 0
end
redis.call('HINCRBY', KEYS[3], 'paid_revenue_cents', ARGV[2])
redis.call('HINCRBY', KEYS[3], 'paid_orders', 1)
redis.call('EXPIRE', KEYS[3], ARGV[1])
return 1
`)

var removeOrderScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 0 then
  return 0
end
if not redis.call('SET', KEYS[1], '1', 'NX', 'EX', ARGV[1]) then
  return 0
end
redis.call('HINCRBY', KEYS[4], 'revenue_cents', -tonumber(ARGV[2]))
redis.call('HINCRBY', KEYS[4], 'orders', -1)
if redis.call('EXISTS', KEYS[3]) == 1 then
  redis.call('HINCRBY', KEYS[4], 'paid_revenue_cents', -tonumber(ARGV[2]))
  redis.call('HINCRBY', KEYS[4], 'paid_orders', -1)
end
redis.call('EXPIRE', KEYS[4], ARGV[1])
for i = 3, #ARGV, 2 do
  redis.call('ZINCRBY', KEYS[5], -tonumber(ARGV[i+1]), ARGV[i])
end
if #ARGV >= 3 then
  redis.call('EXPIRE', KEYS[5], ARGV[1])
end
return 1
`)

type Store struct {
	rdb redis.Scripter
}

func NewStore(rdb redis.Scripter) *Store {
	return &Store{rdb: rdb}
}

func cents(msg domain.OrderMessage) string {
	return strconv.FormatInt(msg.TotalPrice.Shift(2).Round(0).IntPart(), 10)
}

func ttlSeconds() string {
	return strconv.Itoa(int(Retention / time.Second))
}

func (s *Store) RecordOrder(ctx context.Context, msg domain.OrderMessage) error {
	day := msg.Day()
	keys := []string{seenKey("created", msg.OrderID), DailyKey(day), ItemsKey(day), ItemNamesKey}
	args := []interface{}{ttlSeconds(), cents(msg)}
	for _, l := range msg.Items {
		args = append(args, strconv.Itoa(l.ItemID), l.Quantity, l.Name)
	}
	if err := recordOrderScript.Run(ctx, s.rdb, keys, args...).Err(); err != nil {
		return fmt.Errorf("record order %d: %w", msg.OrderID, err)
	}
	return nil
}

func (s *Store) RecordPayment(ctx context.Context, msg domain.OrderMessage) error {
	keys := []string{seenKey("paid", msg.OrderID), seenKey("created", msg.OrderID), DailyKey(msg.Day())}
	if err := recordPaymentScript.Run(ctx, s.rdb, keys, ttlSeconds(), cents(msg)).Err(); err != nil {
		return fmt.Errorf("record payment %d: %w", msg.OrderID, err)
	}
	return nil
}

func (s *Store) RemoveOrder(ctx context.Context, msg domain.OrderMessage) error {
	day := msg.Day()
	keys := []string{
		seenKey("deleted", msg.OrderID),
		seenKey("created", msg.OrderID),
		seenKey("paid", msg.OrderID),
		DailyKey(day),
		ItemsKey(day),
	}
	args := []interface{}{ttlSeconds(), cents(msg)}
	for _, l := range msg.Items {
		args = append(args, strconv.Itoa(l.ItemID), l.Quantity)
	}
	if err := removeOrderScript.Run(ctx, s.rdb, keys, args...).Err(); err != nil {
		return fmt.Errorf("remove order %d: %w", msg.OrderID, err)
	}
	return nil
}
