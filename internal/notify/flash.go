package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// Flash é uma notificação transitória exibida uma única vez, na próxima
// página renderizada para o mesmo escopo de sessão.
type Flash struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(scope string) string {
	return "flash:" + scope
}

func (s *Store) Push(ctx context.Context, scope string, f Flash) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key(scope), data)
	pipe.Expire(ctx, key(scope), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push flash: %w", err)
	}
	return nil
}

// PopAll devolve as notificações pendentes em ordem de chegada e as remove.
func (s *Store) PopAll(ctx context.Context, scope string) ([]Flash, error) {
	pipe := s.client.TxPipeline()
	items := pipe.LRange(ctx, key(scope), 0, -1)
	pipe.Del(ctx, key(scope))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to pop flashes: %w", err)
	}

	raw, err := items.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read flashes: %w", err)
	}

	var flashes []Flash
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

func (s *Store) Success(ctx context.Context, scope, message string) {
	_ = s.Push(ctx, scope, Flash{Type: TypeSuccess, Message: message})
}

func (s *Store) Error(ctx context.Context, scope, message string) {
	_ = s.Push(ctx, scope, Flash{Type: TypeError, Message: message})
}

func (s *Store) Info(ctx context.Context, scope, message string) {
	_ = s.Push(ctx, scope, Flash{Type: TypeInfo, Message: message})
}
