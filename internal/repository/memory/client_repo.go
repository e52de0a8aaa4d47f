package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// ClientRepo keys clients by case-insensitive name.
type ClientRepo struct {
	mu      sync.RWMutex
	clients []domain.Client
	byName  map[string]int // lowercased name -> index into clients
}

// NewClientRepo creates an empty client registry.
func NewClientRepo() *ClientRepo {
	return &ClientRepo{byName: make(map[string]int)}
}

var _ port.ClientRepository = (*ClientRepo)(nil)

func (r *ClientRepo) RegisterIfAbsent(_ context.Context, name, address, email string) (*domain.Client, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if i, ok := r.byName[key]; ok {
		client := r.clients[i]
		return &client, false, nil
	}

	client := domain.Client{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
		Email:   email,
	}
	r.byName[key] = len(r.clients)
	r.clients = append(r.clients, client)
	return &client, true, nil
}

func (r *ClientRepo) List(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}
