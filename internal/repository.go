package internal

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/Storefront/internal/model"
)

type IRepository interface {
	GetOrders(context.Context) ([]model.Order, error)
	GetOrdersByStatus(context.Context, string) ([]model.Order, error)
	GetOrdersByDateRange(context.Context, time.Time, time.Time) ([]model.Order, error)
	GetOrderByID(context.Context, int) (model.Order, error)
	AppendOrder(context.Context, model.Order) (model.Order, error)
	UpdateOrderStatus(context.Context, int, string) (model.Order, error)
}

// Repository owns the full order collection in memory and mirrors it to a
// JSON snapshot file after every mutation. The whole file is rewritten each
// time; queries are full scans.
type Repository struct {
	mu     sync.Mutex
	path   string
	orders []model.Order
	logger *zap.SugaredLogger
}

func NewRepository(path string, logger *zap.SugaredLogger) (*Repository, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = os.WriteFile(path, []byte("[]"), 0644)
	}
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	err = json.Unmarshal(b, &orders)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, orders: orders, logger: logger}, nil
}

func (r *Repository) GetOrders(_ context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]model.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

func (r *Repository) GetOrdersByStatus(_ context.Context, status string) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.Status == status {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *Repository) GetOrdersByDateRange(_ context.Context, start, end time.Time) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]model.Order, 0)
	for _, o := range r.orders {
		d, err := time.Parse(model.DateLayout, o.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if !d.Before(start) && !d.After(end) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *Repository) GetOrderByID(_ context.Context, id int) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

// AppendOrder assigns the next id (max existing + 1, or 1 when empty) and
// appends under one lock, so racing creates cannot mint the same id.
func (r *Repository) AppendOrder(_ context.Context, o model.Order) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := 1
	for _, e := range r.orders {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	o.ID = id

	r.orders = append(r.orders, o)
	err := r.snapshot()
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *Repository) UpdateOrderStatus(_ context.Context, id int, status string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			err := r.snapshot()
			if err != nil {
				return model.Order{}, err
			}
			return r.orders[i], nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

// snapshot rewrites the whole file. Caller must hold r.mu. On write failure
// the in-memory state and the file diverge; last writer wins on the next
// successful snapshot.
func (r *Repository) snapshot() error {
	b, err := json.MarshalIndent(r.orders, "", "  ")
	if err != nil {
		return err
	}

	err = os.WriteFile(r.path, b, 0644)
	if err != nil {
		r.logger.Errorf("orders snapshot %s not written: %s", r.path, err.Error())
		return err
	}
	return nil
}
