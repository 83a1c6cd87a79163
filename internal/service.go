package internal

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/Storefront/internal/model"
)

const billProvider = "Store details"

// discount applied when the product's reference date is more than 30 days
// behind the order date
var discountRate = decimal.NewFromFloat(0.8)

const discountAge = 30 * 24 * time.Hour

type IService interface {
	Products(context.Context) []model.Product
	CreateOrder(context.Context, model.OrderInput) (model.Order, error)
	GetOrders(context.Context) ([]model.Order, error)
	GetOrdersByStatus(context.Context, string) ([]model.Order, error)
	GetOrdersByDateRange(context.Context, string, string) ([]model.Order, error)
	MarkDone(context.Context, int) (model.Order, error)
	MarkPaid(context.Context, int) (model.Order, error)
	GenerateBill(context.Context, int) (model.Bill, error)
}

func NewService(Repository IRepository, Catalog ICatalog, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: Repository, Catalog: Catalog, logger: logger}
}

type Service struct {
	Repository IRepository
	Catalog    ICatalog
	logger     *zap.SugaredLogger
}

func (s Service) Products(_ context.Context) []model.Product {
	return s.Catalog.Products()
}

func (s Service) CreateOrder(ctx context.Context, i model.OrderInput) (model.Order, error) {
	now := time.Now()
	order := model.Order{
		Name:      i.Name,
		ProductID: i.ProductID,
		Date:      now.Format(model.DateLayout),
		Status:    model.OrderStatusAccepted,
	}

	// price is fixed here and never recomputed on status changes; an
	// unknown productId leaves it zero
	p, ok := s.Catalog.ProductByID(i.ProductID)
	if ok {
		order.Price = priceAt(p, now)
	}

	// the store mints the id, so racing creates cannot share one
	return s.Repository.AppendOrder(ctx, order)
}

// priceAt compares whole calendar days; a gap of exactly 30 days keeps the
// full price, the discount starts at 31.
func priceAt(p model.Product, now time.Time) decimal.Decimal {
	ref, refErr := time.Parse(model.DateLayout, p.Date)
	day, dayErr := time.Parse(model.DateLayout, now.Format(model.DateLayout))
	if refErr == nil && dayErr == nil && day.Sub(ref) > discountAge {
		return p.Price.Mul(discountRate).Round(2)
	}
	return p.Price.Round(2)
}

func (s Service) GetOrders(ctx context.Context) ([]model.Order, error) {
	return s.Repository.GetOrders(ctx)
}

func (s Service) GetOrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	return s.Repository.GetOrdersByStatus(ctx, status)
}

func (s Service) GetOrdersByDateRange(ctx context.Context, startStr, endStr string) ([]model.Order, error) {
	start, err := time.Parse(model.DateLayout, startStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	end, err := time.Parse(model.DateLayout, endStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.Repository.GetOrdersByDateRange(ctx, start, end)
}

func (s Service) MarkDone(ctx context.Context, id int) (model.Order, error) {
	return s.advance(ctx, id, model.OrderStatusAccepted, model.OrderStatusDone)
}

func (s Service) MarkPaid(ctx context.Context, id int) (model.Order, error) {
	return s.advance(ctx, id, model.OrderStatusDone, model.OrderStatusPaid)
}

// advance moves an order one step forward. An order whose current status is
// not the required one is reported the same way as a missing id.
func (s Service) advance(ctx context.Context, id int, required, next string) (model.Order, error) {
	o, err := s.Repository.GetOrderByID(ctx, id)
	if err != nil {
		return model.Order{}, err
	}

	if o.Status != required {
		return model.Order{}, ErrOrderNotFound
	}

	return s.Repository.UpdateOrderStatus(ctx, id, next)
}

func (s Service) GenerateBill(ctx context.Context, id int) (model.Bill, error) {
	o, err := s.Repository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return model.Bill{}, ErrBillNotFound
		}
		return model.Bill{}, err
	}

	if o.Status != model.OrderStatusPaid {
		return model.Bill{}, ErrBillNotFound
	}

	bill := model.Bill{
		BillID:   o.ID,
		Date:     time.Now().Format(model.BillDateLayout),
		Provider: billProvider,
		Buyer:    o.Name,
		Table:    []model.BillRow{},
	}

	p, ok := s.Catalog.ProductByID(o.ProductID)
	if ok {
		discount := ""
		if o.Price.LessThan(p.Price) {
			discount = "20% off"
		}

		bill.Table = append(bill.Table, model.BillRow{
			Number:      1,
			ProductName: p.Name,
			Price:       p.Price,
			Discount:    discount,
			Sum:         o.Price,
		})
	}

	return bill, nil
}
