package internal

import (
	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Storefront/internal/model"
)

type ICatalog interface {
	Products() []model.Product
	ProductByID(int) (model.Product, bool)
}

// Catalog is the static read-only product reference data. It is seeded once
// at startup and never mutated.
type Catalog struct {
	products []model.Product
}

func NewCatalog() *Catalog {
	return &Catalog{products: []model.Product{
		{ID: 1, Name: "Microwave Gorenje MO17E1W", Price: decimal.NewFromFloat(2720.00), Date: "2023-10-03"},
		{ID: 2, Name: "Robot vacuum Xiaomi Mi Robot Vacuum S10+ White", Price: decimal.NewFromFloat(14600.00), Date: "2023-12-02"},
		{ID: 3, Name: "Electric shaver Philips razor 7000 series S7882/55", Price: decimal.NewFromFloat(7200.00), Date: "2023-12-04"},
		{ID: 4, Name: "Coffee machine Krups EA895N10", Price: decimal.NewFromFloat(18425.00), Date: "2023-10-03"},
		{ID: 5, Name: "Electric fireplace Artiflame AF23S", Price: decimal.NewFromFloat(15790.00), Date: "2023-12-02"},
	}}
}

func NewCatalogFrom(products []model.Product) *Catalog {
	return &Catalog{products: products}
}

func (c *Catalog) Products() []model.Product {
	return c.products
}

func (c *Catalog) ProductByID(id int) (model.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
