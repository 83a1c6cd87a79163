package test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Storefront/internal"
	"github.com/DrGermanius/Storefront/internal/model"
)

var _ = Describe("Repository", func() {
	var (
		dir  string
		path string
		repo *internal.Repository
	)
	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "storefront")
		Expect(err).ShouldNot(HaveOccurred())
		path = filepath.Join(dir, "orders.json")

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo, err = internal.NewRepository(path, logger.Sugar())
		Expect(err).ShouldNot(HaveOccurred())
	})
	AfterEach(func() {
		err := os.RemoveAll(dir)
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("Repository tests", func() {
		It("bootstraps a missing file with an empty collection", func() {
			b, err := os.ReadFile(path)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(b)).Should(Equal("[]"))

			orders, err := repo.GetOrders(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(BeEmpty())
		})
		It("refuses a corrupt file", func() {
			corrupt := filepath.Join(dir, "corrupt.json")
			err := os.WriteFile(corrupt, []byte("{not json"), 0644)
			Expect(err).ShouldNot(HaveOccurred())

			logger, err := zap.NewDevelopment()
			Expect(err).ShouldNot(HaveOccurred())

			_, err = internal.NewRepository(corrupt, logger.Sugar())
			Expect(err).Should(HaveOccurred())
		})
		It("AppendOrder assigns id 1 on an empty store and rewrites the snapshot file", func() {
			o := model.Order{
				Name:      "buyer",
				ProductID: 1,
				Price:     decimal.NewFromInt(2720),
				Date:      "2023-12-05",
				Status:    model.OrderStatusAccepted,
			}

			stored, err := repo.AppendOrder(context.Background(), o)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stored.ID).Should(Equal(1))

			b, err := os.ReadFile(path)
			Expect(err).ShouldNot(HaveOccurred())

			var persisted []model.Order
			err = json.Unmarshal(b, &persisted)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(persisted).Should(HaveLen(1))
			Expect(persisted[0].ID).Should(Equal(1))
			Expect(persisted[0].Status).Should(Equal(model.OrderStatusAccepted))
		})
		It("AppendOrder continues ids from a loaded snapshot", func() {
			seeded := filepath.Join(dir, "seeded.json")
			err := os.WriteFile(seeded, []byte(`[
  {"id": 2, "name": "first", "productId": 1, "price": 2720, "date": "2023-12-05", "status": "Paid"},
  {"id": 7, "name": "second", "productId": 3, "price": 7200, "date": "2023-12-07", "status": "Accepted"}
]`), 0644)
			Expect(err).ShouldNot(HaveOccurred())

			logger, err := zap.NewDevelopment()
			Expect(err).ShouldNot(HaveOccurred())

			loaded, err := internal.NewRepository(seeded, logger.Sugar())
			Expect(err).ShouldNot(HaveOccurred())

			stored, err := loaded.AppendOrder(context.Background(), model.Order{Name: "third", Status: model.OrderStatusAccepted})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stored.ID).Should(Equal(8))
		})
		It("AppendOrder mints unique ids under racing creates", func() {
			ctx := context.Background()

			var wg sync.WaitGroup
			results := make(chan model.Order, 10)
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					stored, err := repo.AppendOrder(ctx, model.Order{Name: "buyer", Status: model.OrderStatusAccepted})
					Expect(err).ShouldNot(HaveOccurred())
					results <- stored
				}()
			}
			wg.Wait()
			close(results)

			seen := make(map[int]bool)
			for o := range results {
				Expect(seen[o.ID]).Should(BeFalse())
				seen[o.ID] = true
			}
			Expect(seen).Should(HaveLen(10))
		})
		It("round-trips the collection through a reload", func() {
			ctx := context.Background()
			created := make([]model.Order, 0, 2)
			for _, o := range []model.Order{
				{Name: "first", ProductID: 1, Price: decimal.NewFromInt(2720), Date: "2023-12-05", Status: model.OrderStatusPaid},
				{Name: "second", ProductID: 3, Price: decimal.NewFromInt(7200), Date: "2023-12-07", Status: model.OrderStatusAccepted},
			} {
				stored, err := repo.AppendOrder(ctx, o)
				Expect(err).ShouldNot(HaveOccurred())
				created = append(created, stored)
			}

			logger, err := zap.NewDevelopment()
			Expect(err).ShouldNot(HaveOccurred())

			reloaded, err := internal.NewRepository(path, logger.Sugar())
			Expect(err).ShouldNot(HaveOccurred())

			got, err := reloaded.GetOrders(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got).Should(Equal(created))
		})
		It("UpdateOrderStatus mutates in place and persists", func() {
			ctx := context.Background()
			_, err := repo.AppendOrder(ctx, model.Order{Name: "buyer", Status: model.OrderStatusDone})
			Expect(err).ShouldNot(HaveOccurred())

			o, err := repo.UpdateOrderStatus(ctx, 1, model.OrderStatusPaid)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.Status).Should(Equal(model.OrderStatusPaid))

			b, err := os.ReadFile(path)
			Expect(err).ShouldNot(HaveOccurred())

			var persisted []model.Order
			err = json.Unmarshal(b, &persisted)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(persisted[0].Status).Should(Equal(model.OrderStatusPaid))
		})
		It("UpdateOrderStatus with error unknown id", func() {
			_, err := repo.UpdateOrderStatus(context.Background(), 42, model.OrderStatusDone)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("GetOrderByID with error unknown id", func() {
			_, err := repo.GetOrderByID(context.Background(), 42)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("GetOrdersByStatus filters preserving store order", func() {
			ctx := context.Background()
			_, err := repo.AppendOrder(ctx, model.Order{Status: model.OrderStatusDone})
			Expect(err).ShouldNot(HaveOccurred())
			_, err = repo.AppendOrder(ctx, model.Order{Status: model.OrderStatusAccepted})
			Expect(err).ShouldNot(HaveOccurred())
			_, err = repo.AppendOrder(ctx, model.Order{Status: model.OrderStatusDone})
			Expect(err).ShouldNot(HaveOccurred())

			done, err := repo.GetOrdersByStatus(ctx, model.OrderStatusDone)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(done).Should(HaveLen(2))
			Expect(done[0].ID).Should(Equal(1))
			Expect(done[1].ID).Should(Equal(3))
		})
		It("GetOrdersByDateRange includes both bounds", func() {
			ctx := context.Background()
			_, err := repo.AppendOrder(ctx, model.Order{Date: "2023-11-30", Status: model.OrderStatusAccepted})
			Expect(err).ShouldNot(HaveOccurred())
			_, err = repo.AppendOrder(ctx, model.Order{Date: "2023-12-01", Status: model.OrderStatusAccepted})
			Expect(err).ShouldNot(HaveOccurred())
			_, err = repo.AppendOrder(ctx, model.Order{Date: "2023-12-31", Status: model.OrderStatusAccepted})
			Expect(err).ShouldNot(HaveOccurred())
			_, err = repo.AppendOrder(ctx, model.Order{Date: "2024-01-01", Status: model.OrderStatusAccepted})
			Expect(err).ShouldNot(HaveOccurred())

			start, _ := time.Parse(model.DateLayout, "2023-12-01")
			end, _ := time.Parse(model.DateLayout, "2023-12-31")

			got, err := repo.GetOrdersByDateRange(ctx, start, end)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got).Should(HaveLen(2))
			Expect(got[0].ID).Should(Equal(2))
			Expect(got[1].ID).Should(Equal(3))
		})
		It("GetOrdersByDateRange with error malformed stored date", func() {
			ctx := context.Background()
			_, err := repo.AppendOrder(ctx, model.Order{Date: "yesterday", Status: model.OrderStatusAccepted})
			Expect(err).ShouldNot(HaveOccurred())

			start, _ := time.Parse(model.DateLayout, "2023-12-01")
			end, _ := time.Parse(model.DateLayout, "2023-12-31")

			_, err = repo.GetOrdersByDateRange(ctx, start, end)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrInvalidDate))
		})
	})
})
