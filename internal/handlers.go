package internal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/Storefront/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) Products(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"products": h.Service.Products(c.Context())})
}

func (h *Handlers) AddNewOrder(c *fiber.Ctx) error {
	var i model.OrderInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on add order request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "incorrect request format"})
	}

	order, err := h.Service.CreateOrder(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on add order request: %s", err.Error())
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order added successfully", "order": order})
}

func (h *Handlers) DoneOrders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrdersByStatus(c.Context(), model.OrderStatusDone)
	if err != nil {
		h.logger.Errorf("Error on done orders request: %s", err.Error())
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"done_items": orders})
}

func (h *Handlers) MarkPaid(c *fiber.Ctx) error {
	id, err := orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := h.Service.MarkPaid(c.Context(), id)
	if err != nil {
		h.logger.Errorf("Error on mark paid request: %s", err.Error())
		if errors.Is(err, ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("Item with ID %d not found or not in \"Done\" status", id)})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": fmt.Sprintf("Status of item %d updated to %s", id, model.OrderStatusPaid), "item": item})
}

func (h *Handlers) PaidOrders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrdersByStatus(c.Context(), model.OrderStatusPaid)
	if err != nil {
		h.logger.Errorf("Error on paid orders request: %s", err.Error())
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"paid_items": orders})
}

func (h *Handlers) GenerateBill(c *fiber.Ctx) error {
	id, err := orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bill, err := h.Service.GenerateBill(c.Context(), id)
	if err != nil {
		h.logger.Errorf("Error on generate bill request: %s", err.Error())
		if errors.Is(err, ErrBillNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("Order with ID %d not found or not in \"Paid\" status", id)})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Bill generated successfully", "bill": bill})
}

func (h *Handlers) AcceptedOrders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrdersByStatus(c.Context(), model.OrderStatusAccepted)
	if err != nil {
		h.logger.Errorf("Error on accepted orders request: %s", err.Error())
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"accepted_orders": orders})
}

func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id, err := orderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := h.Service.MarkDone(c.Context(), id)
	if err != nil {
		h.logger.Errorf("Error on update status request: %s", err.Error())
		if errors.Is(err, ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("Order with ID %d not found", id)})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": fmt.Sprintf("Status of order %d updated to %s", id, model.OrderStatusDone), "order": order})
}

func (h *Handlers) Orders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrders(c.Context())
	if err != nil {
		h.logger.Errorf("Error on orders request: %s", err.Error())
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"orders": orders})
}

func (h *Handlers) OrdersByDate(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrdersByDateRange(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.logger.Errorf("Error on orders by date request: %s", err.Error())
		if errors.Is(err, ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format. Please use YYYY-MM-DD."})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"orders": orders})
}

func orderID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while processing the request."})
}
