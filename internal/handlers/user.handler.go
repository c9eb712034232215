package handlers

import (
	"hotelsys/internal/app"
	"hotelsys/internal/apperror"
	userController "hotelsys/internal/controllers/users"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	users userController.UserControllerInterface
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		users: app.Controllers.User,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	owners := h.router.Group("/owner")
	owners.Get("/", h.getAllOwners)
	owners.Get("/:email", h.getOwner)
	owners.Post("/create", h.createOwner)
	owners.Put("/update", h.updateOwner)

	employees := h.router.Group("/employee")
	employees.Get("/", h.getAllEmployees)
	employees.Get("/:email", h.getEmployee)
	employees.Post("/create", h.createEmployee)
	employees.Put("/update", h.updateEmployee)
	employees.Delete("/:email", h.deleteEmployee)

	customers := h.router.Group("/customer")
	customers.Get("/", h.getAllCustomers)
	customers.Get("/:email", h.getCustomer)
	customers.Post("/create", h.createCustomer)
	customers.Put("/update", h.updateCustomer)
	customers.Delete("/:email", h.deleteCustomer)
}

func (h *UserHandler) getAllOwners(c *fiber.Ctx) error {
	owners, err := h.users.GetAllOwners(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(owners)
}

func (h *UserHandler) getOwner(c *fiber.Ctx) error {
	owner, err := h.users.GetOwner(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}

	return c.JSON(owner)
}

func (h *UserHandler) createOwner(c *fiber.Ctx) error {
	var owner Owner
	if err := c.BodyParser(&owner); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.users.CreateOwner(c.UserContext(), &owner)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *UserHandler) updateOwner(c *fiber.Ctx) error {
	var owner Owner
	if err := c.BodyParser(&owner); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	updated, err := h.users.UpdateOwner(c.UserContext(), &owner)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *UserHandler) getAllEmployees(c *fiber.Ctx) error {
	employees, err := h.users.GetAllEmployees(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(employees)
}

func (h *UserHandler) getEmployee(c *fiber.Ctx) error {
	employee, err := h.users.GetEmployee(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}

	return c.JSON(employee)
}

func (h *UserHandler) createEmployee(c *fiber.Ctx) error {
	var employee Employee
	if err := c.BodyParser(&employee); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.users.CreateEmployee(c.UserContext(), &employee)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *UserHandler) updateEmployee(c *fiber.Ctx) error {
	var employee Employee
	if err := c.BodyParser(&employee); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	updated, err := h.users.UpdateEmployee(c.UserContext(), &employee)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *UserHandler) deleteEmployee(c *fiber.Ctx) error {
	if err := h.users.DeleteEmployee(c.UserContext(), c.Params("email")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) getAllCustomers(c *fiber.Ctx) error {
	customers, err := h.users.GetAllCustomers(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(customers)
}

func (h *UserHandler) getCustomer(c *fiber.Ctx) error {
	customer, err := h.users.GetCustomer(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}

	return c.JSON(customer)
}

func (h *UserHandler) createCustomer(c *fiber.Ctx) error {
	var customer Customer
	if err := c.BodyParser(&customer); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.users.CreateCustomer(c.UserContext(), &customer)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *UserHandler) updateCustomer(c *fiber.Ctx) error {
	var customer Customer
	if err := c.BodyParser(&customer); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	updated, err := h.users.UpdateCustomer(c.UserContext(), &customer)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *UserHandler) deleteCustomer(c *fiber.Ctx) error {
	if err := h.users.DeleteCustomer(c.UserContext(), c.Params("email")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
