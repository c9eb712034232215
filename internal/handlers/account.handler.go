package handlers

import (
	"hotelsys/internal/app"
	"hotelsys/internal/apperror"
	accountController "hotelsys/internal/controllers/account"
	"hotelsys/internal/logger"
	. "hotelsys/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	Handler
	accounts accountController.AccountControllerInterface
}

func NewAccountHandler(app app.App, router fiber.Router) *AccountHandler {
	log := logger.New("handlers").File("account_handler")
	return &AccountHandler{
		accounts: app.Controllers.Account,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AccountHandler) Register() {
	accounts := h.router.Group("/account")

	accounts.Get("/", h.getAllAccounts)
	accounts.Get("/:id", h.getAccountByID)
	accounts.Post("/create", h.createAccount)
	accounts.Put("/update", h.updateAccount)
}

func (h *AccountHandler) getAllAccounts(c *fiber.Ctx) error {
	accounts, err := h.accounts.GetAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(accounts)
}

func (h *AccountHandler) getAccountByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.BadRequest("invalid integer")
	}

	account, err := h.accounts.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(account)
}

func (h *AccountHandler) createAccount(c *fiber.Ctx) error {
	var account Account
	if err := c.BodyParser(&account); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	created, err := h.accounts.Create(c.UserContext(), &account)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AccountHandler) updateAccount(c *fiber.Ctx) error {
	var account Account
	if err := c.BodyParser(&account); err != nil {
		return apperror.BadRequest("invalid request body")
	}

	updated, err := h.accounts.Update(c.UserContext(), &account)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}
