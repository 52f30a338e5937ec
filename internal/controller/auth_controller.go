package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taranjotsinghW28/Note-Nest/internal/dto"
	"github.com/taranjotsinghW28/Note-Nest/internal/pkg/serverutils"
	"github.com/taranjotsinghW28/Note-Nest/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Signin(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Signout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/signup", c.Signup)
	h.Post("/signin", c.Signin)
	h.Post("/refresh", c.Refresh)
	h.Post("/signout", c.Signout)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Signup successful", res))
}

func (c *authController) Signin(ctx *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Signin(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Signin successful", res))
}

func (c *authController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Refresh(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Token refreshed", res))
}

func (c *authController) Signout(ctx *fiber.Ctx) error {
	// An empty body is a valid signout: the client simply holds no refresh
	// token to revoke.
	var req dto.SignoutRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	if err := c.service.Signout(ctx.Context(), req.RefreshToken); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Signout successful", nil))
}
