package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lucy1234dev/server/internal/server/services"
	"github.com/lucy1234dev/server/internal/shared"
)

type accountHandler struct {
	svc AccountService
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(shared.MessageResponse{Message: msg})
}

func (h *accountHandler) home(c *fiber.Ctx) error {
	return message(c, services.MsgWelcomeHome)
}

func (h *accountHandler) signup(c *fiber.Ctx) error {
	var req shared.SignupRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	if err := h.svc.Signup(c.UserContext(), req.Name, req.Email, req.Password); err != nil {
		return err
	}
	return message(c, services.MsgSignedUp)
}

func (h *accountHandler) verifyOTP(c *fiber.Ctx) error {
	var req shared.VerifyOTPRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	if err := h.svc.VerifyOTP(c.UserContext(), req.Email, req.OTP); err != nil {
		return err
	}
	return message(c, services.MsgVerified)
}

func (h *accountHandler) resendOTP(c *fiber.Ctx) error {
	var req shared.ResendOTPRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	if err := h.svc.ResendOTP(c.UserContext(), req.Email); err != nil {
		return err
	}
	return message(c, services.MsgResent)
}

func (h *accountHandler) login(c *fiber.Ctx) error {
	var req shared.LoginRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	a, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return message(c, services.LoginMessage(a.Name))
}

func (h *accountHandler) listUsers(c *fiber.Ctx) error {
	accounts, err := h.svc.ListAccounts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(accounts)
}

func (h *accountHandler) listVerifiedUsers(c *fiber.Ctx) error {
	accounts, err := h.svc.ListVerifiedAccounts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(accounts)
}
