package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"mantenimiento_backend/internals/features/home/pages/view"
	"mantenimiento_backend/internals/features/users/auth/dto"
	"mantenimiento_backend/internals/features/users/auth/service"
	helper "mantenimiento_backend/internals/helpers"
	helperAuth "mantenimiento_backend/internals/helpers/auth"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

type AuthController struct {
	DB        *gorm.DB
	Store     *session.Store
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, store *session.Store) *AuthController {
	return &AuthController{DB: db, Store: store, Validator: helper.NewValidator()}
}

// wantsJSON separates API callers from the HTML forms.
func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func errorStatus(err error) (int, string) {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		if ae.Kind == helper.KindStorage {
			return ae.Status(), "unexpected error, try again"
		}
		return ae.Status(), ae.Message
	}
	return fiber.StatusInternalServerError, "unexpected error, try again"
}

func parseCredentials(c *fiber.Ctx) (dto.Credentials, error) {
	var in dto.Credentials
	if err := c.BodyParser(&in); err != nil {
		return in, helper.ValidationErr("invalid request body")
	}
	in.Normalize()
	return in, nil
}

// ========================== LOGIN ==========================

// GET /login
func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	next := c.Query("next")
	if helperAuth.FromCtx(c).LoggedIn {
		return c.Redirect(authMiddleware.SafeNext(next), fiber.StatusFound)
	}
	return view.Render(c, fiber.StatusOK, "login.html", view.Page{Title: "Login", Next: next})
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	in, err := parseCredentials(c)
	if err != nil {
		return ac.loginFailed(c, in, err)
	}
	user, err := service.Authenticate(c.UserContext(), ac.DB, in.Username, in.Password)
	if err != nil {
		return ac.loginFailed(c, in, err)
	}
	if err := authMiddleware.StartSession(c, ac.Store, user.ID, user.Username, user.Role); err != nil {
		return ac.loginFailed(c, in, helper.StorageErr("failed to start session", err))
	}

	next := authMiddleware.SafeNext(in.Next)
	if wantsJSON(c) {
		return helper.JsonOK(c, "logged in", fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
			"next":     next,
		})
	}
	return c.Redirect(next, fiber.StatusSeeOther)
}

func (ac *AuthController) loginFailed(c *fiber.Ctx, in dto.Credentials, err error) error {
	if wantsJSON(c) {
		return helper.RespondError(c, err)
	}
	status, msg := errorStatus(err)
	return view.Render(c, status, "login.html", view.Page{Title: "Login", Error: msg, Next: in.Next})
}

// GET /logout, POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	a := helperAuth.FromCtx(c)
	if a.Source == helperAuth.SourceBearer && a.Token != "" {
		if err := service.RevokeToken(c.UserContext(), ac.DB, a.Token); err != nil {
			return helper.RespondError(c, err)
		}
	}
	if c.Cookies(authMiddleware.SessionCookie) != "" {
		if err := authMiddleware.EndSession(c, ac.Store); err != nil {
			log.Printf("[AUTH] session destroy failed: %v", err)
		}
	}
	if a.LoggedIn {
		log.Printf("[AUTH] %s logged out", a.Username)
	}
	if wantsJSON(c) || a.Source == helperAuth.SourceBearer {
		return helper.JsonOK(c, "logged out", nil)
	}
	return c.Redirect(authMiddleware.LoginPath, fiber.StatusFound)
}

// ========================== REGISTER ==========================

// GET /register
func (ac *AuthController) RegisterPage(c *fiber.Ctx) error {
	a := helperAuth.FromCtx(c)
	return view.Render(c, fiber.StatusOK, "register.html", view.Page{
		Title: "Registro", Username: a.Username, IsAdmin: a.IsAdmin(),
	})
}

// POST /register
// Anonymous callers always get an employee account.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	a := helperAuth.FromCtx(c)
	in, err := parseCredentials(c)
	if err != nil {
		return ac.registerFailed(c, a, err)
	}
	u, err := service.Register(c.UserContext(), ac.DB, in.Username, in.Password, in.Role, a.IsAdmin())
	if err != nil {
		return ac.registerFailed(c, a, err)
	}

	if wantsJSON(c) {
		return helper.JsonCreated(c, "user registered", u)
	}
	if a.LoggedIn {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Redirect(authMiddleware.LoginPath, fiber.StatusSeeOther)
}

func (ac *AuthController) registerFailed(c *fiber.Ctx, a *helperAuth.AuthContext, err error) error {
	if wantsJSON(c) {
		return helper.RespondError(c, err)
	}
	status, msg := errorStatus(err)
	return view.Render(c, status, "register.html", view.Page{
		Title: "Registro", Username: a.Username, IsAdmin: a.IsAdmin(), Error: msg,
	})
}

// ========================== API ==========================

// POST /api/auth/token
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	in, err := parseCredentials(c)
	if err != nil {
		return helper.RespondError(c, err)
	}
	u, err := service.Authenticate(c.UserContext(), ac.DB, in.Username, in.Password)
	if err != nil {
		return helper.RespondError(c, err)
	}
	tok, err := service.IssueToken(u, time.Now())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonOK(c, "token issued", tok)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	a := helperAuth.FromCtx(c)
	return helper.JsonOK(c, "current user", dto.MeResponse{
		ID: a.UserID, Username: a.Username, Role: a.Role, Source: a.Source,
	})
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.RespondError(c, helper.ValidationErr("invalid request body"))
	}
	if err := helper.ValidateStruct(ac.Validator, &in); err != nil {
		return helper.RespondError(c, err)
	}
	a := helperAuth.FromCtx(c)
	if err := service.ChangePassword(c.UserContext(), ac.DB, a.UserID, in.CurrentPassword, in.NewPassword); err != nil {
		return helper.RespondError(c, err)
	}
	log.Printf("[AUTH] %s changed password", a.Username)
	return helper.JsonOK(c, "password updated", nil)
}
