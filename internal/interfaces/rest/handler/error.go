package handler

import (
	"errors"
	"strings"

	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/PaperMC/website/internal/pkg/restserver/response"
	"github.com/PaperMC/website/internal/site"
	"github.com/PaperMC/website/internal/view"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

const apiPrefix = "/api"

// NewErrorHandler answers failed API requests with a JSON body and failed
// page requests with the error page.
func NewErrorHandler(content *site.Content) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if err == nil {
			return nil
		}
		api := strings.HasPrefix(c.Path(), apiPrefix)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			if api {
				return fiber.DefaultErrorHandler(c, fe)
			}
			return renderError(c, content, fe.Code, fe.Message)
		}

		var biz *errs.Error
		if !errors.As(err, &biz) {
			biz = errs.NewUnexpected(err)
			zap.L().Error("unexpected error",
				zap.Error(err),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		} else if biz.HTTPCode() >= fiber.StatusInternalServerError {
			zap.L().Warn("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if api {
			resp := response.BusinessError(
				biz.Message(),
				biz.Details(),
			).With(biz.BizCode())
			return c.Status(biz.HTTPCode()).JSON(resp)
		}
		return renderError(c, content, biz.HTTPCode(), biz.Message())
	}
}

func renderError(c *fiber.Ctx, content *site.Content, code int, message string) error {
	p := view.NewPage(content, utils.StatusMessage(code), message)
	p.ErrorStatus = code
	p.ErrorMessage = message

	if err := c.Status(code).Render(view.PageError, p); err != nil {
		zap.L().Error("render error page", zap.Int("status", code), zap.Error(err))
		return c.Status(code).SendString(message)
	}
	return nil
}
