package handlers

import (
	"errors"
	"net/http"

	"besttodo/internal/adapter/http/dto"
	"besttodo/internal/adapter/http/middleware"
	"besttodo/internal/core/domain"
	"besttodo/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorMessages = []struct {
	err    error
	msgKey string
}{
	{domain.ErrUnauthenticated, apierrors.MsgUnauthorized},
	{domain.ErrTitleRequired, apierrors.MsgTitleRequired},
	{domain.ErrNameRequired, apierrors.MsgFolderNameRequired},
	{domain.ErrInvalidDueDate, apierrors.MsgInvalidDueDate},
	{domain.ErrInvalidReminder, apierrors.MsgInvalidReminder},
	{domain.ErrNoUpdateFields, apierrors.MsgNoUpdateFields},
	{domain.ErrInvalidPageToken, apierrors.MsgInvalidPageToken},
	{domain.ErrInvalidPayload, apierrors.MsgInvalidPayload},
	{domain.ErrTaskNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrFolderNotFound, apierrors.MsgFolderNotFound},
}

// respondError maps err to a status code and translated message. Internal
// errors are logged and answered with failMsgKey only.
func respondError(c *gin.Context, err error, failMsgKey string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	status := statusForKind(domain.KindOf(err))
	msgKey := failMsgKey
	if status == http.StatusInternalServerError {
		fields = append(fields,
			zap.String("operation", failMsgKey),
			zap.String("owner_id", middleware.GetOwner(c)),
			zap.Error(err),
		)
		zap.L().Error("request failed", fields...)
	} else {
		msgKey = messageKeyFor(err, failMsgKey)
	}

	_ = c.Error(err)
	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func messageKeyFor(err error, fallback string) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msgKey
		}
	}
	return fallback
}

func respondMessage(c *gin.Context, status int, msgKey string) {
	lang := middleware.GetLang(c)
	c.JSON(status, dto.MessageResponse{Message: apierrors.GetTransErrorMsg(msgKey, lang)})
}
