package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/logger"
	"github.com/doni/social-network/internal/pkg/messages"
	"github.com/doni/social-network/internal/pkg/problem"
)

// HandleAPIError translates a service-layer error into a problem-detail
// response. Ownership, participation and duplicate failures surface as 400
// with a machine-readable code; remote-call failures as 502; anything
// unclassified as 500.
func HandleAPIError(c *gin.Context, err error) {
	detail := messages.Get(apperrors.MessageKeyOf(err))

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		problem.Abort(c, problem.New(http.StatusNotFound, detail))
	case errors.Is(err, apperrors.ErrNotOwner):
		problem.Abort(c, problem.New(http.StatusBadRequest, detail).WithCode("not_owner"))
	case errors.Is(err, apperrors.ErrNotParticipant):
		problem.Abort(c, problem.New(http.StatusBadRequest, detail).WithCode("not_participant"))
	case errors.Is(err, apperrors.ErrAlreadyExists):
		problem.Abort(c, problem.New(http.StatusBadRequest, detail).WithCode("already_exists"))
	case errors.Is(err, apperrors.ErrRemoteUnavailable):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Remote service call failed")
		problem.Abort(c, problem.New(http.StatusBadGateway, "Сервис временно недоступен"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		problem.Abort(c, problem.New(http.StatusInternalServerError, "Внутренняя ошибка сервера"))
	}
}
