package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/pkg/resp"
	"github.com/zninennea/nani-plate-perfect/services"
)

// writeServiceError maps service sentinels onto the error taxonomy:
// validation 400, forbidden 403, missing 404, state-machine violations and
// lost races 409. Everything else is a 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrAlreadyClaimed),
		errors.Is(err, services.ErrNotYourOrder),
		errors.Is(err, services.ErrAlreadyReviewed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrAddressRequired),
		errors.Is(err, services.ErrRatingRange),
		errors.Is(err, services.ErrNotDelivered),
		errors.Is(err, services.ErrChatClosed),
		errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrBadPrice),
		errors.Is(err, services.ErrTrackingUnavailable),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUnknownProvider):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
