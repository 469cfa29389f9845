// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"planotes/internal/delivery/http/middleware"
	"planotes/internal/delivery/http/response"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user id placed by the session
// middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

// pathUUID parses a uuid path parameter. Malformed ids surface as not-found,
// the same as ids that point nowhere.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}

// pageFromQuery reads the page/size query parameters; out-of-range values are
// clamped downstream.
func pageFromQuery(c echo.Context) repository.Page {
	number, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	return repository.Page{Number: number, Size: size}
}

// pagedResponse maps a repository page to the wire shape.
func pagedResponse[T any](page *repository.Paged[T]) response.Paged {
	return response.Paged{
		Items:  page.Items,
		Total:  page.Total,
		Number: page.Number,
		Size:   page.Size,
	}
}
