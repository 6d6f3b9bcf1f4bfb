// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/middleware"
	"github.com/tallerdev/admtaller/internal/pkg/helpers"
)

// pathInt64 reads an integer path parameter, answering 400 when it is not
// one.
func pathInt64(ctx *gin.Context, name string) (int64, bool) {
	v, err := helpers.ParseInt64Param(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	return v, true
}

func pathInt32(ctx *gin.Context, name string) (int32, bool) {
	v, err := helpers.ParseInt32Param(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	return v, true
}

// actorID reads the :actorId segment of actor-scoped routes.
func actorID(ctx *gin.Context) (int64, bool) {
	return pathInt64(ctx, "actorId")
}

// sectionKey reads :year/:period/:sigla/:section.
func sectionKey(ctx *gin.Context) (models.SectionKey, bool) {
	year, ok := pathInt32(ctx, "year")
	if !ok {
		return models.SectionKey{}, false
	}
	period, ok := pathInt32(ctx, "period")
	if !ok {
		return models.SectionKey{}, false
	}
	section, ok := pathInt32(ctx, "section")
	if !ok {
		return models.SectionKey{}, false
	}
	return models.SectionKey{
		Year:        year,
		PeriodCode:  period,
		SubjectCode: ctx.Param("sigla"),
		Section:     section,
	}, true
}
