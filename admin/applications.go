package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hasancaglar07/tarfcomtr-sub001/models"
	"github.com/hasancaglar07/tarfcomtr-sub001/store"
)

const applicationsPageSize = 30

func (a *AdminModule) listApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}

	// An unknown status in the query string means no filter, like an
	// unchecked filter control.
	status := models.ApplicationStatus(c.Query("status"))
	switch status {
	case models.ApplicationNew, models.ApplicationInReview, models.ApplicationClosed:
	default:
		status = ""
	}

	filter := store.ApplicationFilter{
		Status: status,
		Query:  c.Query("q"),
		Offset: (page - 1) * applicationsPageSize,
		Limit:  applicationsPageSize,
	}

	apps, count, err := a.store.ListApplications(filter)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Başvurular yüklenemedi",
		})
		return
	}

	totalPages := (count + applicationsPageSize - 1) / applicationsPageSize
	if totalPages < 1 {
		totalPages = 1
	}

	c.HTML(http.StatusOK, "admin_applications.html", gin.H{
		"applications": apps,
		"count":        count,
		"page":         page,
		"totalPages":   totalPages,
		"status":       filter.Status,
		"q":            filter.Query,
	})
}

func (a *AdminModule) updateApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorState(store.ErrApplicationNotFound))
		return
	}

	_, err = a.store.UpdateApplication(
		uint(id),
		models.ApplicationStatus(c.PostForm("status")),
		c.PostForm("adminNote"),
	)
	if err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}

	c.JSON(http.StatusOK, successState("Başvuru güncellendi", "/admin/applications"))
}
