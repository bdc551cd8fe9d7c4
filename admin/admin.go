// Package admin is the authenticated back office: content-page CRUD
// with publish toggling, plus post/category/hero/FAQ/settings editing.
// Every write goes through the store so the invalidation fan-out runs
// before the response is returned.
package admin

import (
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/logger"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
	"github.com/hasancaglar07/tarfcomtr-sub001/store"
)

// ActionStatus is the tri-state outcome of an admin write.
type ActionStatus string

const (
	ActionIdle    ActionStatus = "idle"
	ActionSuccess ActionStatus = "success"
	ActionError   ActionStatus = "error"
)

type ActionState struct {
	Status   ActionStatus `json:"status"`
	Message  string       `json:"message,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}

func successState(message, redirect string) ActionState {
	return ActionState{Status: ActionSuccess, Message: message, Redirect: redirect}
}

func errorState(err error) ActionState {
	return ActionState{Status: ActionError, Message: err.Error()}
}

type AdminModule struct {
	db    *gorm.DB
	store *store.ContentStore
}

func NewAdminModule(db *gorm.DB, contentStore *store.ContentStore) *AdminModule {
	return &AdminModule{db: db, store: contentStore}
}

func (a *AdminModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", a.loginPage)
	router.POST("/login", a.loginPost)
	router.GET("/admin/logout", a.logout)

	adminGroup := router.Group("/admin")
	adminGroup.Use(a.requireAuth)
	{
		adminGroup.GET("/", a.dashboard)
		adminGroup.GET("/pages", a.listPages)
		adminGroup.GET("/pages/new", a.newPage)
		adminGroup.GET("/pages/edit/*slug", a.editPage)
		adminGroup.POST("/pages/create", a.createPage)
		adminGroup.POST("/pages/update", a.updatePage)
		adminGroup.POST("/pages/delete", a.deletePage)
		adminGroup.POST("/pages/toggle", a.togglePage)

		adminGroup.GET("/posts/:type", a.listPosts)
		adminGroup.POST("/posts/:type/save", a.savePost)
		adminGroup.POST("/posts/:type/delete", a.deletePost)

		adminGroup.GET("/applications", a.listApplications)
		adminGroup.POST("/applications/update", a.updateApplication)

		adminGroup.POST("/categories/save", a.saveCategory)
		adminGroup.POST("/categories/delete", a.deleteCategory)
		adminGroup.POST("/heroes/save", a.saveHero)
		adminGroup.POST("/faqs/save", a.saveFAQ)
		adminGroup.POST("/faqs/delete", a.deleteFAQ)
		adminGroup.POST("/settings/save", a.saveSettings)
	}
}

func (a *AdminModule) requireAuth(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")

	if userID == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

func (a *AdminModule) loginPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/admin/")
		return
	}
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

func (a *AdminModule) loginPost(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	var user models.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"error": "E-posta veya şifre hatalı",
			"email": email,
		})
		return
	}

	if !checkPasswordHash(password, user.PasswordHash) {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"error": "E-posta veya şifre hatalı",
			"email": email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/admin/")
}

func (a *AdminModule) logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/login")
}

func (a *AdminModule) dashboard(c *gin.Context) {
	pages, err := a.store.ListPages()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Sayfalar yüklenemedi",
		})
		return
	}

	drafts := 0
	for _, p := range pages {
		if p.Status == models.StatusDraft {
			drafts++
		}
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"pages":  pages,
		"drafts": drafts,
	})
}

// EnsureAdminUser creates the initial admin account from the
// environment when the users table is empty.
func EnsureAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Warn("no admin user and ADMIN_EMAIL/ADMIN_PASSWORD unset; admin login disabled")
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	if err := db.Create(&models.User{Email: email, PasswordHash: hash}).Error; err != nil {
		return err
	}
	logger.Info("created initial admin user", "email", email)
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
