package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopsync/pricerunner-feed/app/cfg"
	"github.com/shopsync/pricerunner-feed/app/database"
	"github.com/shopsync/pricerunner-feed/app/feed"
	"github.com/shopsync/pricerunner-feed/app/registration"
)

func NewHandler(feedRepo database.FeedRepository, categoryRepo database.CategoryRepository,
	productRepo database.ProductRepository, builder BuilderInterface,
	validator feed.Validator, registrationClient RegistrationInterface) *Handler {
	return &Handler{
		feedRepo:      feedRepo,
		categoryRepo:  categoryRepo,
		productRepo:   productRepo,
		builder:       builder,
		validator:     validator,
		generator:     feed.NewGenerator(),
		errorRenderer: feed.NewErrorRenderer(),
		registration:  registrationClient,
	}
}

// GetFeed serves the product feed. Access requires the hash issued at
// registration; validation errors never remove products from the feed and
// are only surfaced through the test query parameter.
func (h *Handler) GetFeed(c *gin.Context) {
	hash := c.Query("hash")
	if hash == "" {
		c.String(http.StatusForbidden, "Hash key is not valid.")
		return
	}

	activeFeed, err := h.feedRepo.GetFeedByHash(hash)
	if err != nil {
		slog.Error("Database error", "operation", "get_feed_by_hash", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if activeFeed == nil {
		active, err := h.feedRepo.GetActiveFeed()
		if err == nil && active == nil {
			c.String(http.StatusNotFound, "No active shop.")
			return
		}
		c.String(http.StatusForbidden, "Hash key is not valid.")
		return
	}

	products, err := h.builder.Run()
	if err != nil {
		slog.Error("Feed build error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if _, testMode := c.GetQuery("test"); testMode {
		errors := h.validator.Validate(products)
		report := h.errorRenderer.Run(errors, len(products))
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.String(http.StatusOK, report)
		return
	}

	document, err := h.generator.Run(products)
	if err != nil {
		slog.Error("Feed generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Products", strconv.Itoa(len(products)))
	c.String(http.StatusOK, document)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if feedCount, err := h.feedRepo.GetFeedCount(); err == nil {
		health["registrations"] = feedCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if productCount, err := h.productRepo.GetProductCount(); err == nil {
		stats["products"] = productCount
	}

	if categoryCount, err := h.categoryRepo.GetCategoryCount(); err == nil {
		stats["categories"] = categoryCount
	}

	if activeFeed, err := h.feedRepo.GetActiveFeed(); err == nil {
		stats["feed_active"] = activeFeed != nil
	}

	c.JSON(http.StatusOK, stats)
}

type RegisterRequest struct {
	Domain string `json:"domain" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

// RegisterFeed activates the feed: it persists the contact details, issues
// a fresh hash and announces the feed URL to the marketplace. The
// registration call is fire-and-forget; a failure is logged but does not
// roll back activation.
func (h *Handler) RegisterFeed(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash := uuid.NewString()
	feedURL := feedURLFor(hash)

	if err := h.feedRepo.DeactivateAll(); err != nil {
		slog.Error("Database error", "operation", "deactivate_feeds", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if _, err := h.feedRepo.CreateFeed(req.Domain, req.Name, feedURL, req.Phone, req.Email, hash); err != nil {
		slog.Error("Database error", "operation", "create_feed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if h.registration != nil {
		err := h.registration.Register(c.Request.Context(), registration.Registration{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Domain:  req.Domain,
			FeedURL: feedURL,
		})
		if err != nil {
			slog.Warn("Marketplace registration failed", "error", err)
		}
	}

	slog.Info("Feed activated", "domain", req.Domain)

	c.JSON(http.StatusOK, gin.H{
		"feed_url": feedURL,
		"hash":     hash,
	})
}

// ResetFeed revokes every issued hash and deactivates the feed
func (h *Handler) ResetFeed(c *gin.Context) {
	if err := h.feedRepo.DeactivateAll(); err != nil {
		slog.Error("Database error", "operation", "deactivate_feeds", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	slog.Info("Feed reset, all hashes revoked")

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func feedURLFor(hash string) string {
	base := cfg.Get().BaseUrl
	if base == "" {
		base = "http://localhost:" + cfg.Get().Port
	}
	return base + "/feed?hash=" + hash
}
