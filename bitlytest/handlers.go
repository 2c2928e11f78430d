package bitlytest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/bitly"
)

func (s *Server) routes() {
	v4 := s.engine.Group("/v4")

	v4.POST("/shorten", s.shorten)
	v4.POST("/expand", s.expand)
	v4.POST("/bitlinks", s.createBitlink)
	v4.GET("/bitlinks/*rest", s.bitlinkGET)
	v4.PATCH("/bitlinks/*rest", s.updateBitlink)

	v4.GET("/user", s.user)

	v4.POST("/webhooks", s.createWebhook)
	v4.GET("/webhooks/:guid", s.getWebhook)
	v4.PATCH("/webhooks/:guid", s.updateWebhook)
	v4.DELETE("/webhooks/:guid", s.deleteWebhook)
	v4.GET("/organizations/:guid/webhooks", s.listWebhooks)
}

func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05-0700")
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

func validLongURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

func invalidLongURL(c *gin.Context) {
	abort(c, http.StatusBadRequest, "INVALID_ARG_LONG_URL", "The value provided is invalid.",
		bitly.FieldError{Field: "long_url", ErrorCode: "invalid"})
}

func (s *Server) shorten(c *gin.Context) {
	var req bitly.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validLongURL(req.LongURL) {
		invalidLongURL(c)
		return
	}
	b, created := s.findOrCreate(bitly.CreateBitlinkRequest{
		LongURL:   req.LongURL,
		Domain:    req.Domain,
		GroupGUID: req.GroupGUID,
	})
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, b)
}

func (s *Server) createBitlink(c *gin.Context) {
	var req bitly.CreateBitlinkRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validLongURL(req.LongURL) {
		invalidLongURL(c)
		return
	}
	b, created := s.findOrCreate(req)
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, b)
}

func (s *Server) findOrCreate(req bitly.CreateBitlinkRequest) (bitly.Bitlink, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byLongURL[req.LongURL]; ok {
		return *s.bitlinks[id], false
	}

	id := s.newBitlinkID()
	if req.Domain != "" {
		id = req.Domain + id[strings.Index(id, "/"):]
	}
	b := &bitly.Bitlink{
		ID:        id,
		LongURL:   req.LongURL,
		Title:     req.Title,
		Tags:      req.Tags,
		Deeplinks: req.Deeplinks,
		CreatedAt: now(),
		CreatedBy: "bitlytest",
		References: map[string]string{
			"group": "https://api-ssl.bitly.com/v4/groups/" + DefaultGroupGUID,
		},
	}
	s.storeBitlink(b)
	return *b, true
}

func (s *Server) expand(c *gin.Context) {
	var req bitly.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BitlinkID == "" {
		abort(c, http.StatusBadRequest, "INVALID_ARG_BITLINK_ID", "")
		return
	}
	b, ok := s.Bitlink(req.BitlinkID)
	if !ok {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
		return
	}
	c.JSON(http.StatusOK, bitly.ExpandResponse{
		ID:        b.ID,
		Link:      b.Link,
		LongURL:   b.LongURL,
		CreatedAt: b.CreatedAt,
	})
}

// bitlinkGET serves /v4/bitlinks/{domain}/{hash}[/{metric}].
func (s *Server) bitlinkGET(c *gin.Context) {
	rest := strings.Trim(c.Param("rest"), "/")
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) < 2 {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
		return
	}
	id := parts[0] + "/" + parts[1]
	b, ok := s.Bitlink(id)
	if !ok {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
		return
	}
	if len(parts) == 2 {
		c.JSON(http.StatusOK, b)
		return
	}

	units := bitly.Units{
		Unit:          c.DefaultQuery("unit", "day"),
		UnitReference: c.Query("unit_reference"),
		Units:         queryInt(c, "units", -1),
	}
	switch parts[2] {
	case "clicks":
		c.JSON(http.StatusOK, bitly.ClicksResponse{Units: units, LinkClicks: []bitly.LinkClicks{}})
	case "clicks/summary":
		c.JSON(http.StatusOK, bitly.ClicksSummaryResponse{Units: units})
	case "countries", "referrers", "referring_domains":
		c.JSON(http.StatusOK, bitly.MetricsResponse{Units: units, Facet: parts[2], Metrics: []bitly.Metric{}})
	case "referrers_by_domains":
		c.JSON(http.StatusOK, bitly.ReferrersByDomainResponse{Units: units, Facet: "referrers", ReferrersByDomain: []bitly.NetworkReferrers{}})
	case "qr":
		c.JSON(http.StatusOK, bitly.QRCodeResponse{ID: b.ID, Link: b.Link, QRCode: "data:image/png;base64,"})
	default:
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
	}
}

func (s *Server) updateBitlink(c *gin.Context) {
	id := strings.Trim(c.Param("rest"), "/")
	var req bitly.UpdateBitlinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "INVALID_CONTENT_TYPE", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bitlinks[id]
	if !ok {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
		return
	}
	if req.Title != "" {
		b.Title = req.Title
	}
	if req.Archived != nil {
		b.Archived = *req.Archived
	}
	if req.Tags != nil {
		b.Tags = req.Tags
	}
	if req.Deeplinks != nil {
		b.Deeplinks = req.Deeplinks
	}
	if req.LongURL != "" {
		if !validLongURL(req.LongURL) {
			invalidLongURL(c)
			return
		}
		delete(s.byLongURL, b.LongURL)
		b.LongURL = req.LongURL
		s.byLongURL[b.LongURL] = b.ID
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) user(c *gin.Context) {
	c.JSON(http.StatusOK, bitly.User{
		Login:            "bitlytest",
		Name:             "Bitly Test",
		DefaultGroupGUID: DefaultGroupGUID,
		IsActive:         true,
		Emails:           []bitly.Email{{Email: "test@example.com", IsPrimary: true, IsVerified: true}},
	})
}

func (s *Server) createWebhook(c *gin.Context) {
	var req bitly.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.URL == "" {
		abort(c, http.StatusBadRequest, "INVALID_ARG", "name and url are required")
		return
	}
	org := req.OrganizationGUID
	if org == "" {
		org = DefaultOrganizationGUID
	}
	w := &bitly.Webhook{
		GUID:             uuid.NewString(),
		Name:             req.Name,
		URL:              req.URL,
		Event:            req.Event,
		Status:           "active",
		IsActive:         req.IsActive,
		OrganizationGUID: org,
		GroupGUID:        req.GroupGUID,
		Created:          now(),
		Modified:         now(),
	}

	s.mu.Lock()
	s.webhooks[w.GUID] = w
	resp := *w
	s.mu.Unlock()
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) getWebhook(c *gin.Context) {
	s.mu.RLock()
	w, ok := s.webhooks[c.Param("guid")]
	var resp bitly.Webhook
	if ok {
		resp = *w
	}
	s.mu.RUnlock()
	if !ok {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) updateWebhook(c *gin.Context) {
	var req bitly.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "INVALID_CONTENT_TYPE", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.webhooks[c.Param("guid")]
	if !ok {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
		return
	}
	if req.Name != "" {
		w.Name = req.Name
	}
	if req.URL != "" {
		w.URL = req.URL
	}
	if req.Event != "" {
		w.Event = req.Event
	}
	w.IsActive = req.IsActive
	w.Modified = now()
	c.JSON(http.StatusOK, w)
}

func (s *Server) deleteWebhook(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	guid := c.Param("guid")
	if _, ok := s.webhooks[guid]; !ok {
		abort(c, http.StatusNotFound, "NOT_FOUND", "")
		return
	}
	delete(s.webhooks, guid)
	c.Status(http.StatusNoContent)
}

func (s *Server) listWebhooks(c *gin.Context) {
	org := c.Param("guid")
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]bitly.Webhook, 0, len(s.webhooks))
	for _, w := range s.webhooks {
		if w.OrganizationGUID == org {
			list = append(list, *w)
		}
	}
	c.JSON(http.StatusOK, bitly.WebhooksResponse{Webhooks: list})
}
